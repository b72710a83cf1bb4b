package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/bedrock/engine/core"
	"github.com/spaghettifunk/bedrock/engine/memory"
)

func newTestEngine(t *testing.T, g *Game) *Engine {
	t.Helper()
	e, err := New(g)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestEngineRunsFrames(t *testing.T) {
	var frames, shutdowns int
	g := &Game{
		ApplicationConfig: &ApplicationConfig{Name: "test", MaxFrames: 5},
		FnUpdate: func(delta float64, frame *memory.StackAllocator) error {
			if frame.Allocated() != 0 {
				t.Errorf("frame %d starts with %d bytes in use", frames, frame.Allocated())
			}
			if delta < 0 {
				t.Errorf("negative delta %g", delta)
			}
			if _, err := frame.Allocate(128, 16); err != nil {
				return err
			}
			frames++
			return nil
		},
		FnShutdown: func() error {
			shutdowns++
			return nil
		},
	}
	e := newTestEngine(t, g)
	if e.Stage() != EngineStageInitialized {
		t.Fatalf("stage %d after Initialize", e.Stage())
	}
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if frames != 5 || e.FrameCount() != 5 {
		t.Errorf("ran %d frames, counted %d", frames, e.FrameCount())
	}
	if shutdowns != 1 {
		t.Errorf("shutdown hook ran %d times", shutdowns)
	}
	if e.Stage() != EngineStageUninitialized {
		t.Errorf("stage %d after Run", e.Stage())
	}
}

func TestEngineShutdown(t *testing.T) {
	var e *Engine
	g := &Game{
		ApplicationConfig: &ApplicationConfig{Name: "test"},
		FnUpdate: func(float64, *memory.StackAllocator) error {
			if e.FrameCount() == 2 {
				return e.Shutdown()
			}
			return nil
		},
	}
	e = newTestEngine(t, g)
	if err := e.Shutdown(); err == nil {
		t.Error("shutting down an idle engine should fail")
	}
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if e.FrameCount() != 3 {
		t.Errorf("ran %d frames, want 3", e.FrameCount())
	}
}

func TestEngineQuitEvent(t *testing.T) {
	var e *Engine
	g := &Game{
		ApplicationConfig: &ApplicationConfig{Name: "test", MaxFrames: 100},
		FnUpdate: func(float64, *memory.StackAllocator) error {
			if e.FrameCount() == 1 {
				core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
			}
			return nil
		},
	}
	e = newTestEngine(t, g)
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if e.FrameCount() != 2 {
		t.Errorf("ran %d frames, want 2", e.FrameCount())
	}

	// A torn down engine no longer listens.
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: core.DefaultConfig()})
	if e.pendingConfig.Load() != nil {
		t.Error("config delivered after teardown")
	}
}

func TestEngineUpdateError(t *testing.T) {
	boom := errors.New("boom")
	g := &Game{
		ApplicationConfig: &ApplicationConfig{Name: "test", MaxFrames: 10},
		FnUpdate: func(float64, *memory.StackAllocator) error {
			return boom
		},
	}
	e := newTestEngine(t, g)
	if err := e.Run(); !errors.Is(err, boom) {
		t.Errorf("got %v, want the update error", err)
	}
	if e.FrameCount() != 0 {
		t.Errorf("a failed frame was counted")
	}
}

func TestEngineLifecycleErrors(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("nil game accepted")
	}
	if _, err := New(&Game{}); err == nil {
		t.Error("game without config accepted")
	}

	e, err := New(&Game{ApplicationConfig: &ApplicationConfig{Name: "test"}})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Run(); err == nil {
		t.Error("Run before Initialize should fail")
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err == nil {
		t.Error("second Initialize should fail")
	}
}

func TestEngineConfig(t *testing.T) {
	t.Cleanup(func() { _ = core.DefaultConfig().Apply() })

	path := filepath.Join(t.TempDir(), "bedrock.toml")
	data := []byte("[allocator]\ndefault_size = 4096\ndefault_alignment = 32\n\n[log]\nlevel = \"warn\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	var sizes, alignments []int
	var e *Engine
	g := &Game{
		ApplicationConfig: &ApplicationConfig{Name: "test", ConfigPath: path, MaxFrames: 3},
		FnUpdate: func(_ float64, frame *memory.StackAllocator) error {
			sizes = append(sizes, frame.Size())
			alignments = append(alignments, frame.DefaultAlignment())
			switch len(sizes) {
			case 1:
				cfg := e.Config()
				cfg.Allocator.DefaultSize = 8192
				core.EventFire(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: cfg})
			case 2:
				cfg := e.Config()
				cfg.Allocator.DefaultAlignment = 128
				core.EventFire(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: cfg})
			}
			return nil
		},
	}
	e = newTestEngine(t, g)
	if core.GetLogLevel() != core.WarnLevel {
		t.Errorf("log level %s, want warn", core.GetLogLevel())
	}
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if len(sizes) != 3 || sizes[0] != 4096 || sizes[1] != 8192 || sizes[2] != 8192 {
		t.Errorf("frame allocator sizes %v", sizes)
	}
	if len(alignments) != 3 || alignments[0] != 32 || alignments[1] != 32 || alignments[2] != 128 {
		t.Errorf("frame allocator alignments %v", alignments)
	}

	missing, err := New(&Game{ApplicationConfig: &ApplicationConfig{ConfigPath: filepath.Join(t.TempDir(), "nope.toml")}})
	if err != nil {
		t.Fatal(err)
	}
	if err := missing.Initialize(); err == nil {
		t.Error("missing config file accepted")
	}
}
