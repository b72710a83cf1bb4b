package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigWatcherReloads(t *testing.T) {
	prevLevel := GetLogLevel()
	t.Cleanup(func() {
		SetAssertMode(AssertModeStrict)
		SetLogLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "bedrock.toml")
	if err := os.WriteFile(path, []byte("[assertions]\nmode = \"strict\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan Config, 4)
	cw, err := WatchConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	defer cw.Close()

	handle := EventRegister(EVENT_CODE_CONFIG_RELOADED, func(context EventContext) bool {
		if context.Sender != cw {
			return false
		}
		select {
		case changed <- context.Data.(Config):
		default:
		}
		return false
	})
	defer EventUnregister(EVENT_CODE_CONFIG_RELOADED, handle)

	if cw.Current().Assertions.Mode != "strict" {
		t.Fatalf("initial mode = %q", cw.Current().Assertions.Mode)
	}

	if err := os.WriteFile(path, []byte("[assertions]\nmode = \"ignore\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.Assertions.Mode != "ignore" {
				continue
			}
			if GetAssertMode() != AssertModeIgnore {
				t.Errorf("assert mode not applied: %s", GetAssertMode())
			}
			if cw.Current().Assertions.Mode != "ignore" {
				t.Errorf("Current() = %q", cw.Current().Assertions.Mode)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestConfigWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bedrock.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cw, err := WatchConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := cw.Close(); err == nil {
		t.Error("second Close should fail")
	}
}
