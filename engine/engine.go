package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spaghettifunk/bedrock/engine/core"
	"github.com/spaghettifunk/bedrock/engine/memory"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

const defaultStatsInterval = 5 * time.Second

/**
 * @brief Drives a Game frame by frame.
 *
 * Every frame gets the frame allocator: a mark is taken before the update and
 * restored after it, so per frame scratch memory costs nothing to release.
 * The engine configuration is loaded once and, when asked to, reloaded from
 * disk between two frames.
 */
type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    atomic.Bool

	config        core.Config
	watcher       *core.ConfigWatcher
	pendingConfig atomic.Pointer[core.Config]
	eventHandles  map[core.EventCode]core.EventHandle

	frameAllocator *memory.StackAllocator
	clock          *core.Clock
	metrics        *core.FrameMetrics
	frameCount     uint64
	lastTime       time.Duration
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, errors.New("the game and its application config are required")
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewFrameMetrics(),
	}, nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// Config returns the configuration the current frame runs with.
func (e *Engine) Config() core.Config {
	return e.config
}

// FrameCount returns the number of frames run so far.
func (e *Engine) FrameCount() uint64 {
	return e.frameCount
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine cannot be initialized twice")
	}
	e.currentStage = EngineStageInitializing
	appConfig := e.gameInstance.ApplicationConfig

	// register some events
	e.eventHandles = map[core.EventCode]core.EventHandle{
		core.EVENT_CODE_APPLICATION_QUIT: core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent),
		core.EVENT_CODE_CONFIG_RELOADED:  core.EventRegister(core.EVENT_CODE_CONFIG_RELOADED, e.onEvent),
	}

	if err := e.loadConfig(appConfig); err != nil {
		e.unregisterEvents()
		e.currentStage = EngineStageUninitialized
		return err
	}

	e.frameAllocator = newFrameAllocator(e.config.Allocator)

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			core.LogError("failed to initialize %s: %s", appConfig.Name, err)
			return errors.Join(err, e.teardown())
		}
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("%s initialized, frame allocator of %d bytes", appConfig.Name, e.frameAllocator.Size())
	return nil
}

func (e *Engine) loadConfig(appConfig *ApplicationConfig) error {
	switch {
	case appConfig.ConfigPath == "":
		e.config = core.DefaultConfig()
		return e.config.Apply()

	case appConfig.WatchConfig:
		w, err := core.WatchConfig(appConfig.ConfigPath)
		if err != nil {
			return err
		}
		e.watcher = w
		e.config = w.Current()
		return nil

	default:
		cfg, err := core.LoadConfig(appConfig.ConfigPath)
		if err != nil {
			return err
		}
		e.config = cfg
		return cfg.Apply()
	}
}

// onEvent runs on the goroutine that fired the event: config changes are only
// handed over to the frame loop.
func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down")
		if err := e.Shutdown(); err != nil {
			core.LogDebug("%s: %s", e.gameInstance.ApplicationConfig.Name, err)
		}
	case core.EVENT_CODE_CONFIG_RELOADED:
		cfg, ok := context.Data.(core.Config)
		if !ok {
			core.LogError("wrong data associated with the event type `%d`", context.Type)
			return false
		}
		e.pendingConfig.Store(&cfg)
	}
	// Other listeners may care too.
	return false
}

func (e *Engine) unregisterEvents() {
	for code, handle := range e.eventHandles {
		core.EventUnregister(code, handle)
	}
	e.eventHandles = nil
}

// applyPendingConfig runs between frames, when nothing lives in the frame
// allocator, so it can be replaced safely.
func (e *Engine) applyPendingConfig() {
	cfg := e.pendingConfig.Swap(nil)
	if cfg == nil {
		return
	}
	if cfg.Allocator.DefaultSize != e.frameAllocator.Size() {
		core.LogInfo("resizing the frame allocator from %d to %d bytes", e.frameAllocator.Size(), cfg.Allocator.DefaultSize)
		if err := e.frameAllocator.Release(); err != nil {
			core.LogWarn("failed to release the frame allocator: %s", err)
		}
		e.frameAllocator = newFrameAllocator(cfg.Allocator)
	} else if err := e.frameAllocator.SetDefaultAlignment(cfg.Allocator.DefaultAlignment); err != nil {
		core.LogWarn("keeping the default alignment of %d: %s", e.frameAllocator.DefaultAlignment(), err)
	}
	e.config = *cfg
}

func newFrameAllocator(cfg core.AllocatorConfig) *memory.StackAllocator {
	s := memory.NewStackAllocator(cfg.DefaultSize)
	if err := s.SetDefaultAlignment(cfg.DefaultAlignment); err != nil {
		core.LogWarn("frame allocator keeps the default alignment of %d: %s", s.DefaultAlignment(), err)
	}
	return s
}

// Run blocks until Shutdown is called, MaxFrames frames ran, or an update
// fails. The engine is torn down before it returns.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine must be initialized before running")
	}
	e.currentStage = EngineStageRunning
	e.isRunning.Store(true)

	appConfig := e.gameInstance.ApplicationConfig
	statsInterval := appConfig.StatsInterval
	if statsInterval <= 0 {
		statsInterval = defaultStatsInterval
	}

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()
	lastStats := e.lastTime

	var runErr error
	for e.isRunning.Load() {
		e.applyPendingConfig()

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		frameStartTime := time.Now()

		if err := e.runFrame(delta.Seconds()); err != nil {
			core.LogError("game update failed, shutting down: %s", err)
			runErr = err
			break
		}

		e.frameCount++
		e.metrics.Update(delta)
		if appConfig.MaxFrames > 0 && e.frameCount >= appConfig.MaxFrames {
			e.isRunning.Store(false)
		}

		if currentTime-lastStats >= statsInterval {
			stats := e.frameAllocator.Stats()
			core.LogInfo("frame %d: %.1f fps, %.3f ms/frame, frame allocator high water %d of %d bytes",
				e.frameCount, e.metrics.FPS(), e.metrics.FrameTime(), stats.HighWater, e.frameAllocator.Size())
			lastStats = currentTime
		}

		frameElapsedTime := time.Since(frameStartTime)
		if remaining := appConfig.targetFrameTime() - frameElapsedTime; remaining > 0 {
			time.Sleep(remaining)
		}

		e.lastTime = currentTime
	}

	e.clock.Stop()
	return errors.Join(runErr, e.teardown())
}

func (e *Engine) runFrame(delta float64) error {
	if e.gameInstance.FnUpdate == nil {
		return nil
	}
	mark := e.frameAllocator.GetMark()
	err := e.gameInstance.FnUpdate(delta, e.frameAllocator)
	if rollbackErr := e.frameAllocator.RollbackToMark(mark); rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}
	return err
}

// Shutdown asks a running engine to stop after the current frame. It is safe
// to call from any goroutine, typically a signal handler.
func (e *Engine) Shutdown() error {
	if !e.isRunning.Swap(false) {
		return errors.New("engine is not running")
	}
	core.LogInfo("shutdown requested")
	return nil
}

func (e *Engine) teardown() error {
	e.currentStage = EngineStageShuttingDown
	var errs []error

	if e.gameInstance.FnShutdown != nil {
		errs = append(errs, e.gameInstance.FnShutdown())
	}
	if e.watcher != nil {
		errs = append(errs, e.watcher.Close())
		e.watcher = nil
	}
	e.unregisterEvents()
	if e.frameAllocator != nil {
		errs = append(errs, e.frameAllocator.Release())
		e.frameAllocator = nil
	}

	e.currentStage = EngineStageUninitialized
	core.LogInfo("%s shut down after %d frames", e.gameInstance.ApplicationConfig.Name, e.frameCount)
	return errors.Join(errs...)
}
