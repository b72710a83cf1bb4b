/*
Testbed drives the engine with a small geometry workload: moving planes,
orbiting circles and per frame scratch memory.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spaghettifunk/bedrock/engine"
	"github.com/spaghettifunk/bedrock/engine/core"
)

func main() {
	configPath := flag.String("config", "", "path of the TOML engine configuration")
	watch := flag.Bool("watch", false, "reload the configuration when the file changes")
	frames := flag.Uint64("frames", 0, "stop after this many frames, 0 runs until interrupted")
	fps := flag.Int("fps", 60, "frame rate cap, 0 disables it")
	stats := flag.Duration("stats", 5*time.Second, "how often frame statistics are logged")
	flag.Parse()

	tb := NewTestGame(&engine.ApplicationConfig{
		Name:            "Bedrock Testbed",
		ConfigPath:      *configPath,
		WatchConfig:     *watch && *configPath != "",
		MaxFrames:       *frames,
		TargetFrameRate: *fps,
		StatsInterval:   *stats,
	})

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal("%s", err)
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		sig := <-sigCh
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT, Data: sig})
	}()

	// run engine
	if err := e.Run(); err != nil {
		core.LogFatal("%s", err)
	}
}
