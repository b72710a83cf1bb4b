package engine

import "time"

type ApplicationConfig struct {
	// The application name used in logs.
	Name string
	// Path of the TOML engine configuration. Empty means defaults.
	ConfigPath string
	// Reload the configuration whenever the file changes.
	WatchConfig bool
	// Stop after this many frames. Zero runs until Shutdown.
	MaxFrames uint64
	// Frames are slowed down to this rate when positive.
	TargetFrameRate int
	// How often the frame statistics are logged.
	StatsInterval time.Duration
}

func (c *ApplicationConfig) targetFrameTime() time.Duration {
	if c.TargetFrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TargetFrameRate)
}
