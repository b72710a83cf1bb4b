package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LogConfig struct {
	// One of "debug", "info", "warn", "error", "fatal".
	Level string `toml:"level"`
}

type AssertionsConfig struct {
	// Either "strict" or "ignore".
	Mode string `toml:"mode"`
}

// MaxAllocatorAlignment is the largest alignment an allocator accepts.
const MaxAllocatorAlignment = 1 << 16

type AllocatorConfig struct {
	// Size in bytes of the arenas created by default.
	DefaultSize int `toml:"default_size"`
	// Alignment used when the caller does not ask for a specific one.
	DefaultAlignment int `toml:"default_alignment"`
}

// Config is the process wide engine configuration, usually read from a TOML file.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Assertions AssertionsConfig `toml:"assertions"`
	Allocator  AllocatorConfig  `toml:"allocator"`
}

func DefaultConfig() Config {
	return Config{
		Log:        LogConfig{Level: "info"},
		Assertions: AssertionsConfig{Mode: "strict"},
		Allocator: AllocatorConfig{
			DefaultSize:      1 << 20,
			DefaultAlignment: 8,
		},
	}
}

// ParseConfig decodes TOML on top of DefaultConfig, so missing keys keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if _, err := ParseAssertMode(c.Assertions.Mode); err != nil {
		return err
	}
	if c.Allocator.DefaultSize <= 0 {
		return fmt.Errorf("allocator default_size must be positive, got %d", c.Allocator.DefaultSize)
	}
	a := c.Allocator.DefaultAlignment
	if a <= 0 || a > MaxAllocatorAlignment || a&(a-1) != 0 {
		return fmt.Errorf("allocator default_alignment must be a power of two up to %d, got %d: %w", MaxAllocatorAlignment, a, ErrInvalidAlignment)
	}
	return nil
}

// Apply pushes the log level and assertion mode to the engine globals.
func (c Config) Apply() error {
	level, err := ParseLogLevel(c.Log.Level)
	if err != nil {
		return err
	}
	mode, err := ParseAssertMode(c.Assertions.Mode)
	if err != nil {
		return err
	}
	SetLogLevel(level)
	SetAssertMode(mode)
	LogDebug("config applied: log=%s assertions=%s", level, mode)
	return nil
}

func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
