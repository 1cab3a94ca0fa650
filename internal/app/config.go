package app

import (
	"io"

	"brandos/internal/session"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath replaces the layered configuration with a single file.
	ConfigPath string

	// Overrides are applied after the configuration file values, so
	// command line flags win.
	Overrides []session.Option

	// Output receives the no-TUI summary.
	Output io.Writer
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
	}
}
