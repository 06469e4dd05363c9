// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RosterPath optionally names a YAML file replacing the built-in
	// activity roster at startup. Signup mutations still reset on restart.
	RosterPath string `koanf:"roster_path"`

	// MetricsIntervalSeconds sets how often background gauges are refreshed.
	MetricsIntervalSeconds int `koanf:"metrics_interval_seconds"`
}

// New creates a Config populated with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:               "info",
		Addr:                   ":8000",
		RosterPath:             "",
		MetricsIntervalSeconds: 10,
	}
}
