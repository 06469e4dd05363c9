package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mergington/signups/internal/domain/model"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if SIGNUPS_CONFIG is set
//  3. env (prefix SIGNUPS_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SIGNUPS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SIGNUPS_ADDR, SIGNUPS_LOG_LEVEL, ...
	// Map env keys like SIGNUPS_ROSTER_PATH -> roster_path (flat keys).
	envProvider := env.Provider("SIGNUPS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "signups_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.MetricsIntervalSeconds <= 0 {
		return nil, fmt.Errorf("%w: metrics_interval_seconds must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}

// LoadRoster reads the activity roster from cfg.RosterPath. With no path set
// it returns the built-in roster. The file is a YAML mapping from activity
// name to description/schedule/max_participants/participants.
func (c *Config) LoadRoster(_ context.Context) (model.Roster, error) {
	if c.RosterPath == "" {
		return model.DefaultRoster(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(c.RosterPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRoster, err)
	}

	roster := model.Roster{}
	if err := k.UnmarshalWithConf("", &roster, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRoster, err)
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("%w: roster file has no activities", ErrLoadRoster)
	}
	for name, a := range roster {
		if a.Participants == nil {
			a.Participants = []string{}
			roster[name] = a
		}
	}
	return roster, nil
}
