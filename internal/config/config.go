// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads and validates the arxiv-analyst configuration from
// viper (config file plus ARXIV_ANALYST_* environment variables).
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

// Config groups all component configurations.
type Config struct {
	// Client configures the arXiv gateway.
	Client types.ClientConfig `mapstructure:"client"`

	// History configures the query-history store.
	History types.HistoryConfig `mapstructure:"history"`

	// Logging configures structured logging.
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`

	// Format is "console" for human-readable output or "json".
	Format string `mapstructure:"format" validate:"omitempty,oneof=console json"`
}

// Load reads configuration from v, applies defaults, and validates bounds.
func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.timeout", 30*time.Second)
	v.SetDefault("client.user_agent", "arxiv-analyst/0.1")
	v.SetDefault("client.max_results", 10)
	v.SetDefault("client.rate_limit", 3.0)
	v.SetDefault("client.burst", 3)
	v.SetDefault("client.max_retries", 3)
	v.SetDefault("history.path", "")
	v.SetDefault("history.max_entries", 20)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}
