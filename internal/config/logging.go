// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog logger from cfg. Unknown levels fall back to
// warn; console format writes human-readable lines to stderr so log output
// stays out of piped command results.
func NewLogger(cfg LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "json" {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.Level(level).With().Timestamp().Logger()
}
