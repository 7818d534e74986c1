// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "arxiv-analyst/0.1", cfg.Client.UserAgent)
	assert.Equal(t, 10, cfg.Client.MaxResults)
	assert.Equal(t, 3.0, cfg.Client.RateLimit)
	assert.Equal(t, 3, cfg.Client.Burst)
	assert.Equal(t, 3, cfg.Client.MaxRetries)
	assert.Empty(t, cfg.History.Path)
	assert.Equal(t, 20, cfg.History.MaxEntries)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	v.Set("client.max_results", 50)
	v.Set("client.user_agent", "research-bot/2.0")
	v.Set("history.path", "/tmp/history.db")
	v.Set("logging.level", "debug")
	v.Set("logging.format", "json")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Client.MaxResults)
	assert.Equal(t, "research-bot/2.0", cfg.Client.UserAgent)
	assert.Equal(t, "/tmp/history.db", cfg.History.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsOutOfBounds(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"max_results too large", "client.max_results", 500},
		{"max_results negative", "client.max_results", -1},
		{"rate_limit negative", "client.rate_limit", -2.0},
		{"burst zero rejected", "client.burst", -1},
		{"bad log level", "logging.level", "loud"},
		{"bad log format", "logging.format", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}
