package types

import "time"

// HTTPConfig holds shared HTTP settings for components that talk to arXiv.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with requests
	// (e.g. "arxiv-analyst/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ClientConfig holds settings for the arXiv gateway.
type ClientConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxResults is the default result cap for searches (default 10).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results" validate:"omitempty,min=1,max=100"`

	// RateLimit is the sustained request rate against the API in requests
	// per second (default 3, matching arXiv's published guidance).
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit" validate:"omitempty,gt=0"`

	// Burst is the token-bucket burst size (default 3).
	Burst int `json:"burst" yaml:"burst" mapstructure:"burst" validate:"omitempty,min=1"`

	// MaxRetries caps retry attempts on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries" validate:"omitempty,min=0,max=10"`
}

// HistoryConfig holds settings for the query-history store.
type HistoryConfig struct {
	// Path is the SQLite database file. Empty disables history recording.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// MaxEntries caps how many history rows the list command returns
	// (default 20).
	MaxEntries int `json:"max_entries" yaml:"max_entries" mapstructure:"max_entries" validate:"omitempty,min=1"`
}
