// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the rate-limited, retrying HTTP client used
// for all arXiv API traffic.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// RetryBaseDelay is the base duration for exponential backoff on HTTP 429
// responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const (
	defaultTimeout    = 30 * time.Second
	defaultRateLimit  = 3.0
	defaultBurst      = 3
	defaultMaxRetries = 3
)

// Config holds client settings. Zero values fall back to defaults that
// match arXiv's published request-rate guidance.
type Config struct {
	Timeout    time.Duration
	UserAgent  string
	RateLimit  float64
	Burst      int
	MaxRetries int
}

// Client wraps http.Client with a token-bucket rate limiter and retry on
// HTTP 429. It is safe for concurrent use.
type Client struct {
	http       *http.Client
	limiter    *rate.Limiter
	userAgent  string
	maxRetries int
}

// New builds a Client from cfg, applying defaults for unset fields.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}

	return &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
	}
}

// Get issues a GET to url, waiting for the rate limiter before each
// attempt and backing off on HTTP 429. The delay starts at RetryBaseDelay
// and doubles per attempt. After exhausting retries the last 429 response
// is returned so the caller can inspect it. A cancelled context during a
// backoff wait returns ctx.Err().
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= c.maxRetries {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
