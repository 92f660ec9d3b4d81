// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"net/url"
	"time"
)

const defaultBaseURL = "http://localhost:8000"

// Config holds the configuration for the upstream search backend client
type Config struct {
	// BaseURL of the backend; the search endpoint is BaseURL + "/search"
	BaseURL string

	// APIKey, when set, is sent as a bearer token. Unset by default.
	APIKey string

	// Timeout is the HTTP client timeout for a single attempt
	Timeout time.Duration

	// MaxRetries is the number of extra attempts; 0 means a single call
	MaxRetries int

	// RetryDelay is the delay between retry attempts
	RetryDelay time.Duration
}

// DefaultConfig returns a Config pointing at a local backend with a single attempt
func DefaultConfig() Config {
	return Config{
		BaseURL:    defaultBaseURL,
		Timeout:    10 * time.Second,
		MaxRetries: 0,
		RetryDelay: 500 * time.Millisecond,
	}
}

// Validate fills defaults and rejects unusable values
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid backend URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend URL %q: scheme must be http or https", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("backend max retries must not be negative, got %d", c.MaxRetries)
	}
	return nil
}
