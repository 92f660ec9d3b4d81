// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package httpclient

import (
	"time"
)

// Config holds the configuration for the HTTP client
type Config struct {
	// Timeout bounds a single attempt, including reading the body
	Timeout time.Duration

	// MaxRetries is the number of extra attempts after the first one fails.
	// Zero disables retries.
	MaxRetries int

	// RetryDelay is the delay between retry attempts
	RetryDelay time.Duration

	// RetryBackoff doubles RetryDelay on each further attempt
	RetryBackoff bool

	// UserAgent is sent on every request when non-empty
	UserAgent string
}

// DefaultConfig returns a Config with a single attempt and a 10s deadline.
func DefaultConfig() Config {
	return Config{
		Timeout:      10 * time.Second,
		MaxRetries:   0,
		RetryDelay:   500 * time.Millisecond,
		RetryBackoff: true,
	}
}
