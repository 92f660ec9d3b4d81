// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Search source implementations selectable through SEARCH_SOURCE
const (
	SourceBackend    = "backend"
	SourceOpenSearch = "opensearch"
	SourceMock       = "mock"
)

// Config holds all service configuration
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	SearchSource  string `env:"SEARCH_SOURCE" envDefault:"backend"`
	FailurePolicy string `env:"SEARCH_FAILURE_POLICY" envDefault:"fallback"`
	FlagDegraded  bool   `env:"SEARCH_FLAG_DEGRADED" envDefault:"false"`

	Backend    BackendConfig
	OpenSearch OpenSearchConfig
	Log        LogConfig
}

// BackendConfig holds the upstream search backend settings
type BackendConfig struct {
	URL        string        `env:"BACKEND_URL" envDefault:"http://localhost:8000"`
	APIKey     string        `env:"BACKEND_API_KEY"`
	Timeout    time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
	MaxRetries int           `env:"BACKEND_MAX_RETRIES" envDefault:"0"`
	RetryDelay time.Duration `env:"BACKEND_RETRY_DELAY" envDefault:"500ms"`
	RateLimit  float64       `env:"BACKEND_RATE_LIMIT" envDefault:"0"`
	RateBurst  int           `env:"BACKEND_RATE_BURST" envDefault:"1"`
}

// OpenSearchConfig holds the OpenSearch searcher settings
type OpenSearchConfig struct {
	URL   string `env:"OPENSEARCH_URL" envDefault:"http://localhost:9200"`
	Index string `env:"OPENSEARCH_INDEX" envDefault:"people"`
}

// LogConfig holds the structured logging settings
type LogConfig struct {
	Level     string `env:"LOG_LEVEL" envDefault:"debug"`
	AddSource bool   `env:"LOG_ADD_SOURCE" envDefault:"false"`
}

// Validate rejects values the service cannot start with
func (c *Config) Validate() error {
	switch c.SearchSource {
	case SourceBackend, SourceOpenSearch, SourceMock:
	default:
		return fmt.Errorf("unsupported search source %q", c.SearchSource)
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must not be negative")
	}
	if c.Backend.MaxRetries < 0 {
		return fmt.Errorf("BACKEND_MAX_RETRIES must not be negative")
	}
	if c.Backend.RateLimit < 0 {
		return fmt.Errorf("BACKEND_RATE_LIMIT must not be negative")
	}
	return nil
}

// LoadDotEnv reads variables from the given files (".env" when none) without
// overriding ones already set. Missing files are not an error.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("configuration loaded",
		slog.String("search_source", cfg.SearchSource),
		slog.String("failure_policy", cfg.FailurePolicy),
		slog.Duration("backend_timeout", cfg.Backend.Timeout),
		slog.Int("backend_max_retries", cfg.Backend.MaxRetries),
	)

	return cfg, nil
}
