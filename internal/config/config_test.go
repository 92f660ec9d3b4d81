// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SourceBackend, cfg.SearchSource)
	assert.Equal(t, "fallback", cfg.FailurePolicy)
	assert.False(t, cfg.FlagDegraded)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Empty(t, cfg.Backend.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 0, cfg.Backend.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Backend.RetryDelay)
	assert.Equal(t, float64(0), cfg.Backend.RateLimit)
	assert.Equal(t, 1, cfg.Backend.RateBurst)
	assert.Equal(t, "http://localhost:9200", cfg.OpenSearch.URL)
	assert.Equal(t, "people", cfg.OpenSearch.Index)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		expectErr bool
		check     func(t *testing.T, cfg *Config)
	}{
		{
			name: "backend overrides",
			env: map[string]string{
				"BACKEND_URL":         "https://search.internal",
				"BACKEND_TIMEOUT":     "2s",
				"BACKEND_MAX_RETRIES": "2",
				"BACKEND_RATE_LIMIT":  "7.5",
				"BACKEND_RATE_BURST":  "3",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://search.internal", cfg.Backend.URL)
				assert.Equal(t, 2*time.Second, cfg.Backend.Timeout)
				assert.Equal(t, 2, cfg.Backend.MaxRetries)
				assert.Equal(t, 7.5, cfg.Backend.RateLimit)
				assert.Equal(t, 3, cfg.Backend.RateBurst)
			},
		},
		{
			name: "mock source with surfaced failures",
			env: map[string]string{
				"SEARCH_SOURCE":         "mock",
				"SEARCH_FAILURE_POLICY": "surface",
				"SEARCH_FLAG_DEGRADED":  "true",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, SourceMock, cfg.SearchSource)
				assert.Equal(t, "surface", cfg.FailurePolicy)
				assert.True(t, cfg.FlagDegraded)
			},
		},
		{
			name:      "unknown source",
			env:       map[string]string{"SEARCH_SOURCE": "ldap"},
			expectErr: true,
		},
		{
			name:      "unparsable timeout",
			env:       map[string]string{"BACKEND_TIMEOUT": "soon"},
			expectErr: true,
		},
		{
			name:      "negative retries",
			env:       map[string]string{"BACKEND_MAX_RETRIES": "-1"},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			if assert.NoError(t, err) {
				tc.check(t, cfg)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	err := os.WriteFile(path, []byte("OPENSEARCH_INDEX=people-dotenv\n"), 0o600)
	if !assert.NoError(t, err) {
		return
	}
	t.Setenv("OPENSEARCH_INDEX", "")
	os.Unsetenv("OPENSEARCH_INDEX")

	assert.NoError(t, LoadDotEnv(path))
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))

	cfg, err := Load()
	if assert.NoError(t, err) {
		assert.Equal(t, "people-dotenv", cfg.OpenSearch.Index)
	}
}
