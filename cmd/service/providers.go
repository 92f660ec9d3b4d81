// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/config"
	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-people-search/internal/infrastructure/backend"
	"github.com/linuxfoundation/lfx-v2-people-search/internal/infrastructure/mock"
	"github.com/linuxfoundation/lfx-v2-people-search/internal/infrastructure/opensearch"
	"github.com/linuxfoundation/lfx-v2-people-search/internal/infrastructure/throttle"
	usecase "github.com/linuxfoundation/lfx-v2-people-search/internal/service"
)

// SearcherImpl builds the upstream people searcher selected by SEARCH_SOURCE,
// wrapped in the outbound rate limiter when one is configured.
func SearcherImpl(ctx context.Context, cfg *config.Config) (port.PeopleSearcher, error) {

	var (
		peopleSearcher port.PeopleSearcher
		err            error
	)

	switch cfg.SearchSource {
	case config.SourceMock:
		slog.InfoContext(ctx, "initializing mock people searcher")
		peopleSearcher = mock.NewMockPeopleSearcher()

	case config.SourceBackend:
		backendConfig := backend.Config{
			BaseURL:    cfg.Backend.URL,
			APIKey:     cfg.Backend.APIKey,
			Timeout:    cfg.Backend.Timeout,
			MaxRetries: cfg.Backend.MaxRetries,
			RetryDelay: cfg.Backend.RetryDelay,
		}
		slog.InfoContext(ctx, "initializing backend people searcher",
			"base_url", backendConfig.BaseURL,
			"timeout", backendConfig.Timeout,
			"max_retries", backendConfig.MaxRetries,
			"api_key_set", backendConfig.APIKey != "",
		)
		peopleSearcher, err = backend.NewPeopleSearcher(ctx, backendConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize backend people searcher: %w", err)
		}

	case config.SourceOpenSearch:
		slog.InfoContext(ctx, "initializing opensearch people searcher",
			"url", cfg.OpenSearch.URL,
			"index", cfg.OpenSearch.Index,
		)
		opensearchConfig := opensearch.Config{
			URL:     cfg.OpenSearch.URL,
			Index:   cfg.OpenSearch.Index,
			Timeout: cfg.Backend.Timeout,
		}
		peopleSearcher, err = opensearch.NewSearcher(ctx, opensearchConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenSearch people searcher: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported search implementation: %s", cfg.SearchSource)
	}

	limits := throttle.Config{
		RequestsPerSecond: cfg.Backend.RateLimit,
		Burst:             cfg.Backend.RateBurst,
	}
	if limits.Enabled() {
		slog.InfoContext(ctx, "limiting upstream search rate",
			"requests_per_second", limits.RequestsPerSecond,
			"burst", limits.Burst,
		)
	}

	return throttle.Wrap(peopleSearcher, limits), nil
}

// SearchOptionsImpl maps the configuration onto the people search options.
func SearchOptionsImpl(cfg *config.Config) ([]usecase.Option, error) {
	policy, err := usecase.ParseFailurePolicy(cfg.FailurePolicy)
	if err != nil {
		return nil, err
	}
	return []usecase.Option{
		usecase.WithFailurePolicy(policy),
		usecase.WithDegradedFlag(cfg.FlagDegraded),
		usecase.WithTimeout(cfg.Backend.Timeout),
	}, nil
}
