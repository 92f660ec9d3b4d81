// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/model"
)

// PeopleSearcher implements the port.PeopleSearcher interface using the search backend
type PeopleSearcher struct {
	client *Client
}

// SearchPeople forwards the query to the backend and converts its records
func (s *PeopleSearcher) SearchPeople(ctx context.Context, query string) ([]model.UpstreamRecord, error) {
	slog.DebugContext(ctx, "searching people via backend",
		"query", query,
	)

	results, err := s.client.Search(ctx, query)
	if err != nil {
		slog.ErrorContext(ctx, "error searching people via backend", "error", err)
		return nil, err
	}

	records := s.convertToDomainModel(results)

	slog.DebugContext(ctx, "backend people search completed",
		"query", query,
		"count", len(records),
	)

	return records, nil
}

// convertToDomainModel keeps backend order
func (s *PeopleSearcher) convertToDomainModel(results []*SearchResult) []model.UpstreamRecord {
	records := make([]model.UpstreamRecord, len(results))
	for i, r := range results {
		records[i] = model.UpstreamRecord{
			Name: r.Metadata.Name,
			Link: r.Metadata.Link,
			Text: r.Text,
		}
	}
	return records
}

// IsReady checks if the backend is ready to serve requests
func (s *PeopleSearcher) IsReady(ctx context.Context) error {
	return s.client.IsReady(ctx)
}

// NewPeopleSearcher creates a new backend-based people searcher. The
// backend is not contacted here so the service can start before it does.
func NewPeopleSearcher(ctx context.Context, config Config) (*PeopleSearcher, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid backend configuration: %w", err)
	}

	slog.InfoContext(ctx, "backend people searcher initialized",
		"base_url", config.BaseURL,
		"timeout", config.Timeout,
		"max_retries", config.MaxRetries,
		"authenticated", config.APIKey != "",
	)

	return &PeopleSearcher{
		client: NewClient(config),
	}, nil
}
