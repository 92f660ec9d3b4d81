// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"text/template"
	"time"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/httpclient"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

var queryPeopleTemplate = template.Must(
	template.New("queryPeople").
		Funcs(template.FuncMap{
			"quote": jsonString,
		}).
		Parse(queryPeopleSource))

// jsonString renders s as a JSON string literal for the query template
func jsonString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// OpenSearchSearcher implements the port.PeopleSearcher interface for an OpenSearch people index
type OpenSearchSearcher struct {
	client OpenSearchClientRetriever
	index  string
	size   int
}

// OpenSearchClientRetriever defines the interface for OpenSearch operations
// This allows for easy mocking and testing
type OpenSearchClientRetriever interface {
	Search(ctx context.Context, index string, query []byte) (*SearchResponse, error)
	IsReady(ctx context.Context) error
}

// SearchPeople implements the PeopleSearcher interface
func (os *OpenSearchSearcher) SearchPeople(ctx context.Context, query string) ([]model.UpstreamRecord, error) {
	slog.DebugContext(ctx, "executing opensearch people query",
		"query", query,
	)

	body, err := os.Render(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to render query: %w", err)
	}

	response, err := os.client.Search(ctx, os.index, body)
	if err != nil {
		return nil, fmt.Errorf("opensearch search failed: %w", err)
	}

	records := os.convertResponse(ctx, response)

	slog.DebugContext(ctx, "opensearch people search completed",
		"results_count", len(records),
	)
	return records, nil
}

// Render generates the OpenSearch query for the free-text people query
func (os *OpenSearchSearcher) Render(ctx context.Context, query string) ([]byte, error) {
	var buf bytes.Buffer
	params := queryParams{Query: query, Size: os.size}
	if err := queryPeopleTemplate.Execute(&buf, params); err != nil {
		slog.ErrorContext(ctx, "failed to render query template", "error", err)
		return nil, err
	}
	if !json.Valid(buf.Bytes()) {
		slog.ErrorContext(ctx, "rendered query is not valid JSON", "query", buf.String())
		return nil, fmt.Errorf("rendered query is not valid JSON")
	}
	return buf.Bytes(), nil
}

// convertResponse converts OpenSearch hits to upstream records, keeping hit order
func (os *OpenSearchSearcher) convertResponse(ctx context.Context, response *SearchResponse) []model.UpstreamRecord {
	if response == nil {
		return []model.UpstreamRecord{}
	}
	records := make([]model.UpstreamRecord, 0, len(response.Hits.Hits))

	for _, hit := range response.Hits.Hits {
		record, err := os.convertHit(hit)
		if err != nil {
			// Log error but continue processing other hits
			slog.ErrorContext(ctx, "failed to convert hit", "hit_id", hit.ID, "error", err)
			continue
		}
		records = append(records, record)
	}

	return records
}

// convertHit converts a single OpenSearch hit to an upstream record
func (os *OpenSearchSearcher) convertHit(hit Hit) (model.UpstreamRecord, error) {
	if len(hit.Source) == 0 {
		return model.UpstreamRecord{}, nil
	}
	var doc PersonDocument
	if err := json.Unmarshal(hit.Source, &doc); err != nil {
		return model.UpstreamRecord{}, fmt.Errorf("failed to unmarshal source data: %w", err)
	}
	return model.UpstreamRecord{
		Name: doc.Name,
		Link: doc.Link,
		Text: doc.Text,
	}, nil
}

// IsReady checks if the cluster answers
func (os *OpenSearchSearcher) IsReady(ctx context.Context) error {
	return os.client.IsReady(ctx)
}

// NewSearcher returns a new OpenSearchSearcher implementation
func NewSearcher(ctx context.Context, config Config) (*OpenSearchSearcher, error) {

	if config.URL == "" {
		slog.ErrorContext(ctx, "opensearch URL is required")
		return nil, fmt.Errorf("opensearch URL is required")
	}
	if config.Index == "" {
		slog.ErrorContext(ctx, "opensearch index is required")
		return nil, fmt.Errorf("opensearch index is required")
	}
	if config.Size <= 0 {
		config.Size = constants.DefaultResultSize
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}

	opensearchClient, errOpensearchClient := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses: []string{config.URL},
			Transport: &http.Transport{
				MaxIdleConnsPerHost:   10,
				ResponseHeaderTimeout: config.Timeout,
				DialContext:           (&net.Dialer{Timeout: 3 * time.Second}).DialContext,
			},
		},
	})
	if errOpensearchClient != nil {
		slog.ErrorContext(ctx, "failed to create OpenSearch client", "error", errOpensearchClient)
		return nil, fmt.Errorf("failed to create OpenSearch client: %w", errOpensearchClient)
	}

	slog.InfoContext(ctx, "opensearch people searcher initialized",
		"url", config.URL,
		"index", config.Index,
		"size", config.Size,
	)

	return &OpenSearchSearcher{
		client: &httpClient{
			baseURL: config.URL,
			pinger:  httpclient.NewClient(httpclient.Config{Timeout: config.Timeout}),
			client:  opensearchClient,
		},
		index: config.Index,
		size:  config.Size,
	}, nil
}
