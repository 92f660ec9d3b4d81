// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/linuxfoundation/lfx-v2-people-search/pkg/constants"
	pkgerrors "github.com/linuxfoundation/lfx-v2-people-search/pkg/errors"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/httpclient"
)

// Client represents the upstream search backend API client
type Client struct {
	config     Config
	httpClient *httpclient.Client
}

// Search posts the query to <BaseURL>/search and decodes the list of results
func (c *Client) Search(ctx context.Context, query string) ([]*SearchResult, error) {
	body, err := json.Marshal(SearchRequest{Query: query})
	if err != nil {
		return nil, pkgerrors.NewUnexpected("failed to encode search request", err)
	}

	headers := map[string]string{
		"Content-Type": constants.ContentTypeJSON,
	}
	if c.config.APIKey != "" {
		headers["Authorization"] = fmt.Sprintf("Bearer %s", c.config.APIKey)
	}

	resp, err := c.httpClient.Request(ctx, http.MethodPost, c.searchURL(), body, headers)
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			return nil, pkgerrors.NewServiceUnavailable(fmt.Sprintf("backend search failed with status %d", statusErr.StatusCode), err)
		}
		return nil, pkgerrors.NewServiceUnavailable("backend search request failed", err)
	}

	results, err := decodeResults(resp.Body)
	if err != nil {
		return nil, pkgerrors.NewUnexpected("failed to decode backend search response", err)
	}
	return results, nil
}

// IsReady checks if the backend answers at its base URL. Any status below
// 500 counts, since the backend is only required to serve /search.
func (c *Client) IsReady(ctx context.Context) error {
	_, err := c.httpClient.Request(ctx, http.MethodGet, c.config.BaseURL, nil, nil)
	if err == nil {
		return nil
	}

	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError {
		return nil
	}
	return pkgerrors.NewServiceUnavailable("search backend is not reachable", err)
}

func (c *Client) searchURL() string {
	return strings.TrimRight(c.config.BaseURL, "/") + constants.UpstreamSearchPath
}

// NewClient creates a new backend API client
func NewClient(config Config) *Client {
	httpConfig := httpclient.Config{
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		RetryDelay:   config.RetryDelay,
		RetryBackoff: true,
		UserAgent:    "lfx-v2-people-search",
	}

	return &Client{
		config:     config,
		httpClient: httpclient.NewClient(httpConfig),
	}
}
