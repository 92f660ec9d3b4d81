// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"encoding/json"
	"time"
)

// Config represents OpenSearch configuration
type Config struct {
	URL   string `json:"url"`
	Index string `json:"index"`
	Size  int    `json:"size"`
	// Timeout bounds the readiness check
	Timeout time.Duration `json:"timeout"`
}

// queryParams feeds the people query template
type queryParams struct {
	Query string
	Size  int
}

// PersonDocument is the indexed shape of a person
type PersonDocument struct {
	Name string `json:"name"`
	Link string `json:"link"`
	Text string `json:"text"`
}

// SearchResponse represents the OpenSearch search response
type SearchResponse struct {
	Hits `json:"hits"`
}

// Hits represents the hits in the search response
type Hits struct {
	Total `json:"total"`
	Hits  []Hit `json:"hits"`
}

// Total represents the total number of hits
type Total struct {
	Value int `json:"value"`
}

// Hit represents a single search result hit
type Hit struct {
	ID     string          `json:"_id"`
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
}
