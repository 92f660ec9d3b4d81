// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

// SearchResponse is the body of a successful POST /api/search.
type SearchResponse struct {
	Query    string          `json:"query"`
	Results  []*PersonResult `json:"results"`
	Metadata *SearchMetadata `json:"metadata"`
}

// PersonResult is one normalized person.
type PersonResult struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Email    string   `json:"email"`
	LinkedIn string   `json:"linkedin"`
	Verified bool     `json:"verified"`
	Accuracy int      `json:"accuracy"`
	Sources  []string `json:"sources"`
	RawText  string   `json:"rawText"`
}

// SearchMetadata describes how the response was produced.
type SearchMetadata struct {
	SearchTime   string  `json:"searchTime"`
	TotalResults int     `json:"totalResults"`
	Accuracy     float64 `json:"accuracy"`
	Timestamp    string  `json:"timestamp"`
	Degraded     bool    `json:"degraded,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
