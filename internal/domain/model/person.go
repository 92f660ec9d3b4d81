// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import "time"

// UpstreamRecord is one person as returned by an upstream search source.
// Fields the source did not provide are left empty.
type UpstreamRecord struct {
	// Name of the person, from the record metadata
	Name string
	// Link is typically a profile URL
	Link string
	// Text is a free-form description
	Text string
}

// Person is the normalized display record returned to callers.
type Person struct {
	ID       int
	Name     string
	Title    string
	Company  string
	Location string
	// Email is synthesized from the name, it is not a real address
	Email    string
	LinkedIn string
	Verified bool
	Accuracy int
	Sources  []string
	RawText  string
}

// SearchMetadata describes a search response.
type SearchMetadata struct {
	// SearchTime is a fixed label, not a measurement
	SearchTime   string
	TotalResults int
	// Accuracy is the mean of the per-person accuracy scores
	Accuracy  float64
	Timestamp time.Time
	// Degraded is set on fallback payloads when the operator asks for it
	Degraded bool
}

// SearchResult contains the results of a people search
type SearchResult struct {
	Query    string
	People   []Person
	Metadata SearchMetadata
}
