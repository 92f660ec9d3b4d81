// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// Placeholders used when an upstream record lacks a field.
const (
	UnknownName     = "Unknown"
	DefaultTitle    = "Professional"
	DefaultCompany  = "Various Companies"
	DefaultLocation = "Australia"
	EmailDomain     = "example.com"
)

// Source labels attached to each display record.
const (
	SourceLinkedIn             = "LinkedIn"
	SourceProfessionalNetworks = "Professional Networks"
)

// Search-time labels. These are fixed strings, not measurements.
const (
	SearchTimeLabel   = "0.5s"
	FallbackTimeLabel = "0.3s"
)

// Accuracy scores are drawn from [MinAccuracy, MaxAccuracy].
const (
	MinAccuracy = 90
	MaxAccuracy = 99
)

// TimestampLayout renders UTC instants with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Caller-facing error bodies.
const (
	ErrInvalidJSON         = "Invalid JSON in request body"
	ErrQueryRequired       = "Query is required and must be a string"
	ErrInternal            = "Internal server error"
	ErrMethodNotAllowed    = "Method not allowed. Use POST instead."
	ErrUpstreamUnavailable = "Upstream search unavailable"
)

// DefaultResultSize caps how many people an index-backed source returns
const DefaultResultSize = 50
