// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// RequestIDHeader is the header name for the request ID
const RequestIDHeader = "X-REQUEST-ID"

const (
	// SearchPath is the inbound people search endpoint
	SearchPath = "/api/search"
	// UpstreamSearchPath is appended to the backend base URL
	UpstreamSearchPath = "/search"
	// ContentTypeJSON is used for both inbound and outbound bodies
	ContentTypeJSON = "application/json"
)
