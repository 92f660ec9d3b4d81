// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

// SearchCriteria carries the free-text query submitted by the caller.
// An empty Query is valid and forwarded as-is.
type SearchCriteria struct {
	Query string
}
