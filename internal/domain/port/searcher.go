// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/model"
)

// PeopleSearcher defines the behavior of an upstream people search source
// This abstraction allows different search implementations (HTTP backend, OpenSearch, etc.)
// without the domain layer knowing about specific implementations
type PeopleSearcher interface {
	// SearchPeople returns the upstream records matching the query, in upstream order
	SearchPeople(ctx context.Context, query string) ([]model.UpstreamRecord, error)

	// IsReady checks if the search source is ready
	IsReady(ctx context.Context) error
}
