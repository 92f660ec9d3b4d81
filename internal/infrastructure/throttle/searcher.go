// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package throttle

import (
	"context"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/errors"

	"golang.org/x/time/rate"
)

// Config holds the outbound token bucket settings
type Config struct {
	// RequestsPerSecond of zero or less disables limiting
	RequestsPerSecond float64
	Burst             int
}

// Enabled reports whether the config asks for any limiting at all.
func (c Config) Enabled() bool {
	return c.RequestsPerSecond > 0
}

// PeopleSearcher limits how often the wrapped searcher is called.
// Readiness checks bypass the limiter.
type PeopleSearcher struct {
	next    port.PeopleSearcher
	limiter *rate.Limiter
}

// SearchPeople waits for a token and then delegates. A wait that cannot finish
// before the context deadline is reported as an upstream failure.
func (s *PeopleSearcher) SearchPeople(ctx context.Context, query string) ([]model.UpstreamRecord, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		slog.WarnContext(ctx, "upstream rate limit wait failed",
			"error", err,
			"limit", float64(s.limiter.Limit()),
			"burst", s.limiter.Burst(),
		)
		return nil, errors.NewServiceUnavailable("upstream rate limit exceeded", err)
	}
	return s.next.SearchPeople(ctx, query)
}

// IsReady checks the wrapped searcher
func (s *PeopleSearcher) IsReady(ctx context.Context) error {
	return s.next.IsReady(ctx)
}

// Wrap decorates next with a token bucket. With limiting disabled next is returned as is.
func Wrap(next port.PeopleSearcher, config Config) port.PeopleSearcher {
	if !config.Enabled() {
		return next
	}
	burst := config.Burst
	if burst < 1 {
		burst = 1
	}
	return &PeopleSearcher{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), burst),
	}
}
