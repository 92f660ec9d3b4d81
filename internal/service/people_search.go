// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/errors"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/metrics"
)

// FailurePolicy decides what callers see when the upstream search fails.
type FailurePolicy string

const (
	// FailurePolicyFallback answers with the fixed fallback payload
	FailurePolicyFallback FailurePolicy = "fallback"
	// FailurePolicySurface answers with a ServiceUnavailable error
	FailurePolicySurface FailurePolicy = "surface"
)

// ParseFailurePolicy accepts "fallback" or "surface".
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch p := FailurePolicy(s); p {
	case FailurePolicyFallback, FailurePolicySurface:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported failure policy %q", s)
	}
}

// PeopleSearcher defines the people search business operations
type PeopleSearcher interface {
	// SearchPeople runs the query upstream and returns normalized people
	SearchPeople(ctx context.Context, criteria model.SearchCriteria) (*model.SearchResult, error)

	// IsReady checks if the upstream search source is ready
	IsReady(ctx context.Context) error
}

// PeopleSearch handles people search business operations
// It depends on abstractions (interfaces) rather than concrete implementations
type PeopleSearch struct {
	searcher     port.PeopleSearcher
	scorer       AccuracyScorer
	policy       FailurePolicy
	flagDegraded bool
	timeout      time.Duration
	now          func() time.Time
	metrics      *metrics.Search
}

// Option configures a PeopleSearch.
type Option func(*PeopleSearch)

// WithScorer replaces the default random accuracy scorer.
func WithScorer(scorer AccuracyScorer) Option {
	return func(s *PeopleSearch) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithFailurePolicy chooses between serving the fallback payload and surfacing upstream failures.
func WithFailurePolicy(policy FailurePolicy) Option {
	return func(s *PeopleSearch) {
		s.policy = policy
	}
}

// WithDegradedFlag marks fallback payloads as degraded.
func WithDegradedFlag(enabled bool) Option {
	return func(s *PeopleSearch) {
		s.flagDegraded = enabled
	}
}

// WithTimeout bounds each upstream call. Zero means no deadline beyond the caller's.
func WithTimeout(timeout time.Duration) Option {
	return func(s *PeopleSearch) {
		s.timeout = timeout
	}
}

// WithClock overrides the time source used for response timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *PeopleSearch) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMetrics records upstream latency and request outcomes.
func WithMetrics(m *metrics.Search) Option {
	return func(s *PeopleSearch) {
		s.metrics = m
	}
}

// SearchPeople calls the upstream once and builds the display response.
// Upstream failures never reach the caller under the fallback policy.
func (s *PeopleSearch) SearchPeople(ctx context.Context, criteria model.SearchCriteria) (*model.SearchResult, error) {

	slog.DebugContext(ctx, "starting people search",
		"query", criteria.Query,
	)

	outcome := s.callUpstream(ctx, criteria.Query)
	if !outcome.IsOk() {
		return s.onUpstreamFailure(ctx, criteria, outcome.Reason())
	}

	result := s.buildResult(criteria, outcome.Records())
	s.metrics.Outcome(metrics.OutcomeOK)

	slog.DebugContext(ctx, "people search completed",
		"query", criteria.Query,
		"total_results", result.Metadata.TotalResults,
	)

	return result, nil
}

// callUpstream performs the single upstream call and folds every way it can
// fail, including a panic in the adapter, into the outcome.
func (s *PeopleSearch) callUpstream(ctx context.Context, query string) (outcome model.UpstreamOutcome) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			outcome = model.Failed(fmt.Errorf("upstream searcher panicked: %v", r))
		}
		s.metrics.ObserveUpstream(time.Since(start), outcome.Reason())
	}()

	records, err := s.searcher.SearchPeople(ctx, query)
	if err != nil {
		return model.Failed(err)
	}
	return model.Ok(records)
}

func (s *PeopleSearch) onUpstreamFailure(ctx context.Context, criteria model.SearchCriteria, reason error) (*model.SearchResult, error) {
	if s.policy == FailurePolicySurface {
		slog.ErrorContext(ctx, "upstream search failed",
			"error", reason,
			"policy", s.policy,
		)
		s.metrics.Outcome(metrics.OutcomeSurfaced)
		return nil, errors.NewServiceUnavailable(constants.ErrUpstreamUnavailable, reason)
	}

	slog.ErrorContext(ctx, "upstream search failed, serving fallback payload",
		"error", reason,
		"degraded_flag", s.flagDegraded,
	)
	s.metrics.Outcome(metrics.OutcomeFallback)
	return FallbackResult(criteria.Query, s.now(), s.flagDegraded), nil
}

func (s *PeopleSearch) buildResult(criteria model.SearchCriteria, records []model.UpstreamRecord) *model.SearchResult {
	people := make([]model.Person, len(records))
	for i, record := range records {
		people[i] = normalize(i+1, record, s.scorer)
	}

	return &model.SearchResult{
		Query:  criteria.Query,
		People: people,
		Metadata: model.SearchMetadata{
			SearchTime:   constants.SearchTimeLabel,
			TotalResults: len(people),
			Accuracy:     meanAccuracy(people),
			Timestamp:    s.now().UTC(),
		},
	}
}

// IsReady checks if the upstream search source is ready
func (s *PeopleSearch) IsReady(ctx context.Context) error {
	return s.searcher.IsReady(ctx)
}

// NewPeopleSearch creates a new PeopleSearch instance
func NewPeopleSearch(searcher port.PeopleSearcher, opts ...Option) *PeopleSearch {
	s := &PeopleSearch{
		searcher: searcher,
		scorer:   RandomAccuracy,
		policy:   FailurePolicyFallback,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
