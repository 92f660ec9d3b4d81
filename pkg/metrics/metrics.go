// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for people_search_requests_total.
const (
	OutcomeOK           = "ok"
	OutcomeFallback     = "fallback"
	OutcomeSurfaced     = "surfaced"
	OutcomeBadRequest   = "bad_request"
	OutcomeInvalidQuery = "invalid_query"
	OutcomeInternal     = "internal"
)

// Search holds the people search collectors. A nil *Search records nothing.
type Search struct {
	requests *prometheus.CounterVec
	upstream *prometheus.HistogramVec
}

// NewSearch registers the people search collectors with reg.
func NewSearch(reg prometheus.Registerer) *Search {
	factory := promauto.With(reg)
	return &Search{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "people_search_requests_total",
			Help: "People search requests by how they were answered",
		}, []string{"outcome"}),
		upstream: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "people_search_upstream_duration_seconds",
			Help:    "Duration of upstream search calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"result"}),
	}
}

// Outcome counts one answered request.
func (m *Search) Outcome(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records how long an upstream call took and whether it failed.
func (m *Search) ObserveUpstream(elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.upstream.WithLabelValues(result).Observe(elapsed.Seconds())
}
