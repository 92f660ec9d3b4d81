// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/port"
	usecase "github.com/linuxfoundation/lfx-v2-people-search/internal/service"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/errors"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/metrics"

	goahttp "goa.design/goa/v3/http"
)

// maxRequestBodyBytes caps the inbound search body; a larger body fails to read.
const maxRequestBodyBytes = 1 << 20

// PeopleSearchSvc is the people search HTTP service implementation.
type PeopleSearchSvc struct {
	searchService usecase.PeopleSearcher
	metrics       *metrics.Search
}

// Search answers POST /api/search.
func (s *PeopleSearchSvc) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, errRead := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if errRead != nil {
		s.metrics.Outcome(metrics.OutcomeInternal)
		s.writeError(ctx, w, errors.NewUnexpected("failed to read request body", errRead))
		return
	}

	criteria, errCriteria := payloadToCriteria(body)
	if errCriteria != nil {
		switch errCriteria.(type) {
		case errors.BadRequest:
			s.metrics.Outcome(metrics.OutcomeBadRequest)
		default:
			s.metrics.Outcome(metrics.OutcomeInvalidQuery)
		}
		s.writeError(ctx, w, errCriteria)
		return
	}

	slog.DebugContext(ctx, "peopleSearch.search",
		"query", criteria.Query,
	)

	result, errSearch := s.searchService.SearchPeople(ctx, criteria)
	if errSearch != nil {
		s.writeError(ctx, w, errSearch)
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, domainResultToResponse(result))
}

// MethodNotAllowed answers every method other than POST on the search path.
func (s *PeopleSearchSvc) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	s.writeJSON(r.Context(), w, http.StatusMethodNotAllowed, &ErrorResponse{Error: constants.ErrMethodNotAllowed})
}

// Readyz checks if the service is able to take inbound requests.
func (s *PeopleSearchSvc) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if errIsReady := s.searchService.IsReady(ctx); errIsReady != nil {
		if _, ok := errIsReady.(errors.ServiceUnavailable); !ok {
			errIsReady = errors.NewServiceUnavailable("search source not ready", errIsReady)
		}
		s.writeError(ctx, w, errIsReady)
		return
	}
	writeText(w, http.StatusOK, "OK\n")
}

// Livez checks if the service is alive.
func (s *PeopleSearchSvc) Livez(w http.ResponseWriter, r *http.Request) {
	// This always returns as long as the service is still running. As this
	// endpoint is expected to be used as a Kubernetes liveness check, this
	// service must likewise self-detect non-recoverable errors and
	// self-terminate.
	writeText(w, http.StatusOK, "OK\n")
}

func (s *PeopleSearchSvc) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, body := wrapError(ctx, err)
	s.writeJSON(ctx, w, status, body)
}

func (s *PeopleSearchSvc) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	enc := goahttp.ResponseEncoder(ctx, w)
	w.WriteHeader(status)
	if err := enc.Encode(v); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

// NewPeopleSearchSvc returns the people search service implementation.
func NewPeopleSearchSvc(peopleSearcher port.PeopleSearcher, m *metrics.Search, opts ...usecase.Option) *PeopleSearchSvc {
	opts = append([]usecase.Option{usecase.WithMetrics(m)}, opts...)
	return &PeopleSearchSvc{
		searchService: usecase.NewPeopleSearch(peopleSearcher, opts...),
		metrics:       m,
	}
}
