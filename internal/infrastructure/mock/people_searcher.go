// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/model"
)

// MockPeopleSearcher is an in-memory implementation of port.PeopleSearcher
// used for local development and tests
type MockPeopleSearcher struct {
	mu       sync.RWMutex
	people   []model.UpstreamRecord
	err      error
	readyErr error
	calls    []string
}

// NewMockPeopleSearcher creates a new mock searcher with some sample data
func NewMockPeopleSearcher() *MockPeopleSearcher {
	return &MockPeopleSearcher{
		people: []model.UpstreamRecord{
			{
				Name: "Priya Raghunathan",
				Link: "https://www.linkedin.com/in/priya-raghunathan-example",
				Text: "Staff Site Reliability Engineer · Keeping payment rails boring, living and working in Melbourne, Victoria.",
			},
			{
				Name: "Tomasz Wierzbicki",
				Link: "https://www.linkedin.com/in/tomasz-wierzbicki-example",
				Text: "Fire and Security Engineer · Commissioning alarm panels across the coast, living by the sea in Wollongong, NSW.",
			},
			{
				Name: "Hemi Tautahi",
				Link: "",
				Text: "Community organiser running weekend coding clubs for teenagers.",
			},
			{
				Name: "Odile Marchetti",
				Link: "https://www.linkedin.com/in/odile-marchetti-example",
				Text: "Product Designer · Accessibility first, living in Brisbane, Queensland with two greyhounds.",
			},
			{
				Name: "Kwame Boateng-Fraser",
				Link: "https://www.linkedin.com/in/kwame-boateng-fraser-example",
				Text: "Security Engineer · Threat modelling for fintech startups.",
			},
		},
	}
}

// SearchPeople implements the PeopleSearcher interface with mock data.
// An empty query matches everyone; otherwise the query is matched
// case-insensitively against the name and the description.
func (m *MockPeopleSearcher) SearchPeople(ctx context.Context, query string) ([]model.UpstreamRecord, error) {
	m.mu.Lock()
	m.calls = append(m.calls, query)
	err := m.err
	people := m.people
	m.mu.Unlock()

	slog.DebugContext(ctx, "executing mock people search", "query", query)

	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	matched := make([]model.UpstreamRecord, 0, len(people))
	for _, person := range people {
		if needle == "" ||
			strings.Contains(strings.ToLower(person.Name), needle) ||
			strings.Contains(strings.ToLower(person.Text), needle) {
			matched = append(matched, person)
		}
	}

	slog.DebugContext(ctx, "mock people search completed", "results_count", len(matched))
	return matched, nil
}

// IsReady reports the configured readiness error, nil by default
func (m *MockPeopleSearcher) IsReady(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readyErr
}

// SetError makes every following search fail with err (nil restores success)
func (m *MockPeopleSearcher) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SetReadyError makes IsReady fail with err (nil restores readiness)
func (m *MockPeopleSearcher) SetReadyError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readyErr = err
}

// AddPerson adds a record to the mock data (useful for testing)
func (m *MockPeopleSearcher) AddPerson(record model.UpstreamRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.people = append(m.people, record)
}

// ClearPeople clears all records (useful for testing)
func (m *MockPeopleSearcher) ClearPeople() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.people = []model.UpstreamRecord{}
}

// GetPeopleCount returns the total number of records
func (m *MockPeopleSearcher) GetPeopleCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.people)
}

// Calls returns the queries received so far, in order
func (m *MockPeopleSearcher) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.calls...)
}
