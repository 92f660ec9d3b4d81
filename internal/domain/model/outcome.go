// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

// UpstreamOutcome is the result of a single upstream call: either the
// records it returned or the reason it failed, never both.
type UpstreamOutcome struct {
	records []UpstreamRecord
	err     error
}

// Ok wraps a successful upstream response.
func Ok(records []UpstreamRecord) UpstreamOutcome {
	if records == nil {
		records = []UpstreamRecord{}
	}
	return UpstreamOutcome{records: records}
}

// Failed wraps an upstream failure. A nil reason is not allowed.
func Failed(reason error) UpstreamOutcome {
	if reason == nil {
		panic("model.Failed called with nil reason")
	}
	return UpstreamOutcome{err: reason}
}

// IsOk reports whether the upstream call succeeded.
func (o UpstreamOutcome) IsOk() bool {
	return o.err == nil
}

// Records returns the upstream records of a successful outcome.
func (o UpstreamOutcome) Records() []UpstreamRecord {
	return o.records
}

// Reason returns why the upstream call failed, or nil on success.
func (o UpstreamOutcome) Reason() error {
	return o.err
}
