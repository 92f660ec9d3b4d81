// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

// Unexpected is a failure the caller cannot act on, such as an unreadable
// request body or an upstream response that does not decode. It is answered
// with a generic message so causes never leak.
type Unexpected struct {
	base
}

// Error returns the message followed by the wrapped cause, if any.
func (u Unexpected) Error() string {
	return u.error()
}

// NewUnexpected creates an Unexpected error wrapping the optional causes.
func NewUnexpected(message string, err ...error) Unexpected {
	return Unexpected{base: newBase(message, err)}
}

// ServiceUnavailable reports that the upstream search source could not answer:
// transport errors, non-2xx statuses, readiness failures, or an exhausted
// rate limit wait.
type ServiceUnavailable struct {
	base
}

// Error returns the message followed by the wrapped cause, if any.
func (su ServiceUnavailable) Error() string {
	return su.error()
}

// NewServiceUnavailable creates a ServiceUnavailable error wrapping the optional causes.
func NewServiceUnavailable(message string, err ...error) ServiceUnavailable {
	return ServiceUnavailable{base: newBase(message, err)}
}
