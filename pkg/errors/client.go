// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

// BadRequest represents a request that could not be parsed at all.
type BadRequest struct {
	base
}

// Error returns the error message for BadRequest.
func (b BadRequest) Error() string {
	return b.error()
}

// NewBadRequest creates a new BadRequest error with the provided message.
func NewBadRequest(message string, err ...error) BadRequest {
	return BadRequest{base: newBase(message, err)}
}

// Validation represents a validation error in the application.
type Validation struct {
	base
}

// Error returns the error message for Validation.
func (v Validation) Error() string {
	return v.error()
}

// NewValidation creates a new Validation error with the provided message.
func NewValidation(message string, err ...error) Validation {
	return Validation{base: newBase(message, err)}
}

// NotFound represents a missing resource.
type NotFound struct {
	base
}

// Error returns the error message for NotFound.
func (n NotFound) Error() string {
	return n.error()
}

// NewNotFound creates a new NotFound error with the provided message.
func NewNotFound(message string, err ...error) NotFound {
	return NotFound{base: newBase(message, err)}
}
