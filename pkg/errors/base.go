// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

import (
	"errors"
	"fmt"
)

// base is a struct that holds the common fields for error types
type base struct {
	message string
	err     error
}

// newBase joins the optional causes; no causes leaves err nil
func newBase(message string, causes []error) base {
	return base{message: message, err: errors.Join(causes...)}
}

// error is a method that returns the error message for the base struct
// any changes to the error message here will be reflected in all error types that embed base
func (b base) error() string {
	if b.err == nil {
		return b.message
	}
	return fmt.Sprintf("%s: %v", b.message, b.err)
}

// Message returns the caller-facing message without the wrapped cause.
func (b base) Message() string {
	return b.message
}

// Unwrap exposes the joined cause to errors.Is and errors.As.
func (b base) Unwrap() error {
	return b.err
}
