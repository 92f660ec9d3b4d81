// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	pkgerrors "github.com/linuxfoundation/lfx-v2-people-search/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name                 string
		inputError           error
		expectedStatus       int
		expectedErrorMessage string
	}{
		{
			name:                 "bad request error",
			inputError:           pkgerrors.NewBadRequest("Invalid JSON in request body", errors.New("unexpected end of JSON input")),
			expectedStatus:       http.StatusBadRequest,
			expectedErrorMessage: "Invalid JSON in request body",
		},
		{
			name:                 "validation error",
			inputError:           pkgerrors.NewValidation("Query is required and must be a string"),
			expectedStatus:       http.StatusUnprocessableEntity,
			expectedErrorMessage: "Query is required and must be a string",
		},
		{
			name:                 "not found error",
			inputError:           pkgerrors.NewNotFound("person not found", errors.New("db error")),
			expectedStatus:       http.StatusNotFound,
			expectedErrorMessage: "person not found",
		},
		{
			name:                 "service unavailable error hides the cause",
			inputError:           pkgerrors.NewServiceUnavailable("Upstream search unavailable", errors.New("connection refused")),
			expectedStatus:       http.StatusServiceUnavailable,
			expectedErrorMessage: "Upstream search unavailable",
		},
		{
			name:                 "unexpected error becomes internal server error",
			inputError:           pkgerrors.NewUnexpected("failed to read request body", errors.New("EOF")),
			expectedStatus:       http.StatusInternalServerError,
			expectedErrorMessage: "Internal server error",
		},
		{
			name:                 "generic error becomes internal server error",
			inputError:           errors.New("generic error"),
			expectedStatus:       http.StatusInternalServerError,
			expectedErrorMessage: "Internal server error",
		},
		{
			name:                 "nil error becomes internal server error",
			inputError:           nil,
			expectedStatus:       http.StatusInternalServerError,
			expectedErrorMessage: "Internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := wrapError(context.Background(), tc.inputError)

			assert.Equal(t, tc.expectedStatus, status)
			assert.Equal(t, tc.expectedErrorMessage, body.Error)
		})
	}
}
