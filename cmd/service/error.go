// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/linuxfoundation/lfx-v2-people-search/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/errors"
)

// wrapError maps a typed error to the status code and body sent to the caller.
// Only client errors and ServiceUnavailable expose their message; anything
// else is reported as a generic internal error.
func wrapError(ctx context.Context, err error) (int, *ErrorResponse) {

	f := func(err error) (int, *ErrorResponse) {
		if err == nil {
			return http.StatusInternalServerError, &ErrorResponse{Error: constants.ErrInternal}
		}

		switch e := err.(type) {
		case errors.BadRequest:
			return http.StatusBadRequest, &ErrorResponse{Error: e.Message()}
		case errors.Validation:
			return http.StatusUnprocessableEntity, &ErrorResponse{Error: e.Message()}
		case errors.NotFound:
			return http.StatusNotFound, &ErrorResponse{Error: e.Message()}
		case errors.ServiceUnavailable:
			return http.StatusServiceUnavailable, &ErrorResponse{Error: e.Message()}
		default:
			return http.StatusInternalServerError, &ErrorResponse{Error: constants.ErrInternal}
		}
	}

	status, body := f(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed",
			"error", err,
			"status", status,
		)
	} else {
		slog.WarnContext(ctx, "request rejected",
			"error", err,
			"status", status,
		)
	}
	return status, body
}
