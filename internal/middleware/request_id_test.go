// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/linuxfoundation/lfx-v2-people-search/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/log"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// rejectSearch answers like the search endpoint does for a body without a query
func rejectSearch(logger func(ctx context.Context)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if logger != nil {
			logger(r.Context())
		}
		w.Header().Set("Content-Type", constants.ContentTypeJSON)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": constants.ErrQueryRequired})
	})
}

func TestRequestIDMiddlewareOnSearchResponses(t *testing.T) {
	tests := []struct {
		name              string
		existingRequestID string
	}{
		{
			name: "generated when the caller sends none",
		},
		{
			name:              "caller ID is echoed",
			existingRequestID: "search-7f3a",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			handler := RequestIDMiddleware()(rejectSearch(func(ctx context.Context) {
				seen = RequestIDFromContext(ctx)
			}))

			req := httptest.NewRequest(http.MethodPost, constants.SearchPath, strings.NewReader(`{}`))
			if tc.existingRequestID != "" {
				req.Header.Set(RequestIDHeader, tc.existingRequestID)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			header := rec.Header().Get(RequestIDHeader)
			assert.Equal(t, seen, header)
			if tc.existingRequestID != "" {
				assert.Equal(t, tc.existingRequestID, header)
				return
			}
			_, err := uuid.Parse(header)
			assert.NoError(t, err)
		})
	}
}

func TestRequestIDInLogLines(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogger(log.Options{Level: "debug", Output: &buf})

	handler := RequestIDMiddleware()(rejectSearch(func(ctx context.Context) {
		logger.WarnContext(ctx, "request rejected", "status", http.StatusUnprocessableEntity)
	}))

	req := httptest.NewRequest(http.MethodPost, constants.SearchPath, strings.NewReader(`{"query": 1}`))
	req.Header.Set(RequestIDHeader, "req-abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if assert.NoError(t, json.Unmarshal(buf.Bytes(), &line)) {
		assert.Equal(t, "req-abc", line[RequestIDHeader])
		assert.Equal(t, "request rejected", line["msg"])
	}
}

func TestRequestIDsAreNotShared(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogger(log.Options{Level: "debug", Output: &buf})

	var ids []string
	handler := RequestIDMiddleware()(rejectSearch(func(ctx context.Context) {
		ids = append(ids, RequestIDFromContext(ctx))
		logger.InfoContext(ctx, "search received")
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, constants.SearchPath, strings.NewReader(`{}`))
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Len(t, ids, 3)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 3) {
		for i, l := range lines {
			// each line carries exactly its own request's ID
			assert.Equal(t, 1, strings.Count(l, RequestIDHeader))
			assert.Contains(t, l, ids[i])
		}
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
