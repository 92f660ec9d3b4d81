// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	config := Config{
		Timeout:      10 * time.Second,
		MaxRetries:   2,
		RetryDelay:   500 * time.Millisecond,
		RetryBackoff: true,
	}

	client := NewClient(config)

	if client.config.Timeout != config.Timeout {
		t.Errorf("Expected timeout %v, got %v", config.Timeout, client.config.Timeout)
	}
	if client.config.MaxRetries != config.MaxRetries {
		t.Errorf("Expected max retries %d, got %d", config.MaxRetries, client.config.MaxRetries)
	}
	if client.httpClient.Timeout != config.Timeout {
		t.Errorf("Expected HTTP client timeout %v, got %v", config.Timeout, client.httpClient.Timeout)
	}
}

func TestClient_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.Header.Get("Custom-Header") != "custom-value" {
			t.Errorf("Expected custom header to be forwarded")
		}
		if r.Header.Get("User-Agent") != "people-search-test" {
			t.Errorf("Expected user agent to be set, got %q", r.Header.Get("User-Agent"))
		}

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"message": "success"}`))
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	}))
	defer server.Close()

	config := Config{
		Timeout:   5 * time.Second,
		UserAgent: "people-search-test",
	}

	client := NewClient(config)
	headers := map[string]string{
		"Custom-Header": "custom-value",
	}

	resp, err := client.Request(context.Background(), http.MethodGet, server.URL, nil, headers)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code 200, got %d", resp.StatusCode)
	}

	expectedBody := `{"message": "success"}`
	if string(resp.Body) != expectedBody {
		t.Errorf("Expected body '%s', got '%s'", expectedBody, string(resp.Body))
	}
}

func TestClient_Get_NotFound(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "not found"}`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.MaxRetries = 3
	config.RetryDelay = time.Millisecond
	client := NewClient(config)

	resp, err := client.Request(context.Background(), http.MethodGet, server.URL, nil, nil)
	if err == nil {
		t.Fatal("Expected error for 404 status, got none")
	}
	if resp != nil {
		t.Errorf("Expected nil response on status error, got %+v", resp)
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status code 404, got %d", statusErr.StatusCode)
	}
	if string(statusErr.Body) != `{"error": "not found"}` {
		t.Errorf("Expected body to be kept on the error, got %q", string(statusErr.Body))
	}
	// 4xx other than 429 is never retried
	if calls.Load() != 1 {
		t.Errorf("Expected a single call, got %d", calls.Load())
	}
}

func TestClient_Retry_ServerError(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"query":"x"}` {
			t.Errorf("Expected body to be resent on every attempt, got %q", string(body))
		}
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": "server error"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message": "success"}`))
	}))
	defer server.Close()

	config := Config{
		Timeout:      5 * time.Second,
		MaxRetries:   3,
		RetryDelay:   10 * time.Millisecond,
		RetryBackoff: false,
	}

	client := NewClient(config)

	resp, err := client.Request(context.Background(), http.MethodPost, server.URL, []byte(`{"query":"x"}`), nil)
	if err != nil {
		t.Fatalf("Expected no error after retries, got %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code 200, got %d", resp.StatusCode)
	}

	if calls.Load() != 3 {
		t.Errorf("Expected 3 calls (2 failures + 1 success), got %d", calls.Load())
	}
}

func TestClient_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(DefaultConfig())

	_, err := client.Request(context.Background(), http.MethodPost, server.URL, []byte(`{}`), nil)
	if err == nil {
		t.Fatal("Expected error for 502 status, got none")
	}
	if calls.Load() != 1 {
		t.Errorf("Expected exactly one call, got %d", calls.Load())
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(Config{Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := client.Request(context.Background(), http.MethodGet, server.URL, nil, nil)
	if err == nil {
		t.Fatal("Expected timeout error, got none")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Expected request to give up quickly, took %v", elapsed)
	}
}

func TestClient_ContextCanceledStopsRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{
		Timeout:    time.Second,
		MaxRetries: 5,
		RetryDelay: time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.Request(ctx, http.MethodGet, server.URL, nil, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("Expected a single call before the context expired, got %d", calls.Load())
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Timeout != 10*time.Second {
		t.Errorf("Expected default timeout 10s, got %v", config.Timeout)
	}
	if config.MaxRetries != 0 {
		t.Errorf("Expected default max retries 0, got %d", config.MaxRetries)
	}
	if config.RetryDelay != 500*time.Millisecond {
		t.Errorf("Expected default retry delay 500ms, got %v", config.RetryDelay)
	}
	if !config.RetryBackoff {
		t.Error("Expected default retry backoff to be true")
	}
}
