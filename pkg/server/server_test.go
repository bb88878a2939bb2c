// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"/test": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}

	s := New(
		WithName("test-api"),
		WithVersion("1.2.3"),
		WithPort(9000),
		WithHandlers(handlers),
	)
	if s == nil {
		t.Fatal("expected server instance, got nil")
	}

	if s.config.Name != "test-api" {
		t.Errorf("expected name test-api, got %s", s.config.Name)
	}
	if s.config.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", s.config.Version)
	}
	if s.config.Port != 9000 {
		t.Errorf("expected port 9000, got %d", s.config.Port)
	}
	if s.metrics == nil {
		t.Error("expected metrics to be initialized")
	}
	if s.rateLimiter == nil {
		t.Error("expected rate limiter to be initialized")
	}
}

func TestServerServesRegisteredHandlers(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"/ping": func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ping":"pong"}`))
		},
	}

	s := New(WithHandlers(handlers))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "pong") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestReadyProbe(t *testing.T) {
	s := New()

	// Not ready until Start flips the flag.
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before ready, got %d", rec.Code)
	}

	var resp ReadyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "not_ready" {
		t.Errorf("expected status not_ready, got %s", resp.Status)
	}
	if resp.Reason == "" {
		t.Error("expected a reason while not ready")
	}

	s.SetReady(true)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when ready, got %d", rec.Code)
	}
}

func TestReadyProbeMethodNotAllowed(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodPost, "/ready", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "detail") {
		t.Errorf("expected detail body, got: %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(WithHandlers(map[string]http.HandlerFunc{
		"/ok": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}))

	// Generate some traffic first so the counters exist.
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"http_requests_total",
		"http_request_duration_seconds",
		"active_connections",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected exposition to contain %s", want)
		}
	}
	if !strings.Contains(body, `endpoint="/ok"`) {
		t.Errorf("expected endpoint label for /ok in exposition")
	}
}

func TestStartAndShutdown(t *testing.T) {
	s := New(WithPort(0))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()

	// Give the listener a moment, then trigger shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
