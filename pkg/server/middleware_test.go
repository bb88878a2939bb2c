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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/time/rate"
)

func TestRequestIDMiddleware_GeneratesNewID(t *testing.T) {
	s := New()

	var capturedRequestID string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedRequestID = r.Context().Value(contextKeyRequestID).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if capturedRequestID == "" {
		t.Error("expected request ID to be generated")
	}
	if _, err := uuid.Parse(capturedRequestID); err != nil {
		t.Errorf("expected valid UUID, got: %s", capturedRequestID)
	}
	if got := rec.Header().Get("X-Request-Id"); got != capturedRequestID {
		t.Errorf("expected response header %s, got %s", capturedRequestID, got)
	}
}

func TestRequestIDMiddleware_PreservesProvidedID(t *testing.T) {
	s := New()

	provided := uuid.New().String()
	var capturedRequestID string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedRequestID = r.Context().Value(contextKeyRequestID).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", provided)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if capturedRequestID != provided {
		t.Errorf("expected provided request ID %s, got %s", provided, capturedRequestID)
	}
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	s := New()

	var capturedRequestID string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedRequestID = r.Context().Value(contextKeyRequestID).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if capturedRequestID == "not-a-uuid" {
		t.Error("expected invalid request ID to be replaced")
	}
	if _, err := uuid.Parse(capturedRequestID); err != nil {
		t.Errorf("expected valid replacement UUID, got: %s", capturedRequestID)
	}
}

func TestCORSMiddleware(t *testing.T) {
	s := New()

	handler := s.corsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow-origin *, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	s := New()

	called := false
	handler := s.corsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if called {
		t.Error("expected preflight to short-circuit before the handler")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	s := New()
	s.rateLimiter = rate.NewLimiter(1, 1) // one request, no refill in test time

	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429")
	}

	if got := testutil.ToFloat64(s.metrics.rateLimitRejects); got != 1 {
		t.Errorf("expected 1 rate limit reject recorded, got %v", got)
	}
}

func TestRateLimitMiddleware_ExemptPaths(t *testing.T) {
	s := New()
	s.rateLimiter = rate.NewLimiter(0, 0) // reject everything

	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("expected %s to bypass rate limiting, got %d", path, rec.Code)
		}
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := New()

	handler := s.panicRecoveryMiddleware(func(_ http.ResponseWriter, _ *http.Request) {
		panic("route exploded")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after panic, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(s.metrics.panicRecoveries); got != 1 {
		t.Errorf("expected 1 panic recovery recorded, got %v", got)
	}
}

func TestMetricsMiddleware_CountsRequests(t *testing.T) {
	s := New(WithHandlers(map[string]http.HandlerFunc{
		"/counted": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		},
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/counted", nil))
	}

	counter := s.metrics.requestsTotal.WithLabelValues(http.MethodGet, "/counted", "201")
	if got := testutil.ToFloat64(counter); got != 5 {
		t.Errorf("expected counter 5, got %v", got)
	}
}

func TestMetricsMiddleware_GaugeReturnsToZero(t *testing.T) {
	s := New(WithHandlers(map[string]http.HandlerFunc{
		"/boom": func(_ http.ResponseWriter, _ *http.Request) {
			panic("boom")
		},
	}))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	// The deferred decrement must run even when the handler panics.
	if got := testutil.ToFloat64(s.metrics.activeConnections); got != 0 {
		t.Errorf("expected active connections back to 0, got %v", got)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 from recovered panic, got %d", rec.Code)
	}
}

func TestMetricsMiddleware_RecordsStatusFromRecoveredPanic(t *testing.T) {
	s := New(WithHandlers(map[string]http.HandlerFunc{
		"/boom": func(_ http.ResponseWriter, _ *http.Request) {
			panic("boom")
		},
	}))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	counter := s.metrics.requestsTotal.WithLabelValues(http.MethodGet, "/boom", "500")
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Errorf("expected panic request counted as 500, got %v", got)
	}
}
