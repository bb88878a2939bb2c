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

// Package server provides the HTTP runtime shared by the test API:
// route registration, middleware, metrics, and lifecycle.
//
// The server is intentionally generic. Application routes are supplied
// as a map of path to http.HandlerFunc; the server contributes the
// concerns every route needs:
//
//   - Prometheus request metrics (requests, latency, in-flight gauge)
//     exposed on /metrics
//   - Permissive CORS for browser-driven test clients
//   - Request ID tracking via the X-Request-Id header
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate), with
//     /health, /ready, and /metrics exempted
//   - Debug-level request logging
//   - Readiness probe on /ready
//   - Graceful shutdown on SIGINT/SIGTERM
//
// Basic usage:
//
//	s, err := server.New(
//	    server.WithName("k8s-test-api"),
//	    server.WithVersion("1.0.0"),
//	    server.WithPort(8000),
//	    server.WithHandlers(handlers),
//	)
//	if err != nil {
//	    return err
//	}
//	return s.Run(ctx)
//
// # Observability
//
// Request metrics follow the naming used by the dashboards that ship
// with the demo manifests:
//
//	http_requests_total{method,endpoint,status_code}
//	http_request_duration_seconds
//	active_connections
//
// Rate limit status is reported via X-RateLimit-Limit,
// X-RateLimit-Remaining, and X-RateLimit-Reset response headers. When
// rate limited, the server returns 429 with a Retry-After header.
//
// # Error Handling
//
// Errors raised by the server itself (rate limiting, panic recovery)
// use a structured JSON body:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": true
//	}
//
// Application routes define their own error bodies.
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
//   - Kubernetes probes: https://kubernetes.io/docs/tasks/configure-pod-container/configure-liveness-readiness-startup-probes/
package server
