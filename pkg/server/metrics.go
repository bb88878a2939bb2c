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
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the injected registry handle shared by the request
// middleware and the /metrics exposition handler. Instances are
// independent, so tests can observe a private registry instead of
// process-wide state.
//
// The metric names and label sets below feed existing dashboards and
// scrape configs; treat them as a compatibility contract.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	requestDuration   prometheus.Histogram
	activeConnections prometheus.Gauge

	rateLimitRejects prometheus.Counter
	panicRecoveries  prometheus.Counter
}

// NewMetrics builds the request metrics on reg. A nil reg gets a fresh
// private registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		requestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
		),
		activeConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_connections",
				Help: "Number of active connections",
			},
		),
		rateLimitRejects: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "http_rate_limit_rejects_total",
				Help: "Total number of requests rejected due to rate limiting",
			},
		),
		panicRecoveries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "http_panic_recoveries_total",
				Help: "Total number of panics recovered in HTTP handlers",
			},
		),
	}

	reg.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.activeConnections,
		m.rateLimitRejects,
		m.panicRecoveries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the underlying registry, mainly for test assertions.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the text exposition endpoint for this registry.
// The snapshot reflects metric state at the instant of the scrape.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// metricsMiddleware instruments every request: an in-flight gauge
// around the downstream call, a completion counter keyed by method,
// path, and final status, and one global latency histogram. The gauge
// decrement is deferred so it runs on every exit path, panics included.
// Instrumentation is fail-open and never alters the response.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.metrics.activeConnections.Inc()
		defer s.metrics.activeConnections.Dec()

		// Wrap response writer to capture status code
		wrapped := newResponseWriter(w)

		defer func() {
			s.metrics.requestsTotal.WithLabelValues(
				r.Method, r.URL.Path, strconv.Itoa(wrapped.Status()),
			).Inc()
			s.metrics.requestDuration.Observe(time.Since(start).Seconds())
		}()

		next.ServeHTTP(wrapped, r)
	}
}
