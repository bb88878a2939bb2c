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

package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/k8s-test-api/pkg/defaults"
	"github.com/NVIDIA/k8s-test-api/pkg/serializers"
)

// LogsResponse confirms which log levels were exercised.
type LogsResponse struct {
	Message   string    `json:"message"`
	Levels    []string  `json:"levels"`
	Timestamp time.Time `json:"timestamp"`
}

// TraceResponse fabricates a trace for pipeline testing. The span
// count covers the request span plus the two simulated calls.
type TraceResponse struct {
	Message   string    `json:"message"`
	TraceID   string    `json:"trace_id"`
	SpanCount int       `json:"span_count"`
	Timestamp time.Time `json:"timestamp"`
}

// handleObservabilityLogs emits one line at each severity so log
// pipelines can verify collection and level routing.
func (b *Builder) handleObservabilityLogs(w http.ResponseWriter, _ *http.Request) {
	slog.Info("Info log generated via API")
	slog.Warn("Warning log generated via API")
	slog.Error("Error log generated via API")

	serializers.RespondJSON(w, http.StatusOK, LogsResponse{
		Message:   "Test logs generated",
		Levels:    []string{"info", "warning", "error"},
		Timestamp: now(),
	})
}

// handleObservabilityTrace simulates a two-step downstream call chain.
func (b *Builder) handleObservabilityTrace(w http.ResponseWriter, r *http.Request) {
	if !sleep(r.Context(), defaults.TraceDelayDB) {
		return
	}
	if !sleep(r.Context(), defaults.TraceDelayAPI) {
		return
	}

	serializers.RespondJSON(w, http.StatusOK, TraceResponse{
		Message:   "Trace endpoint completed",
		TraceID:   fmt.Sprintf("trace-%d", time.Now().UnixMilli()),
		SpanCount: 3,
		Timestamp: now(),
	})
}
