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
	"net/http"

	"github.com/NVIDIA/k8s-test-api/pkg/defaults"
	"github.com/NVIDIA/k8s-test-api/pkg/serializers"
)

// Deliberate failure endpoints for exercising alerting rules, retry
// policies, and ingress timeout configuration.

func (b *Builder) handleError500(w http.ResponseWriter, _ *http.Request) {
	serializers.RespondDetail(w, http.StatusInternalServerError, "Internal Server Error - Test endpoint")
}

func (b *Builder) handleError404(w http.ResponseWriter, _ *http.Request) {
	serializers.RespondDetail(w, http.StatusNotFound, "Not Found - Test endpoint")
}

// handleErrorTimeout holds the request long enough to trip most proxy
// and client timeouts. A disconnect abandons the wait immediately.
func (b *Builder) handleErrorTimeout(w http.ResponseWriter, r *http.Request) {
	if !sleep(r.Context(), defaults.TimeoutSimulationDelay) {
		return
	}

	serializers.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "This should timeout",
	})
}
