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
	"context"
	"net/http"
	"time"

	"github.com/NVIDIA/k8s-test-api/pkg/auth"
	"github.com/NVIDIA/k8s-test-api/pkg/config"
	"github.com/NVIDIA/k8s-test-api/pkg/serializers"
	"github.com/NVIDIA/k8s-test-api/pkg/sysinfo"
)

// Builder assembles the application route table from its dependencies.
type Builder struct {
	Config    *config.Config
	Directory *auth.Directory
	Tokens    *auth.TokenService
	System    *sysinfo.Collector
}

// Handlers returns the route table keyed by mux pattern. The root
// handler doubles as the catch-all for unknown paths.
func (b *Builder) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/":        b.handleRoot,
		"/ping":    get(b.handlePing),
		"/health":  get(b.handleHealth),
		"/version": get(b.handleVersion),

		"/auth/login":     post(b.handleLogin),
		"/auth/protected": get(b.Tokens.Middleware(b.handleProtected)),

		"/deployment/version": get(b.handleDeploymentVersion),
		"/deployment/blue":    get(b.handleDeploymentBlue),
		"/deployment/green":   get(b.handleDeploymentGreen),

		"/load-test/info":   get(b.handleLoadTestInfo),
		"/load-test/cpu":    get(b.handleLoadTestCPU),
		"/load-test/memory": get(b.handleLoadTestMemory),
		"/load-test/async":  get(b.handleLoadTestAsync),

		"/observability/logs":  get(b.handleObservabilityLogs),
		"/observability/trace": get(b.handleObservabilityTrace),

		"/error/500":     get(b.handleError500),
		"/error/404":     get(b.handleError404),
		"/error/timeout": get(b.handleErrorTimeout),
	}
}

// get rejects anything but GET with a 405 detail body.
func get(next http.HandlerFunc) http.HandlerFunc {
	return allowMethod(http.MethodGet, next)
}

// post rejects anything but POST with a 405 detail body.
func post(next http.HandlerFunc) http.HandlerFunc {
	return allowMethod(http.MethodPost, next)
}

func allowMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			serializers.RespondDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}
		next(w, r)
	}
}

// sleep waits for d or until ctx is done, whichever comes first.
// Reports whether the full duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func now() time.Time {
	return time.Now().UTC()
}
