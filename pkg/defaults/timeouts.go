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

package defaults

import "time"

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Must exceed the longest artificial delay the service simulates
	// (the 30 second timeout endpoint).
	ServerWriteTimeout = 45 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Handler delays for the load and failure simulation endpoints.
const (
	// AsyncTaskDelay is the artificial suspend used by /load-test/async.
	AsyncTaskDelay = 100 * time.Millisecond

	// TraceDelayDB is the simulated database call in /observability/trace.
	TraceDelayDB = 50 * time.Millisecond

	// TraceDelayAPI is the simulated external API call in /observability/trace.
	TraceDelayAPI = 20 * time.Millisecond

	// TimeoutSimulationDelay is the long wait served by /error/timeout.
	TimeoutSimulationDelay = 30 * time.Second
)

// Token lifetimes.
const (
	// TokenTTL is the access token lifetime used by the login endpoint
	// when ACCESS_TOKEN_EXPIRE_MINUTES is not set.
	TokenTTL = 30 * time.Minute

	// TokenTTLFallback is the lifetime applied when a caller issues a
	// token without specifying one.
	TokenTTLFallback = 15 * time.Minute
)
