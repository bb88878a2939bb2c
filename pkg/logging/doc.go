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

// Package logging provides structured logging utilities for the test API.
//
// It wraps the standard library slog package with service-wide defaults:
// JSON output to stderr, module/version context on every record,
// LOG_LEVEL environment configuration, and source location tracking for
// debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("k8s-test-api", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Supported LOG_LEVEL values (case-insensitive): DEBUG, INFO (default),
// WARN/WARNING, ERROR.
package logging
