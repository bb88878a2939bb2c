// Package api provides the HTTP API layer for the Kubernetes test
// application.
//
// This package acts as a thin wrapper around the reusable pkg/server
// package, wiring it with the application routes: health and version
// reporting, JWT authentication, blue/green deployment markers,
// synthetic load generators, observability hooks, and deliberate
// failure endpoints.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//	    "github.com/NVIDIA/k8s-test-api/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(context.Background()); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Loading the application configuration snapshot from the environment
//   - Seeding the in-memory user directory and token service
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, CORS, logging, metrics, panic recovery)
//   - Readiness endpoint and Prometheus metrics exposition
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8000)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - SECRET_KEY: JWT signing secret
//   - TOKEN_ALGORITHM: JWT signing algorithm (HS256, HS384, HS512)
//   - ACCESS_TOKEN_EXPIRE_MINUTES: login token lifetime
//   - APP_VERSION, APP_ENVIRONMENT, DEPLOYMENT_VERSION: identity reported
//     by the version and deployment endpoints
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/k8s-test-api/pkg/api.version=1.0.0'"
package api
