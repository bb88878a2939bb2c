package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Application routes
	for pattern, handler := range s.config.Handlers {
		mux.HandleFunc(pattern, handler)
	}

	// Server-owned routes: readiness reflects internal state, and the
	// metrics exposition reads the injected registry.
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", s.metrics.Handler())

	return mux
}
