// Package routes defines the application's HTTP endpoints: health and
// version reporting, JWT-protected routes, blue/green deployment
// markers, synthetic load and failure generators, and observability
// test hooks. Handlers are plain http.HandlerFunc values assembled by
// Builder and served behind the shared server middleware chain.
package routes
