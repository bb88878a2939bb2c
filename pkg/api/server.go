package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/k8s-test-api/pkg/auth"
	"github.com/NVIDIA/k8s-test-api/pkg/config"
	"github.com/NVIDIA/k8s-test-api/pkg/logging"
	"github.com/NVIDIA/k8s-test-api/pkg/routes"
	"github.com/NVIDIA/k8s-test-api/pkg/server"
	"github.com/NVIDIA/k8s-test-api/pkg/sysinfo"
)

const (
	name           = "k8s-test-api"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/k8s-test-api/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, seeds the user directory, wires the route
// table, and handles graceful shutdown. Extra options override the
// defaults (port, registry, handlers).
func Serve(ctx context.Context, opts ...server.Option) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := newServer(opts...)
	if err != nil {
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newServer assembles a fully wired server from the environment.
func newServer(opts ...server.Option) (*server.Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dir, err := auth.NewDirectory(auth.DefaultSeeds()...)
	if err != nil {
		return nil, fmt.Errorf("failed to seed user directory: %w", err)
	}

	tokens, err := auth.NewTokenService(dir, cfg.SecretKey, cfg.TokenAlgorithm, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to build token service: %w", err)
	}

	b := &routes.Builder{
		Config:    cfg,
		Directory: dir,
		Tokens:    tokens,
		System:    sysinfo.NewCollector(),
	}

	allOpts := append([]server.Option{
		server.WithName(name),
		server.WithVersion(cfg.AppVersion),
		server.WithHandlers(b.Handlers()),
	}, opts...)

	return server.New(allOpts...), nil
}
