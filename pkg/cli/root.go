/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

const (
	name           = "ktad"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// New assembles the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Kubernetes test application daemon",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `HTTP service for exercising Kubernetes deployment patterns:
health probes, JWT authentication, blue/green routing, synthetic load,
Prometheus metrics, and deliberate failure modes.`,
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			serveCmd(),
			configCmd(),
		},
	}
}

// Execute runs the root command with signal-aware cancellation.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
