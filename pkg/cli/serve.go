/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/k8s-test-api/pkg/api"
	"github.com/NVIDIA/k8s-test-api/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Start the HTTP API server",
		Description: `Start the test API server and block until SIGINT/SIGTERM.

The server reads its configuration from the environment (PORT,
SECRET_KEY, TOKEN_ALGORITHM, ACCESS_TOKEN_EXPIRE_MINUTES, APP_VERSION,
APP_ENVIRONMENT, DEPLOYMENT_VERSION, LOG_LEVEL). The --port flag
overrides PORT.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (overrides the PORT environment variable)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var opts []server.Option
			if port := int(cmd.Int("port")); port > 0 {
				opts = append(opts, server.WithPort(port))
			}
			return api.Serve(ctx, opts...)
		},
	}
}
