/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/k8s-test-api/pkg/config"
	"github.com/NVIDIA/k8s-test-api/pkg/serializers"
)

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration",
		Description: `Resolve the application configuration from the environment and
print it. The signing secret is never included in the output.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializers.FormatYAML),
				Usage:   "Output format (yaml or json)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := serializers.Format(cmd.String("format"))
			if format.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", format)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			return serializers.NewWriter(format, os.Stdout).Serialize(cfg)
		},
	}
}
