// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structgen/cli/internal/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the structgen CLI version",
		Example: `  # Full build information
  structgen version

  # Just the version string
  structgen version --short`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version string")

	return cmd
}
