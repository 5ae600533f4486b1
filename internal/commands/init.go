// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/structgen/cli/internal/config"
	"github.com/structgen/cli/internal/prompts"
	"github.com/structgen/cli/internal/translate"
)

type initOptions struct {
	format         string
	strict         bool
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a structgen project",
		Long: `Initialize a structgen project with a structgen.yaml configuration file.
The config records the default output format and validation mode so
generate can run without flags.`,
		Example: `  # Interactive mode
  structgen init

  # Non-interactive
  structgen init --format rust --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Default output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat schema validation issues as fatal by default")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --format)")

	return cmd
}

func runInit(translators translate.Register, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, config.DefaultFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("structgen.yaml already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.format == "" {
			return errors.New("non-interactive mode requires --format")
		}
	} else {
		if err := prompts.RunInitForm(&opts.format, &opts.strict, translators.Available()); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Format:  opts.format,
		Strict:  opts.strict,
	}
	if err := cfg.Validate(translators.Available()); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("failed to write structgen.yaml: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: cfgPath},
		{Label: "Format", Value: cfg.Format},
		{Label: "Strict", Value: strconv.FormatBool(cfg.Strict)},
	}, "Initialization completed")
	return nil
}
