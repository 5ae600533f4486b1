// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/structgen/cli/internal/config"
	"github.com/structgen/cli/internal/generate"
	"github.com/structgen/cli/internal/translate"
)

type generateOptions struct {
	input  string
	output string
	format string
	strict bool
}

func newGenerateCmd(translators translate.Register, verbose *bool) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate typed source code from a JSON Schema document",
		Long: fmt.Sprintf(`Generate typed source code from a JSON Schema document.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Generate Rust definitions to stdout
  structgen generate --input schema.json --format rust

  # Write to a file
  structgen generate --input schema.json --format rust --output types.rs

  # Read the schema from stdin
  cat schema.json | structgen generate --format rust

  # Fail on any schema issue instead of generating what is valid
  structgen generate --input schema.json --format rust --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts, *verbose)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Path to the JSON Schema document (default: stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat schema validation issues as fatal")

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions, verbose bool) error {
	logger := newLogger(verbose)

	// Flags win over structgen.yaml; the config file is optional.
	if cfg, err := config.Load(config.DefaultFileName); err == nil {
		if err := cfg.Validate(translators.Available()); err != nil {
			return err
		}
		if opts.format == "" {
			opts.format = cfg.Format
		}
		if !cmd.Flags().Changed("strict") {
			opts.strict = cfg.Strict
		}
	}

	if opts.format == "" {
		return fmt.Errorf("no format selected; use --format (%s) or set one in %s",
			strings.Join(translators.Available(), ", "), config.DefaultFileName)
	}

	translator, err := translators.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(translators.Available(), ", "))
	}

	data, err := readInput(opts.input)
	if err != nil {
		return err
	}

	settings := generate.Settings{Strict: opts.strict, Logger: logger}

	if opts.output == "" {
		return generate.ToWriter(cmd.OutOrStdout(), data, translator, settings)
	}

	out, err := generate.Run(data, translator, settings)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Debug().Str("path", opts.output).Msg("wrote generated source")
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return data, nil
}
