// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/structgen/cli/internal/translate"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "structgen",
		Short:         "Generate typed record definitions from JSON Schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newGenerateCmd(translators, &verbose))
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newInitCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newLogger builds the CLI logger. Debug level when verbose, warnings
// only otherwise. Output goes to stderr so generated source on stdout
// stays clean.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
