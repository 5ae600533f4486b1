// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/structgen/cli/internal/commands"
	"github.com/structgen/cli/internal/translate"
	"github.com/structgen/cli/internal/translate/gotypes"
	"github.com/structgen/cli/internal/translate/rust"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	translators := make(translate.Register)
	translators.Add(&rust.Translator{})
	translators.Add(&gotypes.Translator{})

	rootCmd := commands.NewRootCmd(translators)
	return rootCmd.ExecuteContext(ctx)
}
