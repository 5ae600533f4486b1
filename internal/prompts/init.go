// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(format *string, strict *bool, formats []string) error {
	options := make([]huh.Option[string], 0, len(formats))
	for _, f := range formats {
		options = append(options, huh.NewOption(f, f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default output format").
				Options(options...).
				Value(format),
		),
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Schema validation mode").
				Options(
					huh.NewOption("Lenient (report issues, generate anyway)", false),
					huh.NewOption("Strict (fail on any issue)", true),
				).
				Height(3).
				Value(strict),
		),
	).WithTheme(Theme()).Run()
}
