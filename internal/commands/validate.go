// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structgen/cli/internal/jschema"
	"github.com/structgen/cli/internal/prompts"
	"github.com/structgen/cli/internal/validate"
)

func newValidateCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a JSON Schema document against the supported subset",
		Long: `Check a JSON Schema document against the supported subset.

Every finding is reported with its JSON Pointer path. The command exits
non-zero when the document has any issue.`,
		Example: `  # Validate a schema file
  structgen validate --input schema.json

  # Validate from stdin
  cat schema.json | structgen validate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(input)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the JSON Schema document (default: stdin)")

	return cmd
}

func runValidate(input string) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}

	value, err := jschema.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode schema document: %w", err)
	}

	err = validate.Check(value)
	if err == nil {
		prompts.PrintResult(nil, "Schema is valid")
		return nil
	}

	var verr *validate.Error
	if !errors.As(err, &verr) {
		return err
	}

	fields := make([]prompts.ResultField, 0, len(verr.Issues))
	for _, issue := range verr.Issues {
		fields = append(fields, prompts.ResultField{Label: issue.Path, Value: issue.Message()})
	}
	prompts.PrintIssues(fields, fmt.Sprintf("Schema has %d issue(s)", len(verr.Issues)))

	return fmt.Errorf("schema validation failed")
}
