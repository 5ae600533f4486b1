// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

// Package generate runs the schema-to-source pipeline: decode the JSON
// document, validate it in strict mode, collect definitions, and render
// them with a registered translator.
package generate

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/structgen/cli/internal/jschema"
	"github.com/structgen/cli/internal/translate"
	"github.com/structgen/cli/internal/validate"
)

// Settings controls pipeline behavior.
type Settings struct {
	// Strict runs the validator pass and makes any issue fatal. When
	// false the pass is skipped entirely and unsupported input is
	// silently dropped during collection.
	Strict bool

	Logger zerolog.Logger
}

// Run translates a JSON Schema document to source text.
func Run(data []byte, translator translate.Translator, settings Settings) ([]byte, error) {
	value, err := jschema.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode schema document: %w", err)
	}

	if settings.Strict {
		if err := validate.Check(value); err != nil {
			return nil, err
		}
	}

	root, err := jschema.FromValue(value)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema document: %w", err)
	}
	if root.Type != "object" {
		return nil, fmt.Errorf("root schema must have type \"object\", got %q", root.Type)
	}

	result := translate.Collect(root, rootName(root.Title))
	if len(result.Structs) == 0 && len(result.Enums) == 0 {
		return nil, fmt.Errorf("schema produced no definitions to generate")
	}

	settings.Logger.Debug().
		Int("structs", len(result.Structs)).
		Int("enums", len(result.Enums)).
		Str("root", result.RootName).
		Str("target", translator.Name()).
		Msg("collected definitions")

	return translator.Translate(result)
}

// ToWriter runs the pipeline and writes the rendered source to w.
func ToWriter(w io.Writer, data []byte, translator translate.Translator, settings Settings) error {
	out, err := Run(data, translator, settings)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// rootName derives the root definition name from the schema title,
// falling back to "Root" when the title yields nothing usable.
func rootName(title string) string {
	name := translate.ToTypeName(strings.TrimSpace(title))
	if name == "" {
		return "Root"
	}
	return name
}
