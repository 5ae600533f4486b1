// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

// Package rust renders collected definitions as Rust structs and enums
// with serde annotations.
package rust

import (
	"strings"

	"github.com/structgen/cli/internal/translate"
)

// Translator translates collected definitions to Rust source text.
type Translator struct{}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "rust"
}

// FileExtension returns the file extension for Rust source files.
func (t *Translator) FileExtension() string {
	return ".rs"
}

// Translate renders the definitions: header, gated imports, enums in
// alphabetical order, default-value helpers, then structs in emission
// order. Output is deterministic byte-for-byte.
func (t *Translator) Translate(result *translate.Result) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("//! Generated by structgen. Do not edit manually.\n\n")
	sb.WriteString("use serde::{Deserialize, Serialize};\n")
	if usesCatchAll(result) {
		sb.WriteString("use std::collections::BTreeMap;\n")
	}
	if usesUUID(result) {
		sb.WriteString("use uuid::Uuid;\n")
	}
	sb.WriteString("\n")

	for _, name := range result.SortedEnumNames() {
		emitEnum(&sb, result.Enums[name])
	}

	order := result.EmissionOrder()
	for _, name := range order {
		if def, ok := result.Structs[name]; ok {
			emitDefaultFns(&sb, def)
		}
	}
	for _, name := range order {
		if def, ok := result.Structs[name]; ok {
			emitStruct(&sb, def)
		}
	}

	return []byte(sb.String()), nil
}

func usesCatchAll(result *translate.Result) bool {
	for _, def := range result.Structs {
		for _, f := range def.Fields {
			if f.CatchAll {
				return true
			}
		}
	}
	return false
}

func usesUUID(result *translate.Result) bool {
	for _, def := range result.Structs {
		for _, f := range def.Fields {
			if f.Type.Kind == translate.KindUUID {
				return true
			}
		}
	}
	return false
}
