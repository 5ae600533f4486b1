// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

// Package gotypes renders collected definitions as Go struct and
// string-constant declarations with json tags.
package gotypes

import (
	"fmt"
	"strings"

	"github.com/structgen/cli/internal/translate"
)

// Translator translates collected definitions to Go source text.
//
// Go's encoding/json has no counterpart for default-value helpers or
// unknown-key rejection, so those parts of a definition are not
// rendered for this target.
type Translator struct {
	// Package is the emitted package name; "schemas" when empty.
	Package string
}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "gotypes"
}

// FileExtension returns the file extension for Go source files.
func (t *Translator) FileExtension() string {
	return ".go"
}

// Translate renders enums as string types with constants, then structs
// in emission order.
func (t *Translator) Translate(result *translate.Result) ([]byte, error) {
	pkg := t.Package
	if pkg == "" {
		pkg = "schemas"
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by structgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkg)

	for _, name := range result.SortedEnumNames() {
		emitEnum(&sb, result.Enums[name])
	}

	for _, name := range result.EmissionOrder() {
		if def, ok := result.Structs[name]; ok {
			emitStruct(&sb, def)
		}
	}

	return []byte(sb.String()), nil
}

func emitDoc(sb *strings.Builder, description, prefix string) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return
	}
	for _, line := range strings.Split(trimmed, "\n") {
		fmt.Fprintf(sb, "%s// %s\n", prefix, line)
	}
}

func emitEnum(sb *strings.Builder, def *translate.EnumDef) {
	emitDoc(sb, def.Description, "")
	fmt.Fprintf(sb, "type %s string\n\n", def.Name)
	sb.WriteString("const (\n")
	for _, v := range def.Variants {
		fmt.Fprintf(sb, "\t%s%s %s = %q\n", def.Name, v.Name, def.Name, v.Literal)
	}
	sb.WriteString(")\n\n")
}

func emitStruct(sb *strings.Builder, def *translate.StructDef) {
	emitDoc(sb, def.Description, "")
	fmt.Fprintf(sb, "type %s struct {\n", def.Name)
	for _, f := range def.Fields {
		if f.CatchAll {
			fmt.Fprintf(sb, "\tAdditionalProperties map[string]%s `json:\"-\"`\n", baseTypeName(f.Type))
			continue
		}
		typ := baseTypeName(f.Type)
		if f.Array {
			typ = "[]" + typ
		}
		tag := f.Key
		if f.Optional {
			tag += ",omitempty"
			typ = "*" + typ
		}
		emitDoc(sb, f.Description, "\t")
		fmt.Fprintf(sb, "\t%s %s `json:%q`\n", toPascalCase(f.Key), typ, tag)
	}
	sb.WriteString("}\n\n")
}
