// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package rust

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/structgen/cli/internal/translate"
)

func intTypeName(t translate.IntType) string {
	if t.Unsigned {
		return fmt.Sprintf("u%d", t.Bits)
	}
	return fmt.Sprintf("i%d", t.Bits)
}

func floatTypeName(t translate.FloatType) string {
	return fmt.Sprintf("f%d", t.Bits)
}

// baseTypeName renders the unwrapped Rust type for a type reference.
func baseTypeName(ref translate.TypeRef) string {
	switch ref.Kind {
	case translate.KindString:
		return "String"
	case translate.KindUUID:
		return "Uuid"
	case translate.KindBool:
		return "bool"
	case translate.KindInt:
		return intTypeName(ref.Int)
	case translate.KindFloat:
		return floatTypeName(ref.Float)
	case translate.KindStruct, translate.KindEnum:
		return ref.Name
	default:
		return "serde_json::Value"
	}
}

// fieldTypeName renders the full declared type of a field, applying
// the sequence wrapper for arrays and the optional wrapper for fields
// absent from the required list.
func fieldTypeName(f translate.Field) string {
	typ := baseTypeName(f.Type)
	if f.Array {
		typ = "Vec<" + typ + ">"
	}
	if f.Optional {
		typ = "Option<" + typ + ">"
	}
	return typ
}

// escapeString escapes a value for a Rust double-quoted literal.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func defaultFnName(structName, fieldName string) string {
	return fmt.Sprintf("default_%s_%s", structName, fieldName)
}

// defaultExpr renders the literal-producing expression for a non-zero
// default.
func defaultExpr(f translate.Field) string {
	switch f.Type.Kind {
	case translate.KindBool:
		return "true"
	case translate.KindInt:
		return fmt.Sprintf("%d%s", f.Default.Value, intTypeName(f.Type.Int))
	case translate.KindFloat:
		v, _ := f.Default.Value.(float64)
		return strconv.FormatFloat(v, 'g', -1, 64) + floatTypeName(f.Type.Float)
	case translate.KindUUID:
		s, _ := f.Default.Value.(string)
		return fmt.Sprintf("Uuid::parse_str(\"%s\").expect(\"invalid default uuid\")", escapeString(s))
	case translate.KindEnum:
		return fmt.Sprintf("%s::%s", f.Type.Name, f.Default.Variant)
	default:
		s, _ := f.Default.Value.(string)
		return fmt.Sprintf("\"%s\".to_string()", escapeString(s))
	}
}

// emitDocComment writes a description as /// lines, one per line of
// the trimmed text. prefix is the indentation of the commented item.
func emitDocComment(sb *strings.Builder, description, prefix string) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return
	}
	for _, line := range strings.Split(trimmed, "\n") {
		fmt.Fprintf(sb, "%s/// %s\n", prefix, line)
	}
}

func emitEnum(sb *strings.Builder, def *translate.EnumDef) {
	emitDocComment(sb, def.Description, "")
	sb.WriteString("#[derive(Debug, Clone, Serialize, Deserialize)]\n")
	fmt.Fprintf(sb, "pub enum %s {\n", def.Name)
	for _, v := range def.Variants {
		fmt.Fprintf(sb, "    #[serde(rename = \"%s\")]\n", escapeString(v.Literal))
		fmt.Fprintf(sb, "    %s,\n", v.Name)
	}
	sb.WriteString("}\n\n")
}

// emitDefaultFns writes one helper per field whose default is a named
// literal, in field order.
func emitDefaultFns(sb *strings.Builder, def *translate.StructDef) {
	for _, f := range def.Fields {
		if f.CatchAll || f.Default == nil || f.Default.Zero {
			continue
		}
		fmt.Fprintf(sb, "fn %s() -> %s {\n", defaultFnName(def.Name, f.Name), fieldTypeName(f))
		if f.Optional {
			fmt.Fprintf(sb, "    Some(%s)\n", defaultExpr(f))
		} else {
			fmt.Fprintf(sb, "    %s\n", defaultExpr(f))
		}
		sb.WriteString("}\n\n")
	}
}

// emitFieldAttrs writes a field's attributes: doc comment, a rename
// only when the emitted name differs from the schema key, then the
// default annotation when applicable.
func emitFieldAttrs(sb *strings.Builder, structName string, f translate.Field) {
	emitDocComment(sb, f.Description, "    ")
	if f.Name != f.Key {
		fmt.Fprintf(sb, "    #[serde(rename = \"%s\")]\n", escapeString(f.Key))
	}
	if f.Default != nil {
		if f.Default.Zero {
			sb.WriteString("    #[serde(default)]\n")
		} else {
			fmt.Fprintf(sb, "    #[serde(default = \"%s\")]\n", defaultFnName(structName, f.Name))
		}
	}
}

func emitStruct(sb *strings.Builder, def *translate.StructDef) {
	emitDocComment(sb, def.Description, "")
	sb.WriteString("#[derive(Debug, Clone, Serialize, Deserialize)]\n")
	if def.DenyUnknown {
		sb.WriteString("#[serde(deny_unknown_fields)]\n")
	}
	fmt.Fprintf(sb, "pub struct %s {\n", def.Name)
	for _, f := range def.Fields {
		if f.CatchAll {
			sb.WriteString("    #[serde(flatten)]\n")
			fmt.Fprintf(sb, "    pub %s: BTreeMap<String, %s>,\n", f.Name, baseTypeName(f.Type))
			continue
		}
		emitFieldAttrs(sb, def.Name, f)
		fmt.Fprintf(sb, "    pub %s: %s,\n", f.Name, fieldTypeName(f))
	}
	sb.WriteString("}\n\n")
}
