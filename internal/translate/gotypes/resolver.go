// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package gotypes

import (
	"fmt"
	"strings"

	"github.com/structgen/cli/internal/translate"
)

// baseTypeName maps a resolved type to its Go spelling. UUID values stay
// plain strings since the standard library has no uuid type.
func baseTypeName(ref translate.TypeRef) string {
	switch ref.Kind {
	case translate.KindString, translate.KindUUID:
		return "string"
	case translate.KindBool:
		return "bool"
	case translate.KindInt:
		if ref.Int.Unsigned {
			return fmt.Sprintf("uint%d", ref.Int.Bits)
		}
		return fmt.Sprintf("int%d", ref.Int.Bits)
	case translate.KindFloat:
		return fmt.Sprintf("float%d", ref.Float.Bits)
	case translate.KindStruct, translate.KindEnum:
		return ref.Name
	default:
		return "any"
	}
}

// toPascalCase converts a snake_case or kebab-case string to PascalCase.
// It handles common Go acronyms (ID, URL, HTTP, API, JSON, XML, SQL, HTML).
func toPascalCase(s string) string {
	// Common Go acronyms that should be fully uppercased.
	acronyms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"http": "HTTP",
		"api":  "API",
		"json": "JSON",
		"xml":  "XML",
		"sql":  "SQL",
		"html": "HTML",
		"ip":   "IP",
		"tcp":  "TCP",
		"udp":  "UDP",
		"tls":  "TLS",
		"ssl":  "SSL",
		"ssh":  "SSH",
		"cpu":  "CPU",
		"uri":  "URI",
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}
