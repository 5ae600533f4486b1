// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package translate

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ToTypeName converts a string to a PascalCase type identifier. It
// splits on any non-alphanumeric rune, capitalizes the first rune of
// each part, and joins with no separator. Casing of the remaining
// runes is preserved.
func ToTypeName(s string) string {
	var sb strings.Builder
	for _, part := range splitAlnum(s) {
		runes := []rune(part)
		sb.WriteRune(unicode.ToUpper(runes[0]))
		for _, r := range runes[1:] {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ToVariantName converts an enum literal to a variant identifier:
// first rune of each part uppercased, the rest lowercased. An empty or
// digit-leading result gets an "E" prefix so it is a valid identifier.
func ToVariantName(s string) string {
	var sb strings.Builder
	for _, part := range splitAlnum(s) {
		runes := []rune(part)
		sb.WriteRune(unicode.ToUpper(runes[0]))
		for _, r := range runes[1:] {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	base := sb.String()
	if base == "" || unicode.IsDigit(rune(base[0])) {
		return "E" + base
	}
	return base
}

func splitAlnum(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
}

// FieldName sanitizes a property key for use as a field identifier.
func FieldName(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

// typeNameFromProperty derives a definition name from a property key
// and an optional title; a non-blank title wins.
func typeNameFromProperty(key, title string) string {
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		return ToTypeName(trimmed)
	}
	return ToTypeName(key)
}

// BuildEnumVariants deduplicates and sorts the literal values, maps
// each to a variant identifier, and disambiguates identifier collisions
// with _0, _1, ... suffixes in sorted-literal order.
func BuildEnumVariants(literals []string) []EnumVariant {
	unique := make([]string, len(literals))
	copy(unique, literals)
	sort.Strings(unique)
	unique = dedupSorted(unique)

	counts := make(map[string]int, len(unique))
	for _, lit := range unique {
		counts[ToVariantName(lit)]++
	}

	variants := make([]EnumVariant, 0, len(unique))
	indices := make(map[string]int, len(counts))
	for _, lit := range unique {
		name := ToVariantName(lit)
		if counts[name] > 1 {
			idx := indices[name]
			indices[name] = idx + 1
			name = fmt.Sprintf("%s_%d", name, idx)
		}
		variants = append(variants, EnumVariant{Name: name, Literal: lit})
	}
	return variants
}

func dedupSorted(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// namingContext owns the per-run definition namespace. Structs and
// enums share it so a generated program never declares the same name
// twice: the second and later takers of a base name get _1, _2, ...
// suffixes.
type namingContext struct {
	counters map[string]int
}

func newNamingContext() *namingContext {
	return &namingContext{counters: make(map[string]int)}
}

func (n *namingContext) claim(base string) string {
	count := n.counters[base]
	n.counters[base] = count + 1
	if count == 0 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, count)
}
