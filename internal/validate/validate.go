// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

// Package validate checks a raw schema tree against the generator's
// closed feature-support policy.
//
// The pass walks the generic tree (not the typed model), classifies
// every keyword occurrence and structural shape, and collects all
// issues in one batch. It never stops at the first problem.
package validate

import (
	"sort"

	json "github.com/goccy/go-json"

	"github.com/structgen/cli/internal/jsonptr"
)

// knownKeywords is the allow-list of recognized keywords. "optional" is
// recognized so it never reports as unknown, but it carries no
// structural check and has no effect on generation.
var knownKeywords = map[string]bool{
	"title":                true,
	"description":          true,
	"type":                 true,
	"properties":           true,
	"required":             true,
	"optional":             true,
	"enum":                 true,
	"items":                true,
	"format":               true,
	"additionalProperties": true,
	"default":              true,
	"minimum":              true,
	"maximum":              true,
}

// unsupportedKeywords are recognized schema keywords the generator
// deliberately rejects: composition, references, and constraint forms
// outside min/max.
var unsupportedKeywords = map[string]bool{
	"$ref":             true,
	"$defs":            true,
	"definitions":      true,
	"minLength":        true,
	"maxLength":        true,
	"pattern":          true,
	"oneOf":            true,
	"anyOf":            true,
	"allOf":            true,
	"$id":              true,
	"examples":         true,
	"const":            true,
	"not":              true,
	"minProperties":    true,
	"maxProperties":    true,
	"minItems":         true,
	"maxItems":         true,
	"uniqueItems":      true,
	"exclusiveMinimum": true,
	"exclusiveMaximum": true,
	"multipleOf":       true,
	"readOnly":         true,
	"writeOnly":        true,
	"deprecated":       true,
	"propertyNames":    true,
	"additionalItems":  true,
}

var supportedTypes = map[string]bool{
	"string":  true,
	"boolean": true,
	"integer": true,
	"number":  true,
	"object":  true,
	"array":   true,
}

// Check validates the raw schema tree. It returns nil when no issues
// are found, or an *Error carrying every issue in the document.
func Check(value any) error {
	var issues []Issue

	obj, ok := value.(map[string]any)
	if !ok {
		issues = append(issues, Issue{Kind: KindRootNotObject})
		return &Error{Issues: issues}
	}

	rootType, hasType := obj["type"]
	switch {
	case !hasType:
		issues = append(issues, Issue{Kind: KindRootMissingType})
	default:
		switch t := rootType.(type) {
		case string:
			if t != "object" {
				issues = append(issues, Issue{Kind: KindRootNotObject})
			}
		case []any:
			issues = append(issues, Issue{Kind: KindTypeArrayNotSupported})
		}
	}

	walk(value, "", &issues)

	if t, ok := rootType.(string); ok && t == "object" {
		props, _ := obj["properties"].(map[string]any)
		if len(props) == 0 {
			issues = append(issues, Issue{Kind: KindNoDefinitions})
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &Error{Issues: issues}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func walk(value any, path string, issues *[]Issue) {
	obj, ok := value.(map[string]any)
	if !ok {
		return
	}

	if t, _ := obj["type"].(string); t == "array" {
		if _, hasItems := obj["items"]; !hasItems {
			*issues = append(*issues, Issue{Path: path, Kind: KindArrayMissingItems})
		}
	}

	for _, key := range sortedKeys(obj) {
		val := obj[key]
		keyPath := jsonptr.Append(path, key)

		switch {
		case knownKeywords[key]:
			switch key {
			case "type":
				checkType(val, keyPath, issues)
			case "required":
				checkRequired(val, obj, keyPath, issues)
			case "enum":
				checkEnum(val, keyPath, issues)
			case "items":
				checkItems(val, obj, keyPath, issues)
				if _, ok := val.(map[string]any); ok {
					walk(val, keyPath, issues)
				}
			case "properties":
				if props, ok := val.(map[string]any); ok {
					for _, name := range sortedKeys(props) {
						walk(props[name], jsonptr.Append(keyPath, name), issues)
					}
				}
			case "additionalProperties":
				checkAdditionalProperties(val, keyPath, issues)
			case "default":
				checkDefault(val, keyPath, issues)
			case "minimum", "maximum":
				checkMinMax(val, keyPath, issues)
			}
		case unsupportedKeywords[key]:
			*issues = append(*issues, Issue{Path: keyPath, Kind: KindUnsupportedKeyword, Keyword: key})
		default:
			*issues = append(*issues, Issue{Path: keyPath, Kind: KindUnknownKeyword, Keyword: key})
		}
	}
}

func checkType(value any, path string, issues *[]Issue) {
	switch t := value.(type) {
	case string:
		switch {
		case t == "null":
			*issues = append(*issues, Issue{Path: path, Kind: KindNullTypeNotSupported})
		case !supportedTypes[t]:
			*issues = append(*issues, Issue{Path: path, Kind: KindUnsupportedType})
		}
	case []any:
		*issues = append(*issues, Issue{Path: path, Kind: KindTypeArrayNotSupported})
	default:
		*issues = append(*issues, Issue{Path: path, Kind: KindInvalidTypeValue})
	}
}

func checkRequired(value any, parent map[string]any, path string, issues *[]Issue) {
	arr, ok := value.([]any)
	if !ok {
		*issues = append(*issues, Issue{Path: path, Kind: KindInvalidRequiredFormat})
		return
	}
	props, _ := parent["properties"].(map[string]any)
	for _, item := range arr {
		name, ok := item.(string)
		if !ok {
			*issues = append(*issues, Issue{Path: path, Kind: KindInvalidRequiredFormat})
			return
		}
		if _, exists := props[name]; !exists {
			*issues = append(*issues, Issue{Path: path, Kind: KindRequiredNotInProperties})
			return
		}
	}
}

func checkEnum(value any, path string, issues *[]Issue) {
	arr, ok := value.([]any)
	if !ok {
		*issues = append(*issues, Issue{Path: path, Kind: KindInvalidEnumFormat})
		return
	}
	if len(arr) == 0 {
		*issues = append(*issues, Issue{Path: path, Kind: KindEnumEmpty})
	}
	for _, v := range arr {
		if _, ok := v.(string); !ok {
			*issues = append(*issues, Issue{Path: path, Kind: KindEnumNonStringValues})
			return
		}
	}
}

func checkItems(value any, parent map[string]any, path string, issues *[]Issue) {
	parentType, _ := parent["type"].(string)
	if parentType != "array" {
		return
	}
	if _, ok := value.(map[string]any); !ok {
		*issues = append(*issues, Issue{Path: path, Kind: KindInvalidItemsFormat})
	}
}

func checkAdditionalProperties(value any, path string, issues *[]Issue) {
	switch v := value.(type) {
	case bool:
	case map[string]any:
		if t, ok := v["type"].(string); !ok || !supportedTypes[t] {
			*issues = append(*issues, Issue{Path: path, Kind: KindInvalidAdditionalProperties})
		}
		walk(value, path, issues)
	default:
		*issues = append(*issues, Issue{Path: path, Kind: KindInvalidAdditionalProperties})
	}
}

func checkDefault(value any, path string, issues *[]Issue) {
	switch v := value.(type) {
	case map[string]any:
		*issues = append(*issues, Issue{Path: path, Kind: KindUnsupportedDefaultObject})
	case []any:
		if len(v) > 0 {
			*issues = append(*issues, Issue{Path: path, Kind: KindUnsupportedDefaultArray})
		}
	}
}

func checkMinMax(value any, path string, issues *[]Issue) {
	if _, ok := value.(json.Number); !ok {
		*issues = append(*issues, Issue{Path: path, Kind: KindInvalidMinimumMaximum})
	}
}
