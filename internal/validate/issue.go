// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package validate

import (
	"fmt"
	"strings"
)

// Kind categorizes every schema validation failure mode.
type Kind string

// The closed issue taxonomy. UnsupportedKeyword and UnknownKeyword
// carry the offending keyword in Issue.Keyword.
const (
	// Root / structural.
	KindRootNotObject   Kind = "root-not-object"
	KindRootMissingType Kind = "root-missing-type"
	KindNoDefinitions   Kind = "no-definitions-to-generate"

	// Invalid schema structure.
	KindInvalidTypeValue            Kind = "invalid-type-value"
	KindTypeArrayNotSupported       Kind = "type-array-not-supported"
	KindNullTypeNotSupported        Kind = "null-type-not-supported"
	KindInvalidRequiredFormat       Kind = "invalid-required-format"
	KindRequiredNotInProperties     Kind = "required-not-in-properties"
	KindInvalidEnumFormat           Kind = "invalid-enum-format"
	KindEnumEmpty                   Kind = "enum-empty"
	KindEnumNonStringValues         Kind = "enum-non-string-values"
	KindInvalidItemsFormat          Kind = "invalid-items-format"
	KindArrayMissingItems           Kind = "array-missing-items"
	KindUnsupportedDefaultObject    Kind = "unsupported-default-object"
	KindUnsupportedDefaultArray     Kind = "unsupported-default-non-empty-array"
	KindInvalidMinimumMaximum       Kind = "invalid-minimum-maximum"
	KindUnsupportedType             Kind = "unsupported-type"
	KindInvalidAdditionalProperties Kind = "additional-properties-unsupported-schema"

	// Keyword classification.
	KindUnsupportedKeyword Kind = "unsupported-keyword"
	KindUnknownKeyword     Kind = "unknown-keyword"
)

var kindMessages = map[Kind]string{
	KindRootNotObject:               `root schema must have type "object"`,
	KindRootMissingType:             "root has no type key",
	KindNoDefinitions:               "root object has no supported properties",
	KindInvalidTypeValue:            "type is not a string or array of strings",
	KindTypeArrayNotSupported:       "type array (multiple types) not supported",
	KindNullTypeNotSupported:        `type "null" not supported`,
	KindInvalidRequiredFormat:       "required is not an array of strings",
	KindRequiredNotInProperties:     "required references property not in properties",
	KindInvalidEnumFormat:           "enum is not an array",
	KindEnumEmpty:                   "enum is empty array",
	KindEnumNonStringValues:         "enum has non-string values; only string enums supported",
	KindInvalidItemsFormat:          "items is not an object when type is array",
	KindArrayMissingItems:           "type is array but items is missing",
	KindUnsupportedDefaultObject:    "default is object (not supported)",
	KindUnsupportedDefaultArray:     "default is non-empty array (not supported)",
	KindInvalidMinimumMaximum:       "minimum/maximum must be number when present",
	KindUnsupportedType:             "property has unsupported type",
	KindInvalidAdditionalProperties: "additionalProperties schema not supported",
}

// Issue is a single validation finding: a JSON Pointer path (RFC 6901)
// into the schema plus the kind of failure. Issues are created during
// one validation pass and never mutated.
type Issue struct {
	Path    string
	Kind    Kind
	Keyword string
}

// Message returns the human-readable description of the issue.
func (i Issue) Message() string {
	switch i.Kind {
	case KindUnsupportedKeyword:
		return fmt.Sprintf("keyword %s not supported", i.Keyword)
	case KindUnknownKeyword:
		return fmt.Sprintf("unknown keyword: %s", i.Keyword)
	default:
		return kindMessages[i.Kind]
	}
}

// Error aggregates every issue found in one validation pass. It is only
// constructed with at least one issue.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "schema validation failed with %d issue(s):\n", len(e.Issues))
	for _, issue := range e.Issues {
		fmt.Fprintf(&sb, "  %s: %s\n", issue.Path, issue.Message())
	}
	return sb.String()
}
