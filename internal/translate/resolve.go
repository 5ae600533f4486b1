// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package translate

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/structgen/cli/internal/jschema"
)

// float32 normal range; bounds inside it select the 32-bit float type.
const (
	float32Min = -3.4028235e38
	float32Max = 3.4028235e38
)

// asInt64 extracts a whole-number int64 from a raw tree value.
func asInt64(v any) (int64, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// asFloat64 extracts a float64 from a raw tree value.
func asFloat64(v any) (float64, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := num.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// ResolveIntType picks the narrowest fixed-width integer type that
// contains the closed interval [minimum, maximum], preferring unsigned
// when minimum >= 0. It falls back to signed 64-bit when either bound
// is absent, non-integral, or minimum > maximum.
func ResolveIntType(s *jschema.Schema) IntType {
	minVal, minOK := asInt64(s.Minimum)
	maxVal, maxOK := asInt64(s.Maximum)
	if !minOK || !maxOK || minVal > maxVal {
		return IntType{Bits: 64}
	}

	if minVal >= 0 {
		switch {
		case maxVal <= 255:
			return IntType{Bits: 8, Unsigned: true}
		case maxVal <= 65535:
			return IntType{Bits: 16, Unsigned: true}
		case maxVal <= 4294967295:
			return IntType{Bits: 32, Unsigned: true}
		default:
			return IntType{Bits: 64, Unsigned: true}
		}
	}

	switch {
	case minVal >= -128 && maxVal <= 127:
		return IntType{Bits: 8}
	case minVal >= -32768 && maxVal <= 32767:
		return IntType{Bits: 16}
	case minVal >= -2147483648 && maxVal <= 2147483647:
		return IntType{Bits: 32}
	default:
		return IntType{Bits: 64}
	}
}

// ResolveFloatType returns the 32-bit float type only when both bounds
// are present and inside the float32 normal range; otherwise 64-bit.
func ResolveFloatType(s *jschema.Schema) FloatType {
	minVal, minOK := asFloat64(s.Minimum)
	maxVal, maxOK := asFloat64(s.Maximum)
	if !minOK || !maxOK {
		return FloatType{Bits: 64}
	}
	if minVal >= float32Min && maxVal <= float32Max {
		return FloatType{Bits: 32}
	}
	return FloatType{Bits: 64}
}

// IsUUIDFormat reports whether a format value marks the string as a
// UUID-like identifier: uuid or uuid1..uuid8, case-insensitively.
func IsUUIDFormat(format string) bool {
	lower := strings.ToLower(format)
	if lower == "uuid" {
		return true
	}
	if len(lower) == 5 && strings.HasPrefix(lower, "uuid") {
		return lower[4] >= '1' && lower[4] <= '8'
	}
	return false
}

// resolveDefault turns the tri-state default keyword into a DefaultSpec
// for a field of the given type. It returns nil when there is no
// default or the literal is not representable for the type.
//
// Representable literals equal to the type's zero/empty value (0, 0.0,
// false, "", []) collapse to the zero-value spec rather than emitting a
// redundant literal.
func resolveDefault(def jschema.Default, typ TypeRef, isArray bool, optional bool, variants []EnumVariant) *DefaultSpec {
	if !def.Present {
		return nil
	}

	// Explicit null: optional fields fall back to the zero value;
	// on required fields the value is unsupported and dropped.
	if def.Value == nil {
		if optional {
			return &DefaultSpec{Zero: true}
		}
		return nil
	}

	if isArray {
		if arr, ok := def.Value.([]any); ok && len(arr) == 0 {
			return &DefaultSpec{Zero: true}
		}
		return nil
	}

	switch typ.Kind {
	case KindBool:
		b, ok := def.Value.(bool)
		if !ok {
			return nil
		}
		if !b {
			return &DefaultSpec{Zero: true}
		}
		return &DefaultSpec{Value: true}
	case KindInt:
		n, ok := asInt64(def.Value)
		if !ok {
			return nil
		}
		if n == 0 {
			return &DefaultSpec{Zero: true}
		}
		return &DefaultSpec{Value: n}
	case KindFloat:
		f, ok := asFloat64(def.Value)
		if !ok {
			return nil
		}
		if f == 0 {
			return &DefaultSpec{Zero: true}
		}
		return &DefaultSpec{Value: f}
	case KindString:
		s, ok := def.Value.(string)
		if !ok {
			return nil
		}
		if s == "" {
			return &DefaultSpec{Zero: true}
		}
		return &DefaultSpec{Value: s}
	case KindUUID:
		s, ok := def.Value.(string)
		if !ok {
			return nil
		}
		return &DefaultSpec{Value: s}
	case KindEnum:
		s, ok := def.Value.(string)
		if !ok {
			return nil
		}
		for _, v := range variants {
			if v.Literal == s {
				return &DefaultSpec{Value: s, Variant: v.Name}
			}
		}
		return nil
	default:
		// Object and catch-all defaults are unsupported.
		return nil
	}
}
