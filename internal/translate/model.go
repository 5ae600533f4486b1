// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

// Package translate turns the typed schema model into named type
// definitions and provides the target-language translator registry.
package translate

// TypeKind identifies the resolved type of a field or element.
type TypeKind int

const (
	// KindString is free-text.
	KindString TypeKind = iota
	// KindUUID is an identifier-format string (format: uuid, uuid1..uuid8).
	KindUUID
	// KindBool is a boolean.
	KindBool
	// KindInt is a fixed-width integer; see IntType.
	KindInt
	// KindFloat is a fixed-width float; see FloatType.
	KindFloat
	// KindStruct references a collected struct definition by name.
	KindStruct
	// KindEnum references a collected enum definition by name.
	KindEnum
	// KindAny is an arbitrary JSON value (degenerate catch-all value type).
	KindAny
)

// IntType is a fixed-width integer type resolved from minimum/maximum.
type IntType struct {
	Bits     int // 8, 16, 32 or 64
	Unsigned bool
}

// FloatType is a fixed-width float type: 32 or 64 bits.
type FloatType struct {
	Bits int
}

// TypeRef is a resolved field or element type.
type TypeRef struct {
	Kind  TypeKind
	Name  string // definition name for KindStruct / KindEnum
	Int   IntType
	Float FloatType
}

// DefaultSpec describes how a field gets its value when the input key
// is missing: either the type's zero/empty value, or a named helper
// producing a literal. A nil *DefaultSpec means no default at all.
type DefaultSpec struct {
	// Zero selects the type's zero/empty value.
	Zero bool

	// Value is the literal for non-zero defaults: bool, int64, float64
	// or string depending on the field type.
	Value any

	// Variant is the emitted variant identifier when the field is an
	// enum; Value then holds the original literal.
	Variant string
}

// Field is one property within a struct definition.
type Field struct {
	// Name is the emitted field identifier; Key is the original schema
	// property key. A rename annotation is emitted only when they
	// differ.
	Name string
	Key  string

	Type        TypeRef
	Array       bool // field is a sequence of Type
	CatchAll    bool // field holds all input keys not declared as properties
	Optional    bool
	Default     *DefaultSpec
	Description string
}

// StructDef is a struct destined for emission.
type StructDef struct {
	Name        string
	Fields      []Field
	DenyUnknown bool // reject input keys not declared as properties
	Description string
}

// EnumVariant pairs an emitted identifier with its original literal.
type EnumVariant struct {
	Name    string
	Literal string
}

// EnumDef is a string enumeration destined for emission.
type EnumDef struct {
	Name        string
	Variants    []EnumVariant
	Description string
}

// Result is the output of one collection run: definitions keyed by
// generated name, plus the root struct's name. Maps are iterated
// through sorted keys wherever order reaches the output.
type Result struct {
	RootName string
	Structs  map[string]*StructDef
	Enums    map[string]*EnumDef
}
