// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func structRef(name string) TypeRef {
	return TypeRef{Kind: KindStruct, Name: name}
}

func TestEmissionOrder_DependenciesFirst(t *testing.T) {
	result := &Result{
		RootName: "Root",
		Structs: map[string]*StructDef{
			"Root": {Name: "Root", Fields: []Field{
				{Name: "a", Type: structRef("Inner")},
				{Name: "b", Type: structRef("Other")},
			}},
			"Inner": {Name: "Inner", Fields: []Field{
				{Name: "leaf", Type: structRef("Leaf")},
			}},
			"Other": {Name: "Other"},
			"Leaf":  {Name: "Leaf"},
		},
		Enums: map[string]*EnumDef{},
	}

	order := result.EmissionOrder()
	require.Equal(t, []string{"Leaf", "Inner", "Other", "Root"}, order)
}

func TestEmissionOrder_SharedDependencyVisitedOnce(t *testing.T) {
	result := &Result{
		RootName: "Root",
		Structs: map[string]*StructDef{
			"Root": {Name: "Root", Fields: []Field{
				{Name: "a", Type: structRef("Shared")},
				{Name: "b", Type: structRef("Mid")},
			}},
			"Mid": {Name: "Mid", Fields: []Field{
				{Name: "s", Type: structRef("Shared")},
			}},
			"Shared": {Name: "Shared"},
		},
		Enums: map[string]*EnumDef{},
	}

	order := result.EmissionOrder()
	assert.Equal(t, []string{"Shared", "Mid", "Root"}, order)
}

func TestEmissionOrder_UnreachableAppendedSorted(t *testing.T) {
	result := &Result{
		RootName: "Root",
		Structs: map[string]*StructDef{
			"Root":  {Name: "Root"},
			"Zebra": {Name: "Zebra"},
			"Rogue": {Name: "Rogue"},
		},
		Enums: map[string]*EnumDef{},
	}

	order := result.EmissionOrder()
	assert.Equal(t, []string{"Root", "Rogue", "Zebra"}, order)
}

func TestEmissionOrder_Deterministic(t *testing.T) {
	result := &Result{
		RootName: "Root",
		Structs: map[string]*StructDef{
			"Root": {Name: "Root", Fields: []Field{
				{Name: "x", Type: structRef("A")},
				{Name: "y", Type: structRef("B")},
			}},
			"A": {Name: "A"},
			"B": {Name: "B"},
		},
		Enums: map[string]*EnumDef{},
	}

	first := result.EmissionOrder()
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, result.EmissionOrder())
	}
}

func TestSortedEnumNames(t *testing.T) {
	result := &Result{
		Enums: map[string]*EnumDef{
			"Zeta":  {Name: "Zeta"},
			"Alpha": {Name: "Alpha"},
			"Mid":   {Name: "Mid"},
		},
	}

	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, result.SortedEnumNames())
}
