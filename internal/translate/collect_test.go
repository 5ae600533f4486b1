// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structgen/cli/internal/jschema"
)

func parseSchema(t *testing.T, doc string) *jschema.Schema {
	t.Helper()

	value, err := jschema.Decode([]byte(doc))
	require.NoError(t, err)
	s, err := jschema.FromValue(value)
	require.NoError(t, err)
	return s
}

func fieldNames(def *StructDef) []string {
	names := make([]string, 0, len(def.Fields))
	for _, f := range def.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestCollect_FieldsSortedByKey(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {
			"zeta": {"type": "string"},
			"alpha": {"type": "integer"},
			"mid": {"type": "boolean"}
		}
	}`)

	result := Collect(root, "Root")
	require.Contains(t, result.Structs, "Root")

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, fieldNames(result.Structs["Root"]))
}

func TestCollect_RequiredControlsOptional(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {
			"a": {"type": "string"},
			"b": {"type": "string"}
		},
		"required": ["a"]
	}`)

	result := Collect(root, "Root")
	def := result.Structs["Root"]

	assert.False(t, def.Fields[0].Optional)
	assert.True(t, def.Fields[1].Optional)
}

func TestCollect_EnumWinsOverType(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {
			"status": {
				"type": "string",
				"enum": ["active", "inactive"]
			}
		}
	}`)

	result := Collect(root, "Root")

	require.Contains(t, result.Enums, "Status")
	assert.Equal(t, []EnumVariant{
		{Name: "Active", Literal: "active"},
		{Name: "Inactive", Literal: "inactive"},
	}, result.Enums["Status"].Variants)

	f := result.Structs["Root"].Fields[0]
	assert.Equal(t, TypeRef{Kind: KindEnum, Name: "Status"}, f.Type)
}

func TestCollect_EnumTitleOverridesKey(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {
			"status": {
				"title": "lifecycle state",
				"enum": ["on", "off"]
			}
		}
	}`)

	result := Collect(root, "Root")
	assert.Contains(t, result.Enums, "LifecycleState")
}

func TestCollect_NestedObject(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {
			"owner": {
				"type": "object",
				"properties": {
					"name": {"type": "string"}
				},
				"required": ["name"]
			}
		},
		"required": ["owner"]
	}`)

	result := Collect(root, "Root")

	require.Contains(t, result.Structs, "Owner")
	assert.Equal(t, []string{"name"}, fieldNames(result.Structs["Owner"]))
	assert.Equal(t, TypeRef{Kind: KindStruct, Name: "Owner"}, result.Structs["Root"].Fields[0].Type)
}

func TestCollect_NameCollisionsSuffixed(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {
			"a": {
				"type": "object",
				"title": "Item",
				"properties": {"x": {"type": "string"}}
			},
			"b": {
				"type": "object",
				"title": "Item",
				"properties": {"y": {"type": "string"}}
			},
			"c": {
				"title": "Item",
				"enum": ["one"]
			}
		}
	}`)

	result := Collect(root, "Root")

	// Structs and enums share one namespace; claims happen in sorted
	// property order.
	assert.Contains(t, result.Structs, "Item")
	assert.Contains(t, result.Structs, "Item_1")
	assert.Contains(t, result.Enums, "Item_2")
}

func TestCollect_ArrayFields(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {
			"tags": {
				"type": "array",
				"items": {"type": "string"}
			},
			"scores": {
				"type": "array",
				"items": {"type": "integer", "minimum": 0, "maximum": 100}
			},
			"entries": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {"id": {"type": "string"}}
				}
			}
		}
	}`)

	result := Collect(root, "Root")
	def := result.Structs["Root"]

	byName := make(map[string]Field, len(def.Fields))
	for _, f := range def.Fields {
		byName[f.Name] = f
	}

	assert.Equal(t, TypeRef{Kind: KindString}, byName["tags"].Type)
	assert.True(t, byName["tags"].Array)
	assert.Equal(t, TypeRef{Kind: KindInt, Int: IntType{Bits: 8, Unsigned: true}}, byName["scores"].Type)
	assert.Equal(t, TypeRef{Kind: KindStruct, Name: "Entries"}, byName["entries"].Type)
	assert.Contains(t, result.Structs, "Entries")
}

func TestCollect_ArrayWithoutItemsDropped(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {
			"bad": {"type": "array"},
			"ok": {"type": "string"}
		}
	}`)

	result := Collect(root, "Root")
	assert.Equal(t, []string{"ok"}, fieldNames(result.Structs["Root"]))
}

func TestCollect_ArrayOfShapelessObjectDropped(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {
			"blobs": {
				"type": "array",
				"items": {"type": "object"}
			},
			"ok": {"type": "string"}
		}
	}`)

	result := Collect(root, "Root")
	assert.Equal(t, []string{"ok"}, fieldNames(result.Structs["Root"]))
}

func TestCollect_UnsupportedTypeDropped(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {
			"weird": {"type": "tuple"},
			"untyped": {},
			"ok": {"type": "boolean"}
		}
	}`)

	result := Collect(root, "Root")
	assert.Equal(t, []string{"ok"}, fieldNames(result.Structs["Root"]))
}

func TestCollect_DenyUnknownFromAdditionalPropertiesFalse(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {"a": {"type": "string"}},
		"additionalProperties": false
	}`)

	result := Collect(root, "Root")
	assert.True(t, result.Structs["Root"].DenyUnknown)
}

func TestCollect_EmptyStructKeptWhenDenyUnknown(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"additionalProperties": false
	}`)

	result := Collect(root, "Root")
	require.Contains(t, result.Structs, "Root")
	assert.Empty(t, result.Structs["Root"].Fields)
}

func TestCollect_EmptyStructDropped(t *testing.T) {
	root := parseSchema(t, `{"type": "object"}`)

	result := Collect(root, "Root")
	assert.Empty(t, result.Structs)
	assert.Empty(t, result.Enums)
}

func TestCollect_CatchAllField(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"additionalProperties": {"type": "integer", "minimum": 0, "maximum": 10}
	}`)

	result := Collect(root, "Root")
	def := result.Structs["Root"]

	// The catch-all field comes first, then declared properties.
	require.Len(t, def.Fields, 2)
	assert.True(t, def.Fields[0].CatchAll)
	assert.Equal(t, "additional_properties", def.Fields[0].Name)
	assert.Equal(t, TypeRef{Kind: KindInt, Int: IntType{Bits: 8, Unsigned: true}}, def.Fields[0].Type)
	assert.Equal(t, "name", def.Fields[1].Name)
	assert.False(t, def.DenyUnknown)
}

func TestCollect_CatchAllShapelessObjectIsAny(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"additionalProperties": {}
	}`)

	result := Collect(root, "Root")
	f := result.Structs["Root"].Fields[0]

	assert.True(t, f.CatchAll)
	assert.Equal(t, KindAny, f.Type.Kind)
}

func TestCollect_CatchAllObjectWithProperties(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"additionalProperties": {
			"type": "object",
			"properties": {"note": {"type": "string"}}
		}
	}`)

	result := Collect(root, "Root")

	require.Contains(t, result.Structs, "RootExtra")
	assert.Equal(t, TypeRef{Kind: KindStruct, Name: "RootExtra"}, result.Structs["Root"].Fields[0].Type)
}

func TestCollect_HyphenKeyRenamed(t *testing.T) {
	root := parseSchema(t, `{
		"type": "object",
		"properties": {"created-at": {"type": "string"}}
	}`)

	result := Collect(root, "Root")
	f := result.Structs["Root"].Fields[0]

	assert.Equal(t, "created_at", f.Name)
	assert.Equal(t, "created-at", f.Key)
}
