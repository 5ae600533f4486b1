// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package jschema

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeValue(t *testing.T, src string) any {
	t.Helper()
	v, err := Decode([]byte(src))
	require.NoError(t, err)
	return v
}

func TestDecode(t *testing.T) {
	v := decodeValue(t, `{"a": 1, "b": [true, null], "c": "x"}`)
	obj, ok := v.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, json.Number("1"), obj["a"])
	assert.Equal(t, []any{true, nil}, obj["b"])
	assert.Equal(t, "x", obj["c"])
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`{"a":`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{} {}`))
	assert.Error(t, err, "trailing data must be rejected")
}

func TestFromValue(t *testing.T) {
	v := decodeValue(t, `{
		"title": "Widget",
		"description": "A widget.",
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": "string", "format": "uuid"},
			"count": {"type": "integer", "minimum": 0, "maximum": 255}
		}
	}`)

	s, err := FromValue(v)
	require.NoError(t, err)

	assert.Equal(t, "Widget", s.Title)
	assert.Equal(t, "A widget.", s.Description)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"id"}, s.Required)
	require.Len(t, s.Properties, 2)

	id := s.Properties["id"]
	require.NotNil(t, id)
	assert.Equal(t, "uuid", id.Format)

	count := s.Properties["count"]
	require.NotNil(t, count)
	assert.Equal(t, json.Number("0"), count.Minimum)
	assert.Equal(t, json.Number("255"), count.Maximum)

	assert.True(t, s.IsRequired("id"))
	assert.False(t, s.IsRequired("count"))
}

func TestFromValueUnrecognizedTypeKeptVerbatim(t *testing.T) {
	s, err := FromValue(decodeValue(t, `{"type": "decimal"}`))
	require.NoError(t, err)
	assert.Equal(t, "decimal", s.Type)
}

func TestFromValueDefaultTriState(t *testing.T) {
	absent, err := FromValue(decodeValue(t, `{"type": "string"}`))
	require.NoError(t, err)
	assert.False(t, absent.Default.Present)

	null, err := FromValue(decodeValue(t, `{"type": "string", "default": null}`))
	require.NoError(t, err)
	assert.True(t, null.Default.Present)
	assert.Nil(t, null.Default.Value)

	lit, err := FromValue(decodeValue(t, `{"type": "string", "default": "x"}`))
	require.NoError(t, err)
	assert.True(t, lit.Default.Present)
	assert.Equal(t, "x", lit.Default.Value)
}

func TestFromValueShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not an object", `[1, 2]`},
		{"title not string", `{"title": 5}`},
		{"type not string", `{"type": 5}`},
		{"properties not object", `{"properties": []}`},
		{"property not object", `{"properties": {"a": 3}}`},
		{"required not array", `{"required": "id"}`},
		{"required non-string entry", `{"required": [1]}`},
		{"enum not array", `{"enum": "a"}`},
		{"items not object", `{"items": "string"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromValue(decodeValue(t, tt.src))
			assert.Error(t, err)
		})
	}
}

func TestFromValueAdditionalPropertiesKeptRaw(t *testing.T) {
	s, err := FromValue(decodeValue(t, `{"additionalProperties": false}`))
	require.NoError(t, err)
	assert.Equal(t, false, s.AdditionalProperties)

	s, err = FromValue(decodeValue(t, `{"additionalProperties": {"type": "string"}}`))
	require.NoError(t, err)
	_, ok := s.AdditionalProperties.(map[string]any)
	assert.True(t, ok)
}
