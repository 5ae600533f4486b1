// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

// Package jschema provides JSON Schema decoding and the typed partial
// schema model used by the generator.
package jschema

import (
	"fmt"
)

// Default models the "default" keyword as a tri-state: absent, present
// with a value, or present and explicitly null (Value == nil). A plain
// optional cannot tell the last two apart, and the generator treats
// them differently.
type Default struct {
	Present bool
	Value   any
}

// Schema is a typed partial view of one schema node. Only the keywords
// the generator understands are modeled; everything else stays in the
// generic tree and is ignored here.
//
// Type is kept verbatim: the supported tags are string, boolean,
// integer, number, object and array, but an unrecognized tag is a
// distinct state, not normalized away.
type Schema struct {
	Title       string
	Description string
	Type        string
	Format      string
	Properties  map[string]*Schema
	Required    []string
	Enum        []any
	Items       *Schema

	// AdditionalProperties holds the raw node: nil when absent,
	// otherwise a bool or an object (map[string]any).
	AdditionalProperties any

	Default Default

	// Minimum and Maximum hold the raw nodes; numeric values arrive as
	// json.Number. Non-numeric values are kept and fall out during
	// width resolution.
	Minimum any
	Maximum any
}

// FromValue parses a generic tree node into a Schema. It fails when the
// node is not an object or a recognized keyword has the wrong shape;
// it performs no semantic validation (that is the validator's job, run
// independently over the generic tree).
func FromValue(v any) (*Schema, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema node is not an object")
	}

	s := &Schema{}

	for _, key := range []string{"title", "description", "type", "format"} {
		raw, present := obj[key]
		if !present {
			continue
		}
		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("schema field %q: expected string", key)
		}
		switch key {
		case "title":
			s.Title = str
		case "description":
			s.Description = str
		case "type":
			s.Type = str
		case "format":
			s.Format = str
		}
	}

	if raw, present := obj["properties"]; present {
		props, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("schema field %q: expected object", "properties")
		}
		s.Properties = make(map[string]*Schema, len(props))
		for name, propRaw := range props {
			prop, err := FromValue(propRaw)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			s.Properties[name] = prop
		}
	}

	if raw, present := obj["required"]; present {
		arr, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("schema field %q: expected array", "required")
		}
		s.Required = make([]string, 0, len(arr))
		for _, item := range arr {
			name, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("schema field %q: expected array of strings", "required")
			}
			s.Required = append(s.Required, name)
		}
	}

	if raw, present := obj["enum"]; present {
		arr, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("schema field %q: expected array", "enum")
		}
		s.Enum = arr
	}

	if raw, present := obj["items"]; present {
		items, err := FromValue(raw)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		s.Items = items
	}

	if raw, present := obj["additionalProperties"]; present {
		s.AdditionalProperties = raw
	}

	if raw, present := obj["default"]; present {
		s.Default = Default{Present: true, Value: raw}
	}

	s.Minimum = obj["minimum"]
	s.Maximum = obj["maximum"]

	return s, nil
}

// IsRequired reports whether name is listed in the node's required
// array. Optionality derives from this alone; the per-property
// "optional" keyword is recognized but has no effect.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}
