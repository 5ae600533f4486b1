// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package translate

import (
	"sort"
	"strings"

	"github.com/structgen/cli/internal/jschema"
)

// Collect recursively walks the typed schema model, deriving every
// struct and enum definition reachable from the root object. The
// returned Result owns the definition maps and the naming state used
// to build them; nothing survives across calls.
func Collect(root *jschema.Schema, rootName string) *Result {
	c := &collector{
		structs: make(map[string]*StructDef),
		enums:   make(map[string]*EnumDef),
		names:   newNamingContext(),
	}
	name := c.names.claim(rootName)
	c.collectStruct(root, name)
	return &Result{RootName: name, Structs: c.structs, Enums: c.enums}
}

// collector threads the definition maps and naming counters through
// one generation run.
type collector struct {
	structs map[string]*StructDef
	enums   map[string]*EnumDef
	names   *namingContext
}

// collectStruct derives a struct definition for an object schema and
// registers it under name, recursing into nested objects. A struct
// with no fields and no deny-unknown marker is dropped.
func (c *collector) collectStruct(s *jschema.Schema, name string) {
	var fields []Field

	denyUnknown := false
	if b, ok := s.AdditionalProperties.(bool); ok {
		denyUnknown = !b
	}

	if apRaw, ok := s.AdditionalProperties.(map[string]any); ok {
		if valueType, ok := c.resolveCatchAllType(apRaw, name); ok {
			fields = append(fields, Field{
				Name:     "additional_properties",
				Key:      "additional_properties",
				Type:     valueType,
				CatchAll: true,
			})
		}
	}

	for _, key := range sortedPropertyKeys(s.Properties) {
		prop := s.Properties[key]
		if f, ok := c.resolveField(s, key, prop, name); ok {
			fields = append(fields, f)
		}
	}

	if len(fields) > 0 || denyUnknown {
		c.structs[name] = &StructDef{
			Name:        name,
			Fields:      fields,
			DenyUnknown: denyUnknown,
			Description: normalizeDescription(s.Description),
		}
	}
}

// resolveField maps one property to a field, collecting any nested
// definitions it implies. Unsupported shapes resolve to no field at
// all: the property is dropped, never an error.
func (c *collector) resolveField(parent *jschema.Schema, key string, prop *jschema.Schema, owner string) (Field, bool) {
	optional := !parent.IsRequired(key)

	f := Field{
		Name:        FieldName(key),
		Key:         key,
		Optional:    optional,
		Description: normalizeDescription(prop.Description),
	}

	// A non-empty string enum wins over any declared type.
	if literals, ok := enumStrings(prop.Enum); ok {
		enumName := c.names.claim(typeNameFromProperty(key, prop.Title))
		variants := BuildEnumVariants(literals)
		c.enums[enumName] = &EnumDef{
			Name:        enumName,
			Variants:    variants,
			Description: normalizeDescription(prop.Description),
		}
		f.Type = TypeRef{Kind: KindEnum, Name: enumName}
		f.Default = resolveDefault(prop.Default, f.Type, false, optional, variants)
		return f, true
	}

	switch prop.Type {
	case "string":
		if IsUUIDFormat(prop.Format) {
			f.Type = TypeRef{Kind: KindUUID}
		} else {
			f.Type = TypeRef{Kind: KindString}
		}
	case "boolean":
		f.Type = TypeRef{Kind: KindBool}
	case "integer":
		f.Type = TypeRef{Kind: KindInt, Int: ResolveIntType(prop)}
	case "number":
		f.Type = TypeRef{Kind: KindFloat, Float: ResolveFloatType(prop)}
	case "object":
		nestedName := typeNameFromProperty(key, prop.Title)
		if len(prop.Properties) > 0 {
			nestedName = c.names.claim(nestedName)
			c.collectStruct(prop, nestedName)
		}
		f.Type = TypeRef{Kind: KindStruct, Name: nestedName}
	case "array":
		if prop.Items == nil {
			return Field{}, false
		}
		elem, ok := c.resolveElemType(key, prop.Items)
		if !ok {
			return Field{}, false
		}
		f.Type = elem
		f.Array = true
	default:
		// Unsupported or absent type: drop the property.
		return Field{}, false
	}

	f.Default = resolveDefault(prop.Default, f.Type, f.Array, optional, nil)
	return f, true
}

// resolveElemType resolves the element type of an array property from
// its items schema, collecting nested enum or struct definitions. It
// reports false when no element type is representable, in which case
// the whole array field is dropped.
func (c *collector) resolveElemType(key string, items *jschema.Schema) (TypeRef, bool) {
	if literals, ok := enumStrings(items.Enum); ok {
		enumName := c.names.claim(typeNameFromProperty(key, items.Title))
		c.enums[enumName] = &EnumDef{
			Name:        enumName,
			Variants:    BuildEnumVariants(literals),
			Description: normalizeDescription(items.Description),
		}
		return TypeRef{Kind: KindEnum, Name: enumName}, true
	}

	switch items.Type {
	case "string":
		if IsUUIDFormat(items.Format) {
			return TypeRef{Kind: KindUUID}, true
		}
		return TypeRef{Kind: KindString}, true
	case "boolean":
		return TypeRef{Kind: KindBool}, true
	case "integer":
		return TypeRef{Kind: KindInt, Int: ResolveIntType(items)}, true
	case "number":
		return TypeRef{Kind: KindFloat, Float: ResolveFloatType(items)}, true
	case "object":
		if len(items.Properties) == 0 {
			return TypeRef{}, false
		}
		name := c.names.claim(typeNameFromProperty(key, items.Title))
		c.collectStruct(items, name)
		return TypeRef{Kind: KindStruct, Name: name}, true
	default:
		return TypeRef{}, false
	}
}

// resolveCatchAllType resolves the value type of a schema-valued
// additionalProperties node. Nested objects with usable properties
// become an "<owner>Extra" struct; featureless ones degrade to the
// generic JSON value type. Unparseable schemas report false and the
// catch-all field is dropped.
func (c *collector) resolveCatchAllType(raw map[string]any, owner string) (TypeRef, bool) {
	ap, err := jschema.FromValue(raw)
	if err != nil {
		return TypeRef{}, false
	}

	if literals, ok := enumStrings(ap.Enum); ok {
		enumName := c.names.claim(owner + "Value")
		c.enums[enumName] = &EnumDef{
			Name:        enumName,
			Variants:    BuildEnumVariants(literals),
			Description: normalizeDescription(ap.Description),
		}
		return TypeRef{Kind: KindEnum, Name: enumName}, true
	}

	switch ap.Type {
	case "string":
		if IsUUIDFormat(ap.Format) {
			return TypeRef{Kind: KindUUID}, true
		}
		return TypeRef{Kind: KindString}, true
	case "boolean":
		return TypeRef{Kind: KindBool}, true
	case "integer":
		return TypeRef{Kind: KindInt, Int: ResolveIntType(ap)}, true
	case "number":
		return TypeRef{Kind: KindFloat, Float: ResolveFloatType(ap)}, true
	case "object":
		if len(ap.Properties) > 0 {
			name := c.names.claim(owner + "Extra")
			c.collectStruct(ap, name)
			return TypeRef{Kind: KindStruct, Name: name}, true
		}
		return TypeRef{Kind: KindAny}, true
	default:
		return TypeRef{Kind: KindAny}, true
	}
}

// enumStrings returns the enum literals when the list is non-empty and
// all strings; anything else falls through to plain type dispatch.
func enumStrings(values []any) ([]string, bool) {
	if len(values) == 0 {
		return nil, false
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func sortedPropertyKeys(props map[string]*jschema.Schema) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeDescription trims a description and collapses blank ones to
// the empty string.
func normalizeDescription(s string) string {
	return strings.TrimSpace(s)
}
