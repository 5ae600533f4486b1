// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package translate

import "sort"

// EmissionOrder returns the struct names in an order where every
// struct referenced by another struct's field appears strictly before
// the referencing struct: depth-first post-order from the root.
//
// The visited set guards against re-visiting shared names; the schema
// tree itself is acyclic since references and recursive definitions
// are unsupported, so no cycle-breaking is needed. Definitions
// unreachable from the root should not occur, but are appended at the
// end in sorted name order just in case.
func (r *Result) EmissionOrder() []string {
	var order []string
	visited := make(map[string]bool, len(r.Structs))

	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		if def, ok := r.Structs[name]; ok {
			for _, f := range def.Fields {
				if f.Type.Kind == KindStruct {
					if _, ok := r.Structs[f.Type.Name]; ok {
						visit(f.Type.Name)
					}
				}
			}
		}
		order = append(order, name)
	}

	visit(r.RootName)

	remaining := make([]string, 0, len(r.Structs))
	for name := range r.Structs {
		if !visited[name] {
			remaining = append(remaining, name)
		}
	}
	sort.Strings(remaining)
	for _, name := range remaining {
		visit(name)
	}

	return order
}

// SortedEnumNames returns the enum definition names in lexicographic
// order, the order enums are emitted in.
func (r *Result) SortedEnumNames() []string {
	names := make([]string, 0, len(r.Enums))
	for name := range r.Enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
