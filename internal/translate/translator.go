// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package translate

import (
	"fmt"
	"sort"
)

// Translator renders collected definitions as source text in one
// target language.
type Translator interface {
	// Name returns the translator's identifier (e.g. "rust").
	Name() string

	// Translate renders the definitions as deterministic source text.
	Translate(result *Result) ([]byte, error)

	// FileExtension returns the target's file extension (e.g. ".rs").
	FileExtension() string
}

// Register maps translator names to implementations.
type Register map[string]Translator

// Add registers a translator under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
