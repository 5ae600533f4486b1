// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package jschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Decode parses UTF-8 JSON text into a generic tree value: nil, bool,
// json.Number, string, []any, or map[string]any.
//
// Numbers are kept as json.Number so integer bounds survive without
// float64 precision loss.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	// A schema document is a single value; anything after it is garbage.
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: trailing data after document")
	}

	return v, nil
}
