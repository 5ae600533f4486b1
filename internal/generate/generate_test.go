// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

package generate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structgen/cli/internal/translate"
	"github.com/structgen/cli/internal/translate/rust"
)

func settings(strict bool) Settings {
	return Settings{Strict: strict, Logger: zerolog.Nop()}
}

func TestRunProducesRustSource(t *testing.T) {
	schema := []byte(`{
		"title": "user profile",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer", "minimum": 0, "maximum": 150}
		},
		"required": ["name"]
	}`)

	out, err := Run(schema, &rust.Translator{}, settings(true))
	require.NoError(t, err)

	source := string(out)
	assert.Contains(t, source, "pub struct UserProfile {")
	assert.Contains(t, source, "pub name: String,")
	assert.Contains(t, source, "pub age: Option<u8>,")
}

func TestRunRejectsMalformedJSON(t *testing.T) {
	_, err := Run([]byte(`{"type": "object"`), &rust.Translator{}, settings(true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode schema document")
}

func TestRunRejectsNonObjectRoot(t *testing.T) {
	_, err := Run([]byte(`{"type": "string"}`), &rust.Translator{}, settings(false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `root schema must have type "object"`)
}

func TestRunStrictFailsOnIssues(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 3}
		}
	}`)

	_, err := Run(schema, &rust.Translator{}, settings(true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyword minLength not supported")
}

func TestRunLenientSkipsValidationSilently(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"properties": {
			"a": {"type": "string", "pattern": "^x"},
			"b": {"type": "integer"}
		}
	}`)

	var log bytes.Buffer
	logger := zerolog.New(&log).Level(zerolog.WarnLevel)

	out, err := Run(schema, &rust.Translator{}, Settings{Strict: false, Logger: logger})
	require.NoError(t, err)
	assert.Contains(t, string(out), "pub struct Root {")
	assert.Empty(t, log.String(), "lenient mode must not emit diagnostics")
}

func TestRunLenientSalvagesValidParts(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 3},
			"count": {"type": "integer"}
		}
	}`)

	out, err := Run(schema, &rust.Translator{}, settings(false))
	require.NoError(t, err)

	source := string(out)
	assert.Contains(t, source, "pub struct Root {")
	assert.Contains(t, source, "pub count: Option<i64>,")
	assert.Contains(t, source, "pub name: Option<String>,")
}

func TestRunFailsWhenNothingToGenerate(t *testing.T) {
	_, err := Run([]byte(`{"type": "object"}`), &rust.Translator{}, settings(false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no definitions to generate")
}

func TestToWriter(t *testing.T) {
	schema := []byte(`{
		"title": "Point",
		"type": "object",
		"properties": {"x": {"type": "number"}, "y": {"type": "number"}},
		"required": ["x", "y"]
	}`)

	var buf bytes.Buffer
	err := ToWriter(&buf, schema, &rust.Translator{}, settings(true))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "//! Generated by structgen."))
	assert.Contains(t, buf.String(), "pub struct Point {")
}

func TestRootNameFallback(t *testing.T) {
	assert.Equal(t, "Root", rootName(""))
	assert.Equal(t, "Root", rootName("  ***  "))
	assert.Equal(t, "UserProfile", rootName("user profile"))
}

func TestRegisterLookup(t *testing.T) {
	reg := translate.Register{}
	reg.Add(&rust.Translator{})

	tr, err := reg.Get("rust")
	require.NoError(t, err)
	assert.Equal(t, ".rs", tr.FileExtension())

	_, err = reg.Get("cobol")
	require.Error(t, err)
	assert.Equal(t, []string{"rust"}, reg.Available())
}
