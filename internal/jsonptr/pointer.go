// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

// Package jsonptr builds JSON Pointer paths (RFC 6901).
//
// Segments are "/"-separated, with "~" escaped as "~0" and "/" escaped
// as "~1".
package jsonptr

import "strings"

// Append returns a new pointer path with segment appended, applying
// RFC 6901 escaping.
func Append(path, segment string) string {
	var sb strings.Builder
	sb.Grow(len(path) + len(segment) + 1)
	sb.WriteString(path)
	sb.WriteByte('/')
	for _, r := range segment {
		switch r {
		case '~':
			sb.WriteString("~0")
		case '/':
			sb.WriteString("~1")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
