// Package sanitize normalizes untrusted text at the request boundary. Every function
// returns a new value; inputs are never modified.
package sanitize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Text returns s in Unicode NFC form, trimmed, with "<" escaped as "&lt;".
func Text(s string) string {
	s = strings.TrimSpace(norm.NFC.String(s))
	return strings.ReplaceAll(s, "<", "&lt;")
}

// TextPtr applies Text to an optional value. Nil stays nil.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Text(*s)
	return &out
}

// Texts applies Text to every element of a list.
func Texts(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Text(v)
	}
	return out
}

// Email trims and lower-cases an address after NFC normalization.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}
