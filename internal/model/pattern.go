package model

import (
	"strings"
	"unicode"
)

// Placeholder marks an unrevealed position in a pattern
const Placeholder = '_'

// NewPattern returns a pattern of the given length with every position hidden
func NewPattern(length int) string {
	return strings.Repeat(string(Placeholder), length)
}

// ParsePattern normalises user input into a pattern.
// Both the compact form "a___e" and the spaced display form "a _ _ _ e" are
// accepted; letters are lowercased and whitespace is dropped.
func ParsePattern(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// DisplayPattern renders a pattern with spaces between positions
func DisplayPattern(pattern string) string {
	parts := make([]string, 0, len(pattern))
	for _, r := range pattern {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}

// IsSolved reports whether a pattern has no hidden positions left
func IsSolved(pattern string) bool {
	return !strings.ContainsRune(pattern, Placeholder)
}
