// Package normalize canonicalizes user-supplied strings before they are
// compared or stored.
package normalize

import "strings"

// Email trims surrounding space and lowercases.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Category canonicalizes a document category filter: trimmed, lowercased,
// with spaces and underscores turned into hyphens ("Press Kit" becomes
// "press-kit").
func Category(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "-")
}
