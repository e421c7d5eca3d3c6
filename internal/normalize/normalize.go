// Package normalize holds the key normalizers shared by every component that
// compares ingredient names or email addresses.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// IngredientKey returns the matching identity of an ingredient name:
// trimmed, NFC composed and lowercased, so a precomposed umlaut and its
// decomposed form map to the same key.
func IngredientKey(name string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(name)))
}

// Email returns the case-insensitive lookup form of an email address.
func Email(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
