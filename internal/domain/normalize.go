package domain

import "strings"

// NormalizeText prepares free text for matching: every run of whitespace
// (spaces, tabs, newlines) becomes a single space, the ends are trimmed and
// the result is lowercased. Punctuation and diacritics are kept.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
