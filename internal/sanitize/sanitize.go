// Package sanitize filters free-text input before it reaches the store.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	allowedChars    = regexp.MustCompile(`[^a-zA-Z0-9@ ]`)
	restrictedWords = regexp.MustCompile(`(?i)\b(remove|delete)\b`)
)

// Clean strips every character outside [A-Za-z0-9@ ], removes the standalone
// words "remove" and "delete" (word-boundary match, any case) and trims the
// result. It is pure and idempotent. Applies to free-text fields only; numeric
// input never goes through here.
func Clean(input string) string {
	sanitized := allowedChars.ReplaceAllString(input, "")
	sanitized = restrictedWords.ReplaceAllString(sanitized, "")
	return strings.TrimSpace(sanitized)
}

// CleanOptional sanitizes an optional free-text field. An input that
// sanitizes to the empty string is treated as absent (nil) so the store sees
// NULL rather than "".
func CleanOptional(input string) *string {
	cleaned := Clean(input)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
