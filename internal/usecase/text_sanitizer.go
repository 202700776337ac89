package usecase

import (
	"regexp"
	"strings"
)

// Invisible Unicode characters that silently break search queries when a
// product name is pasted in from a storefront page.
var invisibleCharReplacer = strings.NewReplacer(
	" ", " ", // non-breaking space
	"​", " ", // zero-width space
	"‌", " ", // zero-width non-joiner
	"‍", " ", // zero-width joiner
	"\uFEFF", " ", // byte-order mark
)

var whitespaceRunPattern = regexp.MustCompile(`\s+`)

// SanitizeQueryText normalizes a display string before it is used as a
// search term: invisible characters become ordinary spaces, whitespace
// runs collapse to a single space, and the result is trimmed. Empty or
// whitespace-only input yields the empty string.
func SanitizeQueryText(s string) string {
	cleaned := invisibleCharReplacer.Replace(s)
	cleaned = whitespaceRunPattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
