package utils

import (
	"strings"
	"unicode/utf8"
)

// CleanText strips NUL bytes and invalid UTF8 from free text submitted by
// users, then trims surrounding whitespace.
func CleanText(input string) string {
	if strings.Contains(input, "\x00") || !utf8.ValidString(input) {
		input = strings.ToValidUTF8(input, "")
		input = strings.ReplaceAll(input, "\x00", "")
	}

	return strings.TrimSpace(input)
}
