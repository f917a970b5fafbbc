package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NFC composes characters so that visually identical strings compare equal:
// "e" followed by a combining acute accent becomes "é".
func NFC(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars drops control characters except newlines and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine joins the words of s with single spaces.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
