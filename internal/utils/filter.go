package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// IsBlank reports whether s has no non-space characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ContainsControlChars checks if a string contains control characters
// such as NUL or escape sequences, which never appear in a word list.
func ContainsControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// IsValidQuery checks if input should reach the search engine.
// Returns false for blank strings and strings with control characters.
func IsValidQuery(s string) bool {
	return !IsBlank(s) && !ContainsControlChars(s)
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	digits := strconv.Itoa(n)
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
