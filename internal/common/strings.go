package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is returned by String methods for values outside their enum range.
const UnknownStr = "unknown"

// Capitalize returns s with its first rune in upper case and the rest in
// lower case, so "hadPrimarySource" becomes "Hadprimarysource".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
