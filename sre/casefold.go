package sre

import "unicode"

// toLowerUnicode is the Unicode-aware half of lower (see state.go),
// split out so the ASCII/ignorecase fast path in lower never pulls in
// the stdlib unicode tables for the common case.
func toLowerUnicode(r rune) rune {
	return unicode.ToLower(r)
}
