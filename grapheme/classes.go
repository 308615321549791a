package grapheme

import "unicode"

// isDigit reports whether r belongs to PCRE's \d class (Unicode decimal
// digits, general category Nd).
func isDigit(r rune) bool {
	return unicode.Is(unicode.Nd, r)
}

// isWord reports whether r belongs to PCRE's \w class: letters, marks,
// decimal digits, connector punctuation (mirrors underscore), or the ASCII
// underscore itself.
func isWord(r rune) bool {
	if r == '_' {
		return true
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Nd, r) || unicode.Is(unicode.Pc, r)
}

// isSpace reports whether r belongs to PCRE's \s class.
func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
