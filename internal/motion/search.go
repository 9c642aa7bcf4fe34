package motion

import "unicode"

// The whitespace class is the one \s matches in ECMAScript patterns:
// unicode.White_Space without NEL, plus the byte order mark.
const (
	nextLine              = '\u0085'
	zeroWidthNoBreakSpace = '\uFEFF'
)

// IsWhitespace reports whether r belongs to the whitespace class.
func IsWhitespace(r rune) bool {
	if r == zeroWidthNoBreakSpace {
		return true
	}
	return r != nextLine && unicode.IsSpace(r)
}

// FindRun returns the index and length of the first whitespace run in text.
// ok is false when text contains no whitespace.
func FindRun(text []rune) (index, length int, ok bool) {
	start := -1
	for i, r := range text {
		if IsWhitespace(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return start, i - start, true
		}
	}
	if start >= 0 {
		return start, len(text) - start, true
	}
	return 0, 0, false
}

// reverseRunes returns a reversed copy of text.
func reverseRunes(text []rune) []rune {
	out := make([]rune, len(text))
	for i, r := range text {
		out[len(text)-1-i] = r
	}
	return out
}
