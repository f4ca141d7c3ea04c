package ionpath

import "unicode/utf8"

// Low-level character classification and scanning helpers shared by
// literalparser.go and pathparser.go. The parser operates directly on the
// input string by byte offset rather than through a buffered rune reader,
// since §5 mandates parsing fully in-memory with no streaming concern.

func isWS(b byte) bool {
	switch b {
	case ' ', '\t', 0x0B, 0x0C, '\r', '\n':
		return true
	default:
		return false
	}
}

func skipWS(s string, pos int) int {
	for pos < len(s) && isWS(s[pos]) {
		pos++
	}
	return pos
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isBinDigit(b byte) bool { return b == '0' || b == '1' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentStart(b byte) bool {
	return b == '*' || b == '$' || b == '_' || isAlpha(b)
}

func isIdentPart(b byte) bool {
	return b == '$' || b == '_' || isAlpha(b) || isDigit(b)
}

// scanDigitRun consumes a maximal run of isDigitFn bytes starting at pos,
// then repeatedly consumes a single optional underscore followed by a
// maximal run of digits, stopping as soon as an underscore isn't
// immediately followed by a digit. It requires at least one leading digit.
func scanDigitRun(s string, pos int, isDigitFn func(byte) bool) (int, bool) {
	if pos >= len(s) || !isDigitFn(s[pos]) {
		return pos, false
	}
	for pos < len(s) && isDigitFn(s[pos]) {
		pos++
	}
	for pos < len(s) && s[pos] == '_' && pos+1 < len(s) && isDigitFn(s[pos+1]) {
		pos += 2
		for pos < len(s) && isDigitFn(s[pos]) {
			pos++
		}
	}
	return pos, true
}

// scanDecimalUnsignedInt implements decimal_unsigned_int: "0" alone, or a
// nonzero leading digit followed by scanDigitRun's underscore-tolerant run.
func scanDecimalUnsignedInt(s string, pos int) (int, bool) {
	if pos < len(s) && s[pos] == '0' {
		return pos + 1, true
	}
	if pos >= len(s) || s[pos] < '1' || s[pos] > '9' {
		return pos, false
	}
	return scanDigitRun(s, pos, isDigit)
}

func hasPrefixAt(s string, pos int, prefix string) bool {
	return pos+len(prefix) <= len(s) && s[pos:pos+len(prefix)] == prefix
}

// decodeRune decodes the rune at pos, reporting ok=false on invalid UTF-8.
func decodeRune(s string, pos int) (rune, int, bool) {
	r, size := utf8.DecodeRuneInString(s[pos:])
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, false
	}
	return r, size, true
}
