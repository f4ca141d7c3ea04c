package ionpath

import (
	"strconv"
	"strings"
)

// matchEscape recognizes one backslash escape sequence starting at s[pos]
// (s[pos] must be '\\') and returns its raw byte length, or ok=false if
// nothing at pos forms a valid escape. allowUnicode gates \u and \U, which
// clob text does not accept.
func matchEscape(s string, pos int, allowUnicode bool) (int, bool) {
	if pos >= len(s) || s[pos] != '\\' || pos+1 >= len(s) {
		return 0, false
	}
	switch s[pos+1] {
	case '0', 'a', 'b', 't', 'n', 'f', 'r', 'v', '"', '\'', '?', '/', '\\', '\r', '\n':
		return 2, true
	case 'x':
		if pos+4 <= len(s) && isHexDigit(s[pos+2]) && isHexDigit(s[pos+3]) {
			return 4, true
		}
		return 0, false
	case 'u':
		if !allowUnicode {
			return 0, false
		}
		if pos+6 <= len(s) && allHex(s[pos+2:pos+6]) {
			return 6, true
		}
		return 0, false
	case 'U':
		if !allowUnicode {
			return 0, false
		}
		if pos+11 <= len(s) && s[pos+2:pos+5] == "000" && allHex(s[pos+5:pos+11]) {
			return 11, true
		}
		if pos+10 <= len(s) && s[pos+2:pos+6] == "0010" && allHex(s[pos+6:pos+10]) {
			return 10, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func allHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// unescape resolves the escape sequences recognized by matchEscape within
// raw (text already validated to contain only allowed raw characters and
// well-formed escapes). Line-continuation escapes (\<CR> and \<LF>) are
// dropped entirely rather than producing a newline.
func unescape(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	i := 0
	for i < len(raw) {
		if raw[i] != '\\' {
			b.WriteByte(raw[i])
			i++
			continue
		}
		n, ok := matchEscape(raw, i, true)
		if !ok {
			// Not a recognized escape: caller already validated the text,
			// so this should not happen; emit verbatim to stay total.
			b.WriteByte(raw[i])
			i++
			continue
		}
		switch raw[i+1] {
		case '0':
			b.WriteByte(0)
		case 'a':
			b.WriteByte(7)
		case 'b':
			b.WriteByte(8)
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte(0x0C)
		case 'r':
			b.WriteByte('\r')
		case 'v':
			b.WriteByte(0x0B)
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case '?':
			b.WriteByte('?')
		case '/':
			b.WriteByte('/')
		case '\\':
			b.WriteByte('\\')
		case '\r', '\n':
			// line continuation: contributes nothing
		case 'x':
			v, _ := strconv.ParseInt(raw[i+2:i+4], 16, 32)
			b.WriteRune(rune(v))
		case 'u':
			v, _ := strconv.ParseInt(raw[i+2:i+6], 16, 32)
			b.WriteRune(rune(v))
		case 'U':
			v, _ := strconv.ParseInt(raw[i+2:i+n], 16, 32)
			b.WriteRune(rune(v))
		}
		i += n
	}
	return b.String()
}

// clobBytes truncates each rune of text to its low 8 bits, mirroring the
// UTF-16-low-byte truncation clob text uses to become a byte string. Clob
// source text is constrained to runes below 0x100 by its own grammar, so
// this is equivalent to a direct byte cast.
func clobBytes(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		out = append(out, byte(r&0xFF))
	}
	return out
}
