package ionpath

import (
	"encoding/base64"
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/amazon-ion/ion-go/ion"
)

// ParseLiteral parses a single embedded Ion literal, as used for predicate
// comparison values. The entire input must be consumed by one literal; any
// trailing text is a ParseError, matching the ordered-choice grammar's
// all-or-nothing rule evaluation (no alternative is retried once another
// has locally matched, even if that dooms the overall parse).
func ParseLiteral(text string) (Literal, error) {
	lit, end, ok := parseLiteralAt(text, 0)
	if !ok {
		return Literal{}, &ParseError{Offset: 0, Expected: "literal"}
	}
	if end != len(text) {
		return Literal{}, &ParseError{Offset: end, Expected: "end of input"}
	}
	return lit, nil
}

// parseLiteralAt tries, in order, the alternatives of the literal rule:
// timestamp, string, null, float, decimal, integer, boolean, symbol, clob,
// blob. The first alternative whose own local grammar matches wins; later
// alternatives are never attempted once one succeeds.
func parseLiteralAt(s string, pos int) (Literal, int, bool) {
	if lit, end, ok := tryTimestamp(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := tryString(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := tryNull(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := tryFloat(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := tryDecimal(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := tryInteger(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := tryBoolean(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := trySymbol(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := tryClob(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := tryBlob(s, pos); ok {
		return lit, end, true
	}
	return Literal{}, pos, false
}

// tryKeyLiteral implements key_literal: symbol, then string, then integer.
// This is a different order and a strict subset of the general literal
// alternation above, used only when parsing a path Key.
func tryKeyLiteral(s string, pos int) (Literal, int, bool) {
	if lit, end, ok := trySymbol(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := tryString(s, pos); ok {
		return lit, end, true
	}
	if lit, end, ok := tryInteger(s, pos); ok {
		return lit, end, true
	}
	return Literal{}, pos, false
}

// tryAnnotationSymbol implements the annotation clause's symbol/string
// alternation.
func tryAnnotationSymbol(s string, pos int) (string, int, bool) {
	if lit, end, ok := trySymbol(s, pos); ok {
		return lit.Text, end, true
	}
	if lit, end, ok := tryString(s, pos); ok {
		return lit.Text, end, true
	}
	return "", pos, false
}

// ---- null ----

var nullTypeNames = []struct {
	name string
	ty   ion.Type
}{
	{"null", ion.NullType},
	{"bool", ion.BoolType},
	{"int", ion.IntType},
	{"float", ion.FloatType},
	{"decimal", ion.DecimalType},
	{"timestamp", ion.TimestampType},
	{"string", ion.StringType},
	{"symbol", ion.SymbolType},
	{"blob", ion.BlobType},
	{"clob", ion.ClobType},
	{"struct", ion.StructType},
	{"list", ion.ListType},
	{"sexp", ion.SexpType},
}

func tryNull(s string, pos int) (Literal, int, bool) {
	if !hasPrefixAt(s, pos, "null") {
		return Literal{}, pos, false
	}
	p := pos + 4
	if p < len(s) && s[p] == '.' {
		q := p + 1
		for _, n := range nullTypeNames {
			if hasPrefixAt(s, q, n.name) {
				return Literal{Kind: LiteralNull, NullType: n.ty}, q + len(n.name), true
			}
		}
	}
	return Literal{Kind: LiteralNull, NullType: ion.NullType}, p, true
}

// ---- boolean ----

func tryBoolean(s string, pos int) (Literal, int, bool) {
	if hasPrefixAt(s, pos, "true") {
		return Literal{Kind: LiteralBoolean, Bool: true}, pos + 4, true
	}
	if hasPrefixAt(s, pos, "false") {
		return Literal{Kind: LiteralBoolean, Bool: false}, pos + 5, true
	}
	return Literal{}, pos, false
}

// ---- integer ----

func tryInteger(s string, pos int) (Literal, int, bool) {
	if lit, end, ok := tryRadixInteger(s, pos, "0x", "0X", isHexDigit, 16); ok {
		return lit, end, true
	}
	if lit, end, ok := tryRadixInteger(s, pos, "0b", "0B", isBinDigit, 2); ok {
		return lit, end, true
	}
	p := pos
	neg := false
	if p < len(s) && s[p] == '-' {
		neg = true
		p++
	}
	end, ok := scanDecimalUnsignedInt(s, p)
	if !ok {
		return Literal{}, pos, false
	}
	raw := strings.ReplaceAll(s[p:end], "_", "")
	n, ok2 := new(big.Int).SetString(raw, 10)
	if !ok2 {
		return Literal{}, pos, false
	}
	if neg {
		n.Neg(n)
	}
	return Literal{Kind: LiteralInteger, Int: n}, end, true
}

func tryRadixInteger(s string, pos int, lower, upper string, digitFn func(byte) bool, base int) (Literal, int, bool) {
	p := pos
	neg := false
	if p < len(s) && s[p] == '-' {
		neg = true
		p++
	}
	if !hasPrefixAt(s, p, lower) && !hasPrefixAt(s, p, upper) {
		return Literal{}, pos, false
	}
	p += 2
	end, ok := scanDigitRun(s, p, digitFn)
	if !ok {
		return Literal{}, pos, false
	}
	raw := strings.ReplaceAll(s[p:end], "_", "")
	n, ok2 := new(big.Int).SetString(raw, base)
	if !ok2 {
		return Literal{}, pos, false
	}
	if neg {
		n.Neg(n)
	}
	return Literal{Kind: LiteralInteger, Int: n}, end, true
}

// ---- float ----

func tryFloat(s string, pos int) (Literal, int, bool) {
	if lit, end, ok := tryFloatNumeric(s, pos); ok {
		return lit, end, true
	}
	p := pos
	neg := false
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		neg = s[p] == '-'
		p++
	}
	if hasPrefixAt(s, p, "inf") {
		f := math.Inf(1)
		if neg {
			f = math.Inf(-1)
		}
		return Literal{Kind: LiteralFloat, Float: f}, p + 3, true
	}
	if hasPrefixAt(s, pos, "nan") {
		return Literal{Kind: LiteralFloat, Float: math.NaN()}, pos + 3, true
	}
	if hasPrefixAt(s, pos, "NaN") {
		return Literal{Kind: LiteralFloat, Float: math.NaN()}, pos + 3, true
	}
	return Literal{}, pos, false
}

func tryFloatNumeric(s string, pos int) (Literal, int, bool) {
	p := pos
	if p < len(s) && s[p] == '-' {
		p++
	}
	ip, ok := scanDecimalUnsignedInt(s, p)
	if !ok {
		return Literal{}, pos, false
	}
	p = ip
	if p < len(s) && s[p] == '.' {
		p2 := p + 1
		if p2 < len(s) && isDigit(s[p2]) {
			p2, _ = scanDigitRun(s, p2, isDigit)
		}
		p = p2
	}
	if p >= len(s) || (s[p] != 'e' && s[p] != 'E') {
		return Literal{}, pos, false
	}
	p2 := p + 1
	if p2 < len(s) && (s[p2] == '+' || s[p2] == '-') {
		p2++
	}
	digStart := p2
	for p2 < len(s) && isDigit(s[p2]) {
		p2++
	}
	if p2 == digStart {
		return Literal{}, pos, false
	}
	p = p2
	raw := s[pos:p]
	cleaned := strings.ReplaceAll(raw, "_", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !(errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)) {
			return Literal{}, pos, false
		}
	}
	return Literal{Kind: LiteralFloat, Float: f}, p, true
}

// ---- decimal ----

func tryDecimal(s string, pos int) (Literal, int, bool) {
	p := pos
	if p < len(s) && s[p] == '-' {
		p++
	}
	ip, ok := scanDecimalUnsignedInt(s, p)
	if !ok {
		return Literal{}, pos, false
	}
	p = ip
	hasFrac := false
	if p < len(s) && s[p] == '.' {
		hasFrac = true
		p++
		if p < len(s) && isDigit(s[p]) {
			p, _ = scanDigitRun(s, p, isDigit)
		}
	}
	hasExp := false
	if p < len(s) && (s[p] == 'd' || s[p] == 'D') {
		p2 := p + 1
		if p2 < len(s) && (s[p2] == '+' || s[p2] == '-') {
			p2++
		}
		digStart := p2
		for p2 < len(s) && isDigit(s[p2]) {
			p2++
		}
		if p2 > digStart {
			hasExp = true
			p = p2
		}
	}
	if !hasFrac && !hasExp {
		return Literal{}, pos, false
	}
	raw := s[pos:p]
	cleaned := strings.ReplaceAll(raw, "_", "")
	dec, err := ion.ParseDecimal(cleaned)
	if err != nil {
		return Literal{}, pos, false
	}
	return Literal{Kind: LiteralDecimal, Decimal: dec}, p, true
}

// ---- strings ----

func tryString(s string, pos int) (Literal, int, bool) {
	if text, end, ok := scanTripleQuoted(s, pos, isAllowedRawStringLong, true); ok {
		return Literal{Kind: LiteralString, Text: unescape(text)}, end, true
	}
	if text, end, ok := scanShortQuoted(s, pos, '"', isAllowedRawStringShort, true); ok {
		return Literal{Kind: LiteralString, Text: unescape(text)}, end, true
	}
	return Literal{}, pos, false
}

func isAllowedRawStringShort(r rune) bool { return isAllowedRaw(r, '"') }
func isAllowedRawStringLong(r rune) bool {
	if r == '\\' {
		return false
	}
	if r == '\t' || r == 0x0B || r == 0x0C || r == '\r' || r == '\n' {
		return true
	}
	return r >= 0x20 && r <= 0xFFFF
}

func isAllowedRaw(r rune, quote rune) bool {
	if r == quote || r == '\\' {
		return false
	}
	if r < 0x20 {
		return r == '\t' || r == 0x0B || r == 0x0C
	}
	return r <= 0xFFFF
}

// ---- symbols ----

func trySymbol(s string, pos int) (Literal, int, bool) {
	if text, end, ok := scanShortQuoted(s, pos, '\'', isAllowedRawSymbol, true); ok {
		return Literal{Kind: LiteralSymbol, Text: unescape(text)}, end, true
	}
	if pos < len(s) && isIdentStart(s[pos]) {
		p := pos + 1
		for p < len(s) && isIdentPart(s[p]) {
			p++
		}
		return Literal{Kind: LiteralSymbol, Text: s[pos:p]}, p, true
	}
	return Literal{}, pos, false
}

func isAllowedRawSymbol(r rune) bool { return isAllowedRaw(r, '\'') }

// ---- blob ----

func tryBlob(s string, pos int) (Literal, int, bool) {
	p := skipWS(s, pos)
	if !hasPrefixAt(s, p, "{{") {
		return Literal{}, pos, false
	}
	p += 2
	end := strings.Index(s[p:], "}}")
	if end < 0 {
		return Literal{}, pos, false
	}
	body := s[p : p+end]
	p += end + 2
	cleaned := stripWhitespace(body)
	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return Literal{}, pos, false
	}
	return Literal{Kind: LiteralBlob, Bytes: decoded}, p, true
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !isWS(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// ---- clob ----

func tryClob(s string, pos int) (Literal, int, bool) {
	if !hasPrefixAt(s, pos, "{{") {
		return Literal{}, pos, false
	}
	p := skipWS(s, pos+2)
	if p < len(s) && s[p] == '"' {
		content, p2, ok := scanShortQuoted(s, p, '"', isAllowedRawClobShort, false)
		if !ok {
			return Literal{}, pos, false
		}
		p2 = skipWS(s, p2)
		if !hasPrefixAt(s, p2, "}}") {
			return Literal{}, pos, false
		}
		return Literal{Kind: LiteralClob, Bytes: clobBytes(unescape(content))}, p2 + 2, true
	}
	if hasPrefixAt(s, p, "'''") {
		content, p2, ok := scanTripleQuoted(s, p, isAllowedRawClobLong, false)
		if !ok {
			return Literal{}, pos, false
		}
		p2 = skipWS(s, p2)
		if !hasPrefixAt(s, p2, "}}") {
			return Literal{}, pos, false
		}
		return Literal{Kind: LiteralClob, Bytes: clobBytes(unescape(content))}, p2 + 2, true
	}
	return Literal{}, pos, false
}

func isAllowedRawClobShort(r rune) bool {
	if r == '"' || r == '\\' {
		return false
	}
	if r == '\t' {
		return true
	}
	return r >= 0x20 && r <= 0x7E
}

func isAllowedRawClobLong(r rune) bool {
	if r == '\\' {
		return false
	}
	if r == '\t' || r == '\r' || r == '\n' {
		return true
	}
	return r >= 0x20 && r <= 0x7E
}

// ---- shared quoted-text scanners ----

// scanShortQuoted scans a single `quote`-delimited run of text, unescaping
// nothing itself (that is unescape's job) but validating every raw
// character and every escape sequence as it goes.
func scanShortQuoted(s string, pos int, quote byte, isAllowedRawFn func(rune) bool, allowUnicode bool) (string, int, bool) {
	if pos >= len(s) || s[pos] != quote {
		return "", pos, false
	}
	p := pos + 1
	var b strings.Builder
	for {
		if p >= len(s) {
			return "", pos, false
		}
		if s[p] == quote {
			p++
			break
		}
		if s[p] == '\\' {
			n, ok := matchEscape(s, p, allowUnicode)
			if !ok {
				return "", pos, false
			}
			b.WriteString(s[p : p+n])
			p += n
			continue
		}
		r, size, ok := decodeRune(s, p)
		if !ok || !isAllowedRawFn(r) {
			return "", pos, false
		}
		b.WriteString(s[p : p+size])
		p += size
	}
	return b.String(), p, true
}

// scanTripleQuoted scans one or more '''-delimited chunks separated only by
// whitespace, concatenating their contents (the Ion "long string" form).
func scanTripleQuoted(s string, pos int, isAllowedRawFn func(rune) bool, allowUnicode bool) (string, int, bool) {
	p := pos
	var b strings.Builder
	any := false
	for {
		p2 := skipWS(s, p)
		if !hasPrefixAt(s, p2, "'''") {
			break
		}
		p3 := p2 + 3
		for {
			if hasPrefixAt(s, p3, "'''") {
				p3 += 3
				break
			}
			if p3 >= len(s) {
				return "", pos, false
			}
			if s[p3] == '\\' {
				n, ok := matchEscape(s, p3, allowUnicode)
				if !ok {
					return "", pos, false
				}
				b.WriteString(s[p3 : p3+n])
				p3 += n
				continue
			}
			r, size, ok := decodeRune(s, p3)
			if !ok || !isAllowedRawFn(r) {
				return "", pos, false
			}
			b.WriteString(s[p3 : p3+size])
			p3 += size
		}
		p = p3
		any = true
	}
	if !any {
		return "", pos, false
	}
	p = skipWS(s, p)
	return b.String(), p, true
}

// ---- timestamp ----

func tryTimestamp(s string, pos int) (Literal, int, bool) {
	end, ok := scanTimestampSpan(s, pos)
	if !ok {
		return Literal{}, pos, false
	}
	ts, err := ion.ParseTimestamp(s[pos:end])
	if err != nil {
		return Literal{}, pos, false
	}
	return Literal{Kind: LiteralTimestamp, Timestamp: ts}, end, true
}

func scanYear(s string, pos int) (int, bool) {
	if pos+4 > len(s) {
		return pos, false
	}
	for i := 0; i < 4; i++ {
		if !isDigit(s[pos+i]) {
			return pos, false
		}
	}
	if s[pos:pos+4] == "0000" {
		return pos, false
	}
	return pos + 4, true
}

func scanTwoDigits(s string, pos int, lo, hi int) (int, bool) {
	if pos+2 > len(s) || !isDigit(s[pos]) || !isDigit(s[pos+1]) {
		return pos, false
	}
	v := int(s[pos]-'0')*10 + int(s[pos+1]-'0')
	if v < lo || v > hi {
		return pos, false
	}
	return pos + 2, true
}

func scanSecond(s string, pos int) (int, bool) {
	p, ok := scanTwoDigits(s, pos, 0, 59)
	if !ok {
		return pos, false
	}
	if p < len(s) && s[p] == '.' {
		p2 := p + 1
		start := p2
		for p2 < len(s) && isDigit(s[p2]) {
			p2++
		}
		if p2 == start {
			return pos, false
		}
		p = p2
	}
	return p, true
}

func scanOffset(s string, pos int) (int, bool) {
	if pos < len(s) && s[pos] == 'Z' {
		return pos + 1, true
	}
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		p := pos + 1
		p, ok := scanTwoDigits(s, p, 0, 23)
		if !ok || p >= len(s) || s[p] != ':' {
			return pos, false
		}
		p, ok = scanTwoDigits(s, p+1, 0, 59)
		if !ok {
			return pos, false
		}
		return p, true
	}
	return pos, false
}

func scanTime(s string, pos int) (int, bool) {
	p, ok := scanTwoDigits(s, pos, 0, 23)
	if !ok || p >= len(s) || s[p] != ':' {
		return pos, false
	}
	p, ok = scanTwoDigits(s, p+1, 0, 59)
	if !ok {
		return pos, false
	}
	if p < len(s) && s[p] == ':' {
		p2, ok2 := scanSecond(s, p+1)
		if !ok2 {
			return pos, false
		}
		p = p2
	}
	return scanOffset(s, p)
}

func scanTimestampSpan(s string, pos int) (int, bool) {
	p, ok := scanYear(s, pos)
	if !ok {
		return pos, false
	}
	if p < len(s) && s[p] == 'T' {
		return p + 1, true
	}
	if p >= len(s) || s[p] != '-' {
		return pos, false
	}
	p++
	p, ok = scanTwoDigits(s, p, 1, 12)
	if !ok {
		return pos, false
	}
	if p < len(s) && s[p] == 'T' {
		return p + 1, true
	}
	if p >= len(s) || s[p] != '-' {
		return pos, false
	}
	p++
	p, ok = scanTwoDigits(s, p, 1, 31)
	if !ok {
		return pos, false
	}
	if p < len(s) && s[p] == 'T' {
		p2 := p + 1
		if end, ok2 := scanTime(s, p2); ok2 {
			return end, true
		}
		return p2, true
	}
	return p, true
}
