package ionpath

import "strconv"

// ParsePath parses a complete IonPath expression. The entire input must be
// consumed; trailing text (including a dangling "/" with no valid segment
// after it, or a malformed "[...]" that predicate_list could not complete)
// is reported as a ParseError at the point parsing stalled.
func ParsePath(text string) (*Path, error) {
	p, end, ok := parsePathAt(text, 0)
	if !ok {
		return nil, &ParseError{Offset: 0, Expected: "path"}
	}
	if end != len(text) {
		return nil, &ParseError{Offset: end, Expected: "end of input"}
	}
	return &p, nil
}

// parsePathAt implements: path := segment ("/" ["/"] segment)*, with an
// optional leading "/" (optionally doubled) setting absolute/recursive on
// the first segment. It never hard-fails past this point: once the first
// segment is recognized, a trailing "/" that isn't followed by a valid
// segment simply stops the repetition, leaving it unconsumed for the
// caller (top-level EOF check, or an enclosing predicate) to deal with.
func parsePathAt(s string, pos int) (Path, int, bool) {
	p := pos
	absolute := false
	firstRecursive := false
	if p < len(s) && s[p] == '/' {
		absolute = true
		p++
		if p < len(s) && s[p] == '/' {
			firstRecursive = true
			p++
		}
	}
	seg, p2, ok := parseSegment(s, p, firstRecursive)
	if !ok {
		return Path{}, pos, false
	}
	segments := []Segment{seg}
	p = p2
	for p < len(s) && s[p] == '/' {
		q := p + 1
		recursive := false
		if q < len(s) && s[q] == '/' {
			recursive = true
			q++
		}
		seg2, q2, ok2 := parseSegment(s, q, recursive)
		if !ok2 {
			break
		}
		segments = append(segments, seg2)
		p = q2
	}
	return Path{Absolute: absolute, Segments: segments}, p, true
}

// parseSegment implements: segment := ann_clause* key predicate_list*.
func parseSegment(s string, pos int, recursive bool) (Segment, int, bool) {
	p := pos
	var annLists [][]string
	for {
		list, np, ok := tryAnnClause(s, p)
		if !ok {
			break
		}
		annLists = append(annLists, list)
		p = np
	}
	key, p2, ok := parseKey(s, p)
	if !ok {
		return Segment{}, pos, false
	}
	p = p2
	var predLists [][]Predicate
	for {
		list, np, ok2 := tryPredicateList(s, p)
		if !ok2 {
			break
		}
		predLists = append(predLists, list)
		p = np
	}
	return Segment{Recursive: recursive, AnnotationLists: annLists, Key: key, PredicateLists: predLists}, p, true
}

// tryAnnClause implements ann_clause: a singleton "sym ws() :: ws()" or a
// choice "( ws() sym (ws() "|" ws() sym)+ ws() ) ws() :: ws()"; both
// require at least the trailing "::", and tolerate whitespace around the
// "(", "|", ")" and "::" separators the way the grounding grammar does.
func tryAnnClause(s string, pos int) ([]string, int, bool) {
	if pos < len(s) && s[pos] == '(' {
		p := skipWS(s, pos+1)
		name, p2, ok := tryAnnotationSymbol(s, p)
		if !ok {
			return nil, pos, false
		}
		opts := []string{name}
		p = p2
		for {
			save := p
			ws := skipWS(s, p)
			if ws >= len(s) || s[ws] != '|' {
				p = save
				break
			}
			ws = skipWS(s, ws+1)
			name2, p3, ok2 := tryAnnotationSymbol(s, ws)
			if !ok2 {
				return nil, pos, false
			}
			opts = append(opts, name2)
			p = p3
		}
		if len(opts) < 2 {
			return nil, pos, false
		}
		p = skipWS(s, p)
		if p >= len(s) || s[p] != ')' {
			return nil, pos, false
		}
		p = skipWS(s, p+1)
		if !hasPrefixAt(s, p, "::") {
			return nil, pos, false
		}
		return opts, skipWS(s, p+2), true
	}
	name, p, ok := tryAnnotationSymbol(s, pos)
	if !ok {
		return nil, pos, false
	}
	p = skipWS(s, p)
	if !hasPrefixAt(s, p, "::") {
		return nil, pos, false
	}
	return []string{name}, skipWS(s, p+2), true
}

// parseKey implements: key := slice | symbol | string | integer.
func parseKey(s string, pos int) (Key, int, bool) {
	if k, p, ok := trySliceKey(s, pos); ok {
		return k, p, true
	}
	if lit, p, ok := tryKeyLiteral(s, pos); ok {
		switch lit.Kind {
		case LiteralSymbol:
			return NewSymbolKey(lit.Text), p, true
		case LiteralString:
			return NewStringKey(lit.Text), p, true
		case LiteralInteger:
			return NewIndexKey(lit.Int), p, true
		}
	}
	return Key{}, pos, false
}

// trySliceKey implements: slice := [int] ws() ":" ws() [int] ws() (":"
// ws() int ws())?, tolerating whitespace around each ":" separator the
// way the grounding grammar's slice_open_start/slice_closed_start/
// slice_step rules do.
func trySliceKey(s string, pos int) (Key, int, bool) {
	p := pos
	var start *int32
	if v, np, ok := scanSignedI32(s, p); ok {
		start = &v
		p = np
	}
	p = skipWS(s, p)
	if p >= len(s) || s[p] != ':' {
		return Key{}, pos, false
	}
	p = skipWS(s, p+1)
	var end *int32
	if v, np, ok := scanSignedI32(s, p); ok {
		end = &v
		p = np
	}
	p = skipWS(s, p)
	var step *int32
	if p < len(s) && s[p] == ':' {
		np := skipWS(s, p+1)
		v, np2, ok := scanSignedI32(s, np)
		if !ok {
			return Key{}, pos, false
		}
		step = &v
		p = skipWS(s, np2)
	}
	return NewSliceKey(start, end, step), p, true
}

func scanSignedI32(s string, pos int) (int32, int, bool) {
	p := pos
	neg := false
	if p < len(s) && s[p] == '-' {
		neg = true
		p++
	}
	digStart := p
	for p < len(s) && isDigit(s[p]) {
		p++
	}
	if p == digStart {
		return 0, pos, false
	}
	n, err := strconv.ParseInt(s[digStart:p], 10, 32)
	if err != nil {
		return 0, pos, false
	}
	v := int32(n)
	if neg {
		v = -v
	}
	return v, p, true
}

// tryPredicateList implements:
// predicate_list := "[" predicate (("or"|"OR"|"oR"|"Or") predicate)* "]".
func tryPredicateList(s string, pos int) ([]Predicate, int, bool) {
	if pos >= len(s) || s[pos] != '[' {
		return nil, pos, false
	}
	p := skipWS(s, pos+1)
	pred, p2, ok := parsePredicate(s, p)
	if !ok {
		return nil, pos, false
	}
	preds := []Predicate{pred}
	p = p2
	for {
		save := p
		ws := skipWS(s, p)
		_, np, ok2 := tryOrKeyword(s, ws)
		if !ok2 {
			p = save
			break
		}
		np = skipWS(s, np)
		pr, p3, ok3 := parsePredicate(s, np)
		if !ok3 {
			return nil, pos, false
		}
		preds = append(preds, pr)
		p = p3
	}
	p = skipWS(s, p)
	if p >= len(s) || s[p] != ']' {
		return nil, pos, false
	}
	return preds, p + 1, true
}

func tryOrKeyword(s string, pos int) (string, int, bool) {
	for _, kw := range []string{"or", "OR", "oR", "Or"} {
		if hasPrefixAt(s, pos, kw) {
			return kw, pos + len(kw), true
		}
	}
	return "", pos, false
}

// parsePredicate implements: predicate := [path] cmp literal | path.
func parsePredicate(s string, pos int) (Predicate, int, bool) {
	var comparePath *Path
	p := pos
	if pth, np, ok := parsePathAt(s, p); ok {
		comparePath = &pth
		p = np
	}
	cmpStart := skipWS(s, p)
	if op, np, ok := tryCmpOp(s, cmpStart); ok {
		np = skipWS(s, np)
		if lit, np2, ok2 := parseLiteralAt(s, np); ok2 {
			return NewComparePredicate(comparePath, op, lit), np2, true
		}
	}
	if pth, np, ok := parsePathAt(s, pos); ok {
		return NewSubpathPredicate(&pth), np, true
	}
	return Predicate{}, pos, false
}

// tryCmpOp implements: cmp := "==" | "=" | "!=" | ">=" | "<=" | ">" | "<",
// in that order so the two-character operators are tried before the
// single-character prefixes they contain.
func tryCmpOp(s string, pos int) (CompareOp, int, bool) {
	ops := []struct {
		tok string
		op  CompareOp
	}{
		{"==", OpEqual}, {"=", OpEqual}, {"!=", OpNotEqual},
		{">=", OpGreaterOrEqual}, {"<=", OpLessOrEqual},
		{">", OpGreaterThan}, {"<", OpLessThan},
	}
	for _, o := range ops {
		if hasPrefixAt(s, pos, o.tok) {
			return o.op, pos + len(o.tok), true
		}
	}
	return 0, pos, false
}
