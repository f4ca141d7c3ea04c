package ionpath

import "fmt"

// ParseError is returned by ParsePath and ParseLiteral when the input text
// does not match the grammar. It carries the byte offset at which the
// matching alternative ran out of input, and a short name for what was
// expected there. There is no multi-error recovery: a ParseError reports
// exactly where the ordered choice of alternatives gave up.
type ParseError struct {
	Offset   int
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ionpath: parse error at offset %d: expected %s", e.Offset, e.Expected)
}
