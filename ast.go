package ionpath

// CompareOp is a predicate comparison operator. OpEqual also serves as the
// target of the "==" alias recognized by the parser.
type CompareOp uint8

const (
	OpEqual CompareOp = iota
	OpNotEqual
	OpLessThan
	OpGreaterThan
	OpLessOrEqual
	OpGreaterOrEqual
)

func (op CompareOp) String() string {
	switch op {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpLessThan:
		return "<"
	case OpGreaterThan:
		return ">"
	case OpLessOrEqual:
		return "<="
	case OpGreaterOrEqual:
		return ">="
	default:
		return "<unknown op>"
	}
}

// Predicate is one clause of a predicate list: either a bare subpath
// existence check, or a typed comparison, optionally against the result
// of a subpath rather than the candidate element itself.
type Predicate struct {
	// Subpath holds the existence-check path when this Predicate is a
	// bare subpath (no comparison). Nil for a Compare predicate.
	Subpath *Path

	// ComparePath, Op, and Value hold a Compare predicate. ComparePath is
	// nil when the comparison targets the candidate element itself rather
	// than a subquery of it. Op is the zero value and unused when this is
	// a Subpath predicate.
	ComparePath *Path
	Op          CompareOp
	Value       Literal
	isCompare   bool
}

// NewSubpathPredicate constructs an existence-check Predicate.
func NewSubpathPredicate(p *Path) Predicate { return Predicate{Subpath: p} }

// NewComparePredicate constructs a comparison Predicate. path may be nil
// to compare the candidate element directly.
func NewComparePredicate(path *Path, op CompareOp, value Literal) Predicate {
	return Predicate{ComparePath: path, Op: op, Value: value, isCompare: true}
}

// IsCompare reports whether this Predicate is a Compare predicate (as
// opposed to a bare Subpath existence check).
func (p Predicate) IsCompare() bool { return p.isCompare }

// Segment is one "/"-delimited step of a Path. At least one Key selector
// is always present; AnnotationLists and PredicateLists may each be empty.
//
// Multiple AnnotationLists are ANDed together; within one list, any
// option matching is sufficient (OR). Multiple PredicateLists are ANDed
// together; within one list, any predicate holding is sufficient (OR).
type Segment struct {
	Recursive       bool
	AnnotationLists [][]string
	Key             Key
	PredicateLists  [][]Predicate
}

// Path is a compiled IonPath expression: an ordered sequence of Segments,
// plus whether the expression was anchored with a leading "/". A Path is
// immutable once returned by ParsePath and safe to share across goroutines
// and reuse against many root elements.
type Path struct {
	Absolute bool
	Segments []Segment
}
