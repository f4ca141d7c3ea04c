package ionpath

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/amazon-ion/ion-go/ion"
)

// literalFromElement converts an Element to the Literal it denotes, using
// the same tag mapping as the literal grammar. It is the single coercion
// point predicate evaluation uses to promote an Element for comparison
// against a parsed Literal; see Compare.
func literalFromElement(e Element) (Literal, bool) {
	if e.IsNull() {
		return NewNullLiteral(e.IonType()), true
	}
	switch e.IonType() {
	case ion.BoolType:
		b, ok := e.AsBool()
		return NewBooleanLiteral(b), ok
	case ion.IntType:
		i, ok := e.AsInt()
		return NewIntegerLiteral(i), ok
	case ion.FloatType:
		f, ok := e.AsFloat()
		return NewFloatLiteral(f), ok
	case ion.DecimalType:
		d, ok := e.AsDecimal()
		return NewDecimalLiteral(d), ok
	case ion.StringType:
		s, ok := e.AsString()
		return NewStringLiteral(s), ok
	case ion.SymbolType:
		s, ok := e.AsSymbol()
		return NewSymbolLiteral(s), ok
	case ion.BlobType:
		b, ok := e.AsBlob()
		return NewBlobLiteral(b), ok
	case ion.ClobType:
		b, ok := e.AsClob()
		return NewClobLiteral(b), ok
	case ion.TimestampType:
		ts, ok := e.AsTimestamp()
		return NewTimestampLiteral(ts), ok
	default:
		return Literal{}, false
	}
}

func isNumericKind(k LiteralKind) bool {
	switch k {
	case LiteralBoolean, LiteralInteger, LiteralFloat, LiteralDecimal:
		return true
	default:
		return false
	}
}

// Compare evaluates "a op b" under the comparison semantics of §4.2.5. Any
// combination the semantics leave undefined (non-finite float operand,
// incompatible kinds, any ordering of nulls) yields false for every
// operator, including OpEqual and OpNotEqual — undefined is not the same
// as "not equal".
func Compare(a, b Literal, op CompareOp) bool {
	if a.Kind == LiteralTimestamp && b.Kind == LiteralTimestamp {
		return compareTimestampOp(a.Timestamp, b.Timestamp, op)
	}
	c, ok := compareLiterals(a, b)
	if !ok {
		return false
	}
	if (a.Kind == LiteralNull || b.Kind == LiteralNull) && op != OpEqual && op != OpNotEqual {
		return false
	}
	switch op {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpLessThan:
		return c < 0
	case OpGreaterThan:
		return c > 0
	case OpLessOrEqual:
		return c <= 0
	case OpGreaterOrEqual:
		return c >= 0
	default:
		return false
	}
}

// compareLiterals returns (-1|0|1, true) when a and b are ordered under
// §4.2.5, or (_, false) when the comparison is undefined.
func compareLiterals(a, b Literal) (int, bool) {
	if a.Kind == LiteralNull || b.Kind == LiteralNull {
		return compareNull(a, b)
	}
	if isNumericKind(a.Kind) && isNumericKind(b.Kind) {
		return compareNumeric(a, b)
	}
	switch {
	case a.Kind == LiteralString && b.Kind == LiteralString:
		return strings.Compare(a.Text, b.Text), true
	case a.Kind == LiteralSymbol && b.Kind == LiteralSymbol:
		return strings.Compare(a.Text, b.Text), true
	case (a.Kind == LiteralBlob || a.Kind == LiteralClob) && (b.Kind == LiteralBlob || b.Kind == LiteralClob):
		return bytes.Compare(a.Bytes, b.Bytes), true
	default:
		return 0, false
	}
}

// compareNull implements the special Null equality rule: equal iff the
// other side is also null and either the tags match or either tag is the
// untyped null; ordering is otherwise undefined.
func compareNull(a, b Literal) (int, bool) {
	if a.Kind != LiteralNull || b.Kind != LiteralNull {
		return 0, false
	}
	if a.NullType == b.NullType || a.NullType == ion.NullType || b.NullType == ion.NullType {
		return 0, true
	}
	return 0, false
}

// compareNumeric promotes Boolean/Integer/Float/Decimal operands to
// arbitrary-precision decimal and compares. Non-finite floats (±inf, NaN)
// are undefined.
func compareNumeric(a, b Literal) (int, bool) {
	da, ok := literalToDecimal(a)
	if !ok {
		return 0, false
	}
	db, ok := literalToDecimal(b)
	if !ok {
		return 0, false
	}
	return da.Cmp(db), true
}

func literalToDecimal(l Literal) (*ion.Decimal, bool) {
	switch l.Kind {
	case LiteralBoolean:
		if l.Bool {
			return ion.NewDecimalInt(1), true
		}
		return ion.NewDecimalInt(0), true
	case LiteralInteger:
		return ion.NewDecimal(l.Int, 0, false), true
	case LiteralDecimal:
		return l.Decimal, true
	case LiteralFloat:
		if math.IsNaN(l.Float) || math.IsInf(l.Float, 0) {
			return nil, false
		}
		text := strconv.FormatFloat(l.Float, 'f', -1, 64)
		d, err := ion.ParseDecimal(text)
		if err != nil {
			return nil, false
		}
		return d, true
	default:
		return nil, false
	}
}

// compareTimestampOp orders two Timestamps by point in time after offset
// normalization, under the operator-dependent precision tie-break of
// §4.2.5: a less-precise Timestamp denotes every instant in its unit of
// precision, so it is treated as the earliest of those instants for "<"
// and "<=" and as the latest for ">" and ">=". "<" and "<=" compare the
// earliest instants of both operands, ">" and ">=" compare their latest
// instants, so for a pair of differing precision both "a < b" and
// "a > b" can hold at once — the ordering is intentionally not a strict
// total order. Equality requires both the instant and the precision to
// match.
func compareTimestampOp(a, b ion.Timestamp, op CompareOp) bool {
	switch op {
	case OpEqual:
		return a.GetDateTime().Equal(b.GetDateTime()) && a.GetPrecision() == b.GetPrecision()
	case OpNotEqual:
		return !(a.GetDateTime().Equal(b.GetDateTime()) && a.GetPrecision() == b.GetPrecision())
	case OpLessThan:
		return earliestInstant(a).Before(earliestInstant(b))
	case OpLessOrEqual:
		ea, eb := earliestInstant(a), earliestInstant(b)
		return ea.Before(eb) || ea.Equal(eb)
	case OpGreaterThan:
		return latestInstant(a).After(latestInstant(b))
	case OpGreaterOrEqual:
		la, lb := latestInstant(a), latestInstant(b)
		return la.After(lb) || la.Equal(lb)
	default:
		return false
	}
}

// earliestInstant is the earliest instant a Timestamp's precision is
// consistent with: Ion anchors a less-precise Timestamp at the start of
// its unit, so this is simply its normalized instant.
func earliestInstant(ts ion.Timestamp) time.Time {
	return ts.GetDateTime()
}

// latestInstant is the latest instant a Timestamp's precision is
// consistent with: one nanosecond before the start of the following
// unit, or the exact instant itself when the precision is already to
// the nanosecond.
func latestInstant(ts ion.Timestamp) time.Time {
	start := ts.GetDateTime()
	switch ts.GetPrecision() {
	case ion.TimestampPrecisionYear:
		return start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	case ion.TimestampPrecisionMonth:
		return start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	case ion.TimestampPrecisionDay:
		return start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	case ion.TimestampPrecisionMinute:
		return start.Add(time.Minute).Add(-time.Nanosecond)
	case ion.TimestampPrecisionSecond:
		return start.Add(time.Second).Add(-time.Nanosecond)
	default:
		return start
	}
}
