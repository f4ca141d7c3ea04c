package ionpath

import (
	"math"
	"math/big"
	"testing"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScalar is a minimal Element over one scalar value, used only to
// exercise literalFromElement without pulling in package iondom.
type fakeScalar struct {
	typ    ion.Type
	isNull bool
	ann    []string

	b   bool
	i   *big.Int
	f   float64
	d   *ion.Decimal
	txt string
	ts  ion.Timestamp
	by  []byte
}

func (e *fakeScalar) IsNull() bool          { return e.isNull }
func (e *fakeScalar) IonType() ion.Type     { return e.typ }
func (e *fakeScalar) Annotations() []string { return e.ann }

func (e *fakeScalar) AsBool() (bool, bool)                { return e.b, e.typ == ion.BoolType && !e.isNull }
func (e *fakeScalar) AsInt() (*big.Int, bool)             { return e.i, e.typ == ion.IntType && !e.isNull }
func (e *fakeScalar) AsFloat() (float64, bool)            { return e.f, e.typ == ion.FloatType && !e.isNull }
func (e *fakeScalar) AsDecimal() (*ion.Decimal, bool)     { return e.d, e.typ == ion.DecimalType && !e.isNull }
func (e *fakeScalar) AsTimestamp() (ion.Timestamp, bool)  { return e.ts, e.typ == ion.TimestampType && !e.isNull }
func (e *fakeScalar) AsSymbol() (string, bool)            { return e.txt, e.typ == ion.SymbolType && !e.isNull }
func (e *fakeScalar) AsString() (string, bool)            { return e.txt, e.typ == ion.StringType && !e.isNull }
func (e *fakeScalar) AsBlob() ([]byte, bool)              { return e.by, e.typ == ion.BlobType && !e.isNull }
func (e *fakeScalar) AsClob() ([]byte, bool)              { return e.by, e.typ == ion.ClobType && !e.isNull }
func (e *fakeScalar) AsSequence() (Sequence, bool)        { return nil, false }
func (e *fakeScalar) AsStruct() (Struct, bool)            { return nil, false }

func intElem(n int64) *fakeScalar {
	return &fakeScalar{typ: ion.IntType, i: big.NewInt(n)}
}

func floatElem(f float64) *fakeScalar {
	return &fakeScalar{typ: ion.FloatType, f: f}
}

func TestLiteralFromElementScalars(t *testing.T) {
	lit, ok := literalFromElement(intElem(42))
	require.True(t, ok)
	assert.Equal(t, LiteralInteger, lit.Kind)
	assert.Equal(t, big.NewInt(42), lit.Int)

	lit, ok = literalFromElement(&fakeScalar{typ: ion.BoolType, b: true})
	require.True(t, ok)
	assert.Equal(t, LiteralBoolean, lit.Kind)
	assert.True(t, lit.Bool)

	lit, ok = literalFromElement(&fakeScalar{typ: ion.NullType, isNull: true})
	require.True(t, ok)
	assert.Equal(t, LiteralNull, lit.Kind)
}

func TestCompareNumericAcrossKinds(t *testing.T) {
	boolTrue := NewBooleanLiteral(true)
	one := NewIntegerLiteral(big.NewInt(1))
	assert.True(t, Compare(boolTrue, one, OpEqual))

	ten := NewIntegerLiteral(big.NewInt(10))
	twenty := NewFloatLiteral(20.0)
	assert.True(t, Compare(ten, twenty, OpLessThan))
	assert.True(t, Compare(twenty, ten, OpGreaterThan))
}

func TestCompareNonFiniteFloatIsUndefinedEvenForNotEqual(t *testing.T) {
	nan := NewFloatLiteral(math.NaN())
	one := NewIntegerLiteral(big.NewInt(1))
	assert.False(t, Compare(nan, one, OpEqual))
	assert.False(t, Compare(nan, one, OpNotEqual))
}

func TestCompareStringsAndSymbols(t *testing.T) {
	a := NewStringLiteral("abc")
	b := NewStringLiteral("abd")
	assert.True(t, Compare(a, b, OpLessThan))
	assert.False(t, Compare(a, b, OpEqual))

	// Cross-kind string/symbol comparison is undefined, not merely unequal.
	sym := NewSymbolLiteral("abc")
	assert.False(t, Compare(a, sym, OpEqual))
	assert.False(t, Compare(a, sym, OpNotEqual))
}

func TestCompareBlobClobCrossKind(t *testing.T) {
	blob := NewBlobLiteral([]byte{1, 2, 3})
	clob := NewClobLiteral([]byte{1, 2, 3})
	assert.True(t, Compare(blob, clob, OpEqual))
}

func TestCompareNullEquality(t *testing.T) {
	untyped := NewNullLiteral(ion.NullType)
	typedInt := NewNullLiteral(ion.IntType)
	typedFloat := NewNullLiteral(ion.FloatType)

	assert.True(t, Compare(untyped, typedInt, OpEqual))
	assert.True(t, Compare(typedInt, typedInt, OpEqual))
	assert.False(t, Compare(typedInt, typedFloat, OpEqual))
	assert.False(t, Compare(typedInt, typedFloat, OpNotEqual))
}

func TestCompareDecimalNegativeZero(t *testing.T) {
	negZero, err := ion.ParseDecimal("-0.")
	require.NoError(t, err)
	posZero, err := ion.ParseDecimal("0.")
	require.NoError(t, err)
	assert.True(t, Compare(NewDecimalLiteral(negZero), NewDecimalLiteral(posZero), OpEqual))
	assert.False(t, Compare(NewDecimalLiteral(negZero), NewDecimalLiteral(posZero), OpLessThan))
}

func TestCompareTimestampSamePrecision(t *testing.T) {
	a, err := ion.ParseTimestamp("2020-06-01T12:00:00Z")
	require.NoError(t, err)
	b, err := ion.ParseTimestamp("2020-06-01T13:00:00Z")
	require.NoError(t, err)

	la, lb := NewTimestampLiteral(a), NewTimestampLiteral(b)
	assert.True(t, Compare(la, lb, OpLessThan))
	assert.False(t, Compare(la, lb, OpGreaterThan))
	assert.True(t, Compare(la, la, OpEqual))
	assert.False(t, Compare(la, la, OpNotEqual))
}

// TestCompareTimestampPrecisionTieBreakIsOpDependent is the worked example
// of §4.2.5's precision tie-break: a year-precision Timestamp and a
// second-precision Timestamp that both denote the same anchor instant.
// The less-precise side is the earliest instant consistent with it for
// "<" and the latest for ">", so both orderings can hold for the same
// pair — this is not a typo, it is the specified behavior.
func TestCompareTimestampPrecisionTieBreakIsOpDependent(t *testing.T) {
	year, err := ion.ParseTimestamp("2020T")
	require.NoError(t, err)
	second, err := ion.ParseTimestamp("2020-01-01T00:00:00Z")
	require.NoError(t, err)

	lYear, lSecond := NewTimestampLiteral(year), NewTimestampLiteral(second)

	assert.True(t, Compare(lYear, lSecond, OpGreaterThan),
		"year-precision operand must be treated as the latest instant in 2020 for >")
	assert.True(t, Compare(lYear, lSecond, OpLessOrEqual),
		"year-precision operand must also be treated as the earliest instant in 2020 for <=")
	assert.False(t, Compare(lYear, lSecond, OpEqual),
		"differing precision over the same anchor instant is not equal")
	assert.True(t, Compare(lYear, lSecond, OpNotEqual))

	// A mid-year instant falls strictly between the year's earliest and
	// latest bound, so both "<" and ">" hold against the year operand.
	midYear, err := ion.ParseTimestamp("2020-06-15T12:00:00Z")
	require.NoError(t, err)
	lMidYear := NewTimestampLiteral(midYear)
	assert.True(t, Compare(lYear, lMidYear, OpLessThan))
	assert.True(t, Compare(lYear, lMidYear, OpGreaterThan))
}

func TestCompareTimestampAcrossOffsets(t *testing.T) {
	utc, err := ion.ParseTimestamp("2020-01-01T12:00:00Z")
	require.NoError(t, err)
	offset, err := ion.ParseTimestamp("2020-01-01T07:00:00-05:00")
	require.NoError(t, err)
	assert.True(t, Compare(NewTimestampLiteral(utc), NewTimestampLiteral(offset), OpEqual))
}
