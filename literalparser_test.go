package ionpath

import (
	"math"
	"math/big"
	"testing"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralNullTypes(t *testing.T) {
	names := []string{"null", "bool", "int", "float", "decimal", "timestamp",
		"string", "symbol", "blob", "clob", "struct", "list", "sexp"}
	types := []ion.Type{ion.NullType, ion.BoolType, ion.IntType, ion.FloatType,
		ion.DecimalType, ion.TimestampType, ion.StringType, ion.SymbolType,
		ion.BlobType, ion.ClobType, ion.StructType, ion.ListType, ion.SexpType}

	for i, name := range names {
		t.Run("null."+name, func(t *testing.T) {
			lit, err := ParseLiteral("null." + name)
			require.NoError(t, err)
			assert.Equal(t, LiteralNull, lit.Kind)
			assert.Equal(t, types[i], lit.NullType)
		})
	}

	lit, err := ParseLiteral("null")
	require.NoError(t, err)
	assert.Equal(t, LiteralNull, lit.Kind)
	assert.Equal(t, ion.NullType, lit.NullType)

	_, err = ParseLiteral("null.bogus")
	assert.Error(t, err)
}

func TestParseLiteralBooleanOrderingAgainstSymbol(t *testing.T) {
	lit, err := ParseLiteral("true")
	require.NoError(t, err)
	assert.Equal(t, LiteralBoolean, lit.Kind)
	assert.True(t, lit.Bool)

	// "truee" is not "true" followed by garbage re-tried as a symbol: the
	// whole literal rule must consume every byte, and "true" only matches
	// a 4-byte prefix, so the remaining "e" is unconsumed trailing text.
	_, err = ParseLiteral("truee")
	assert.Error(t, err)

	lit, err = ParseLiteral("falsey")
	assert.Error(t, err)
	_ = lit
}

func TestParseLiteralIntegerUnderscoreRules(t *testing.T) {
	test := func(in string, want int64, wantErr bool) {
		t.Run(in, func(t *testing.T) {
			lit, err := ParseLiteral(in)
			if wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, LiteralInteger, lit.Kind)
			assert.Equal(t, big.NewInt(want), lit.Int)
		})
	}

	test("1_2_3", 123, false)
	// "_1" is rejected by the integer rule; as a whole literal it is an
	// identifier symbol, since identifiers may start with an underscore.
	_, _, intOK := tryInteger("_1", 0)
	assert.False(t, intOK)
	symLit, err := ParseLiteral("_1")
	require.NoError(t, err)
	assert.Equal(t, LiteralSymbol, symLit.Kind)
	assert.Equal(t, "_1", symLit.Text)
	test("1_", 0, true)
	test("1__2", 0, true)
	test("0", 0, false)
	test("-42", -42, false)
}

func TestParseLiteralRadixIntegers(t *testing.T) {
	lit, err := ParseLiteral("0xFF")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(255), lit.Int)

	lit, err = ParseLiteral("0b1010")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(10), lit.Int)

	lit, err = ParseLiteral("-0x10")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(-16), lit.Int)
}

func TestParseLiteralFloats(t *testing.T) {
	lit, err := ParseLiteral("1.5e2")
	require.NoError(t, err)
	require.Equal(t, LiteralFloat, lit.Kind)
	assert.Equal(t, 150.0, lit.Float)

	lit, err = ParseLiteral("+inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(lit.Float, 1))

	lit, err = ParseLiteral("-inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(lit.Float, -1))

	lit, err = ParseLiteral("nan")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(lit.Float))

	// bare mantissa with no exponent is not a float (it falls to decimal
	// or integer, per the ordering note in §4.1.1).
	_, err = ParseLiteral("1.5")
	require.NoError(t, err) // still parses, just as a Decimal, not a Float
	lit, _ = ParseLiteral("1.5")
	assert.Equal(t, LiteralDecimal, lit.Kind)
}

func TestParseLiteralDecimals(t *testing.T) {
	lit, err := ParseLiteral("12345.600")
	require.NoError(t, err)
	require.Equal(t, LiteralDecimal, lit.Kind)
	assert.Equal(t, "12345.600", lit.Decimal.String())

	// a bare digit sequence with no fractional part or exponent marker is
	// an Integer, not a Decimal.
	lit, err = ParseLiteral("100")
	require.NoError(t, err)
	assert.Equal(t, LiteralInteger, lit.Kind)

	lit, err = ParseLiteral("1d2")
	require.NoError(t, err)
	assert.Equal(t, LiteralDecimal, lit.Kind)
}

func TestParseLiteralStrings(t *testing.T) {
	lit, err := ParseLiteral(`"hello\nworld"`)
	require.NoError(t, err)
	require.Equal(t, LiteralString, lit.Kind)
	assert.Equal(t, "hello\nworld", lit.Text)

	lit, err = ParseLiteral("'''a'''  '''b'''")
	require.NoError(t, err)
	assert.Equal(t, "ab", lit.Text)

	lit, err = ParseLiteral("''''''")
	require.NoError(t, err)
	assert.Equal(t, "", lit.Text)
}

func TestParseLiteralSymbols(t *testing.T) {
	lit, err := ParseLiteral("foo_bar")
	require.NoError(t, err)
	require.Equal(t, LiteralSymbol, lit.Kind)
	assert.Equal(t, "foo_bar", lit.Text)

	lit, err = ParseLiteral("'quoted symbol'")
	require.NoError(t, err)
	assert.Equal(t, "quoted symbol", lit.Text)

	lit, err = ParseLiteral("*")
	require.NoError(t, err)
	assert.Equal(t, "*", lit.Text)
}

func TestParseLiteralBlobWhitespaceTolerance(t *testing.T) {
	a, err := ParseLiteral("{{ A B C D }}")
	require.NoError(t, err)
	b, err := ParseLiteral("{{ABCD}}")
	require.NoError(t, err)
	assert.Equal(t, b.Bytes, a.Bytes)
}

func TestParseLiteralClob(t *testing.T) {
	lit, err := ParseLiteral(`{{"hello"}}`)
	require.NoError(t, err)
	require.Equal(t, LiteralClob, lit.Kind)
	assert.Equal(t, []byte("hello"), lit.Bytes)

	lit, err = ParseLiteral("{{'''hi'''}}")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), lit.Bytes)
}

func TestParseLiteralTimestamps(t *testing.T) {
	test := func(in string) {
		t.Run(in, func(t *testing.T) {
			lit, err := ParseLiteral(in)
			require.NoError(t, err)
			assert.Equal(t, LiteralTimestamp, lit.Kind)
		})
	}

	test("2020T")
	test("2020-05T")
	test("2020-05-17")
	test("2020-05-17T")
	test("2020-05-17T12:30Z")
	test("2020-05-17T12:30:45.678-05:00")
	// Feb 29 on a leap year is valid, strict calendar validation rejects
	// the same date on a non-leap year.
	test("2020-02-29")
	_, err := ParseLiteral("2021-02-29")
	assert.Error(t, err)
}

func TestParseLiteralTimestampBeforeString(t *testing.T) {
	// A bare 4-digit string that looks like a year but is quoted must
	// still parse as a String, not get mistaken for a timestamp fragment.
	lit, err := ParseLiteral(`"2020"`)
	require.NoError(t, err)
	assert.Equal(t, LiteralString, lit.Kind)
	assert.Equal(t, "2020", lit.Text)
}

func TestParseLiteralRejectsTrailingGarbage(t *testing.T) {
	_, err := ParseLiteral("123abc")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Offset)
}
