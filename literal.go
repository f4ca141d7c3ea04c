package ionpath

import (
	"math/big"

	"github.com/amazon-ion/ion-go/ion"
)

// LiteralKind tags the variant held by a Literal.
type LiteralKind uint8

const (
	LiteralBoolean LiteralKind = iota
	LiteralInteger
	LiteralFloat
	LiteralDecimal
	LiteralString
	LiteralSymbol
	LiteralNull
	LiteralBlob
	LiteralClob
	LiteralTimestamp
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralBoolean:
		return "boolean"
	case LiteralInteger:
		return "integer"
	case LiteralFloat:
		return "float"
	case LiteralDecimal:
		return "decimal"
	case LiteralString:
		return "string"
	case LiteralSymbol:
		return "symbol"
	case LiteralNull:
		return "null"
	case LiteralBlob:
		return "blob"
	case LiteralClob:
		return "clob"
	case LiteralTimestamp:
		return "timestamp"
	default:
		return "<unknown literal kind>"
	}
}

// Literal is a closed sum of scalar kinds mirroring the Ion type model.
// A Literal is a value: never mutated after construction, safe to copy
// and to share across goroutines.
type Literal struct {
	Kind LiteralKind

	Bool      bool
	Int       *big.Int
	Float     float64
	Decimal   *ion.Decimal
	Text      string // String or Symbol
	NullType  ion.Type
	Bytes     []byte // Blob or Clob
	Timestamp ion.Timestamp
}

// NewBooleanLiteral constructs a Literal of kind LiteralBoolean.
func NewBooleanLiteral(b bool) Literal { return Literal{Kind: LiteralBoolean, Bool: b} }

// NewIntegerLiteral constructs a Literal of kind LiteralInteger.
func NewIntegerLiteral(i *big.Int) Literal { return Literal{Kind: LiteralInteger, Int: i} }

// NewFloatLiteral constructs a Literal of kind LiteralFloat.
func NewFloatLiteral(f float64) Literal { return Literal{Kind: LiteralFloat, Float: f} }

// NewDecimalLiteral constructs a Literal of kind LiteralDecimal.
func NewDecimalLiteral(d *ion.Decimal) Literal { return Literal{Kind: LiteralDecimal, Decimal: d} }

// NewStringLiteral constructs a Literal of kind LiteralString.
func NewStringLiteral(s string) Literal { return Literal{Kind: LiteralString, Text: s} }

// NewSymbolLiteral constructs a Literal of kind LiteralSymbol.
func NewSymbolLiteral(s string) Literal { return Literal{Kind: LiteralSymbol, Text: s} }

// NewNullLiteral constructs a Literal of kind LiteralNull carrying the
// given intended Ion type (ion.NullType for an untyped null).
func NewNullLiteral(ty ion.Type) Literal { return Literal{Kind: LiteralNull, NullType: ty} }

// NewBlobLiteral constructs a Literal of kind LiteralBlob.
func NewBlobLiteral(b []byte) Literal { return Literal{Kind: LiteralBlob, Bytes: b} }

// NewClobLiteral constructs a Literal of kind LiteralClob.
func NewClobLiteral(b []byte) Literal { return Literal{Kind: LiteralClob, Bytes: b} }

// NewTimestampLiteral constructs a Literal of kind LiteralTimestamp.
func NewTimestampLiteral(ts ion.Timestamp) Literal {
	return Literal{Kind: LiteralTimestamp, Timestamp: ts}
}
