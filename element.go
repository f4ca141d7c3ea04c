package ionpath

import (
	"math/big"

	"github.com/amazon-ion/ion-go/ion"
)

// Element is the narrow interface IonPath consumes data through. A host
// application supplies its own implementation (or uses package iondom's)
// over whatever tree of already-parsed Ion values it has on hand; IonPath
// never parses or constructs Ion values itself.
//
// Every As* accessor follows the comma-ok convention: the second return
// value is false when the element is not that Ion type (or is null), and
// the first return value must then be ignored.
type Element interface {
	// IsNull reports whether this element is a typed or untyped null.
	IsNull() bool
	// IonType returns the element's Ion type tag, including for nulls
	// (an untyped null reports ion.NullType).
	IonType() ion.Type
	// Annotations returns the element's textual annotations in order.
	// A symbol whose text could not be resolved is reported as "$0".
	Annotations() []string

	AsBool() (bool, bool)
	AsInt() (*big.Int, bool)
	AsFloat() (float64, bool)
	AsDecimal() (*ion.Decimal, bool)
	AsTimestamp() (ion.Timestamp, bool)
	AsSymbol() (string, bool)
	AsString() (string, bool)
	AsBlob() ([]byte, bool)
	AsClob() ([]byte, bool)
	AsSequence() (Sequence, bool)
	AsStruct() (Struct, bool)
}

// Sequence is an ordered Ion list or s-expression.
type Sequence interface {
	Len() int
	Get(i int) Element
	Elements() []Element
}

// Struct is an Ion struct: an ordered multimap of field name to value.
// Field order is the struct's declared order; a field name may repeat.
type Struct interface {
	Fields() []Field
}

// Field is one name/value pair of a Struct, in declared order.
type Field struct {
	Name  string
	Value Element
}
