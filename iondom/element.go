// Package iondom builds an in-memory document tree from Ion text or binary
// data and exposes it through the ionpath.Element contract, so a parsed
// IonPath expression can be matched against real data without IonPath
// itself depending on any particular Ion representation.
package iondom

import (
	"math/big"

	"github.com/amazon-ion/ion-go/ion"

	ionpath "github.com/trashbyte/ion-path"
)

// unresolvedSymbolText is substituted for a field name or annotation whose
// text could not be resolved against the active symbol table (a
// symbol-id-only reference), per §9's documented limitation.
const unresolvedSymbolText = "$0"

type element struct {
	typ         ion.Type
	isNull      bool
	annotations []string

	boolVal  bool
	intVal   *big.Int
	floatVal float64
	decVal   *ion.Decimal
	textVal  string // String or Symbol
	tsVal    ion.Timestamp
	bytesVal []byte // Blob or Clob

	seq *sequence
	st  *structVal
}

func (e *element) IsNull() bool          { return e.isNull }
func (e *element) IonType() ion.Type     { return e.typ }
func (e *element) Annotations() []string { return e.annotations }

func (e *element) AsBool() (bool, bool) {
	if e.isNull || e.typ != ion.BoolType {
		return false, false
	}
	return e.boolVal, true
}

func (e *element) AsInt() (*big.Int, bool) {
	if e.isNull || e.typ != ion.IntType {
		return nil, false
	}
	return e.intVal, true
}

func (e *element) AsFloat() (float64, bool) {
	if e.isNull || e.typ != ion.FloatType {
		return 0, false
	}
	return e.floatVal, true
}

func (e *element) AsDecimal() (*ion.Decimal, bool) {
	if e.isNull || e.typ != ion.DecimalType {
		return nil, false
	}
	return e.decVal, true
}

func (e *element) AsTimestamp() (ion.Timestamp, bool) {
	if e.isNull || e.typ != ion.TimestampType {
		return ion.Timestamp{}, false
	}
	return e.tsVal, true
}

func (e *element) AsSymbol() (string, bool) {
	if e.isNull || e.typ != ion.SymbolType {
		return "", false
	}
	return e.textVal, true
}

func (e *element) AsString() (string, bool) {
	if e.isNull || e.typ != ion.StringType {
		return "", false
	}
	return e.textVal, true
}

func (e *element) AsBlob() ([]byte, bool) {
	if e.isNull || e.typ != ion.BlobType {
		return nil, false
	}
	return e.bytesVal, true
}

func (e *element) AsClob() ([]byte, bool) {
	if e.isNull || e.typ != ion.ClobType {
		return nil, false
	}
	return e.bytesVal, true
}

func (e *element) AsSequence() (ionpath.Sequence, bool) {
	if e.isNull || (e.typ != ion.ListType && e.typ != ion.SexpType) {
		return nil, false
	}
	return e.seq, true
}

func (e *element) AsStruct() (ionpath.Struct, bool) {
	if e.isNull || e.typ != ion.StructType {
		return nil, false
	}
	return e.st, true
}

type sequence struct {
	items []ionpath.Element
}

func (s *sequence) Len() int                    { return len(s.items) }
func (s *sequence) Get(i int) ionpath.Element    { return s.items[i] }
func (s *sequence) Elements() []ionpath.Element { return s.items }

type structVal struct {
	fields []ionpath.Field
}

func (s *structVal) Fields() []ionpath.Field { return s.fields }
