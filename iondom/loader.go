package iondom

import (
	"errors"
	"io"

	"github.com/amazon-ion/ion-go/ion"

	ionpath "github.com/trashbyte/ion-path"
)

// ErrNoValue is returned when the input stream contains no top-level Ion
// value to load as a root element.
var ErrNoValue = errors.New("iondom: no top-level value")

// Load reads the first top-level Ion value from r and returns it as an
// ionpath.Element, suitable as the root passed to Path.Match. Only the
// first top-level value is loaded; a stream with more than one top-level
// value is otherwise undocumented here since IonPath queries a single
// document root.
func Load(r io.Reader) (ionpath.Element, error) {
	return loadOne(ion.NewReader(r))
}

// LoadString is Load for an in-memory Ion text string.
func LoadString(text string) (ionpath.Element, error) {
	return loadOne(ion.NewReaderString(text))
}

func loadOne(r ion.Reader) (ionpath.Element, error) {
	if !r.Next() {
		if err := r.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoValue
	}
	return readValue(r)
}

func readValue(r ion.Reader) (*element, error) {
	ann, err := annotationTexts(r)
	if err != nil {
		return nil, err
	}
	e := &element{typ: r.Type(), isNull: r.IsNull(), annotations: ann}
	if e.isNull {
		return e, nil
	}

	switch e.typ {
	case ion.BoolType:
		v, err := r.BoolValue()
		if err != nil {
			return nil, err
		}
		if v != nil {
			e.boolVal = *v
		}
	case ion.IntType:
		v, err := r.BigIntValue()
		if err != nil {
			return nil, err
		}
		e.intVal = v
	case ion.FloatType:
		v, err := r.FloatValue()
		if err != nil {
			return nil, err
		}
		if v != nil {
			e.floatVal = *v
		}
	case ion.DecimalType:
		v, err := r.DecimalValue()
		if err != nil {
			return nil, err
		}
		e.decVal = v
	case ion.TimestampType:
		v, err := r.TimestampValue()
		if err != nil {
			return nil, err
		}
		if v != nil {
			e.tsVal = *v
		}
	case ion.StringType:
		v, err := r.StringValue()
		if err != nil {
			return nil, err
		}
		if v != nil {
			e.textVal = *v
		}
	case ion.SymbolType:
		v, err := r.StringValue()
		if err != nil {
			return nil, err
		}
		if v != nil {
			e.textVal = *v
		} else {
			e.textVal = unresolvedSymbolText
		}
	case ion.BlobType, ion.ClobType:
		v, err := r.ByteValue()
		if err != nil {
			return nil, err
		}
		e.bytesVal = v
	case ion.ListType, ion.SexpType:
		items, err := readSequence(r)
		if err != nil {
			return nil, err
		}
		e.seq = &sequence{items: items}
	case ion.StructType:
		fields, err := readStruct(r)
		if err != nil {
			return nil, err
		}
		e.st = &structVal{fields: fields}
	}
	return e, nil
}

func readSequence(r ion.Reader) ([]ionpath.Element, error) {
	if err := r.StepIn(); err != nil {
		return nil, err
	}
	var items []ionpath.Element
	for r.Next() {
		child, err := readValue(r)
		if err != nil {
			return nil, err
		}
		items = append(items, child)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if err := r.StepOut(); err != nil {
		return nil, err
	}
	return items, nil
}

func readStruct(r ion.Reader) ([]ionpath.Field, error) {
	if err := r.StepIn(); err != nil {
		return nil, err
	}
	var fields []ionpath.Field
	for r.Next() {
		name, err := fieldNameText(r)
		if err != nil {
			return nil, err
		}
		child, err := readValue(r)
		if err != nil {
			return nil, err
		}
		fields = append(fields, ionpath.Field{Name: name, Value: child})
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if err := r.StepOut(); err != nil {
		return nil, err
	}
	return fields, nil
}

func annotationTexts(r ion.Reader) ([]string, error) {
	toks, err := r.Annotations()
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, nil
	}
	out := make([]string, len(toks))
	for i, t := range toks {
		if t.Text != nil {
			out[i] = *t.Text
		} else {
			out[i] = unresolvedSymbolText
		}
	}
	return out, nil
}

func fieldNameText(r ion.Reader) (string, error) {
	tok, err := r.FieldName()
	if err != nil {
		return "", err
	}
	if tok == nil || tok.Text == nil {
		return unresolvedSymbolText, nil
	}
	return *tok.Text, nil
}
