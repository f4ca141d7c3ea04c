package ionpath

import "math/big"

// KeyKind tags the variant held by a Key.
type KeyKind uint8

const (
	KeySymbol KeyKind = iota
	KeyString
	KeyIndex
	KeySlice
)

// Key selects children of a single element: by field name (Symbol or
// String, each possibly the wildcard "*" or a shell-style pattern against
// struct field names), by sequence index, or by sequence slice.
type Key struct {
	Kind KeyKind

	Text  string   // KeySymbol, KeyString
	Index *big.Int // KeyIndex

	// KeySlice bounds. A nil pointer means "use the default for this
	// bound" (see §4.2.2): start defaults to 0, end to length-1, step to 1.
	SliceStart *int32
	SliceEnd   *int32
	SliceStep  *int32
}

// NewSymbolKey constructs a Key of kind KeySymbol.
func NewSymbolKey(text string) Key { return Key{Kind: KeySymbol, Text: text} }

// NewStringKey constructs a Key of kind KeyString.
func NewStringKey(text string) Key { return Key{Kind: KeyString, Text: text} }

// NewIndexKey constructs a Key of kind KeyIndex.
func NewIndexKey(i *big.Int) Key { return Key{Kind: KeyIndex, Index: i} }

// NewSliceKey constructs a Key of kind KeySlice. Any of start, end, step
// may be nil to take the default for that bound.
func NewSliceKey(start, end, step *int32) Key {
	return Key{Kind: KeySlice, SliceStart: start, SliceEnd: end, SliceStep: step}
}

func i32ptr(v int32) *int32 { return &v }
