package ionpath

import (
	wildcard "github.com/IGLOU-EU/go-wildcard/v2"
)

// Match evaluates the Path against root, returning the matched elements in
// traversal order. Match is total: a Path that selects nothing returns an
// empty, non-nil slice rather than an error.
func (p *Path) Match(root Element) []Element {
	context := []Element{root}
	for _, seg := range p.Segments {
		context = applySegment(seg, context)
		if len(context) == 0 {
			return []Element{}
		}
	}
	return context
}

// applySegment implements one step of §4.2.1: recursive pre-expansion,
// then key-match, annotation filter, and predicate filter, concatenated
// across every element of the incoming context.
//
// A predicate list attached to a key that matched a sequence filters the
// sequence's own elements rather than the sequence value as a whole (so
// "a[>15]" against a: [10, 20, 30] yields [20, 30], per §8's worked
// example) — a direct predicate test against the sequence value itself
// would be undefined under §4.2.5's coercion rules and always filter it
// out, which the worked example rules out. Filtering a non-sequence
// candidate tests the predicate against the candidate directly.
func applySegment(seg Segment, context []Element) []Element {
	if seg.Recursive {
		context = expandRecursive(context)
	}
	var next []Element
	for _, e := range context {
		for _, candidate := range matchKey(seg.Key, e) {
			if !matchAnnotations(seg.AnnotationLists, candidate) {
				continue
			}
			if len(seg.PredicateLists) == 0 {
				next = append(next, candidate)
				continue
			}
			if seq, ok := candidate.AsSequence(); ok {
				for i := 0; i < seq.Len(); i++ {
					item := seq.Get(i)
					if matchPredicates(seg.PredicateLists, item) {
						next = append(next, item)
					}
				}
				continue
			}
			if matchPredicates(seg.PredicateLists, candidate) {
				next = append(next, candidate)
			}
		}
	}
	if next == nil {
		next = []Element{}
	}
	return next
}

// expandRecursive replaces the context with itself plus every transitive
// child, preserving traversal order (element before its descendants).
func expandRecursive(context []Element) []Element {
	var out []Element
	var visit func(e Element)
	visit = func(e Element) {
		out = append(out, e)
		if seq, ok := e.AsSequence(); ok {
			for i := 0; i < seq.Len(); i++ {
				visit(seq.Get(i))
			}
			return
		}
		if st, ok := e.AsStruct(); ok {
			for _, f := range st.Fields() {
				visit(f.Value)
			}
		}
	}
	for _, e := range context {
		visit(e)
	}
	return out
}

// matchKey implements §4.2.2.
func matchKey(k Key, e Element) []Element {
	if seq, ok := e.AsSequence(); ok {
		return matchKeyInSequence(k, seq)
	}
	if st, ok := e.AsStruct(); ok {
		return matchKeyInStruct(k, st)
	}
	return nil
}

func matchKeyInSequence(k Key, seq Sequence) []Element {
	length := seq.Len()
	if length == 0 {
		return nil
	}
	switch k.Kind {
	case KeyIndex:
		if !k.Index.IsInt64() {
			return nil
		}
		i64 := k.Index.Int64()
		if i64 > int64(1)<<31-1 || i64 < -(int64(1)<<31) {
			return nil
		}
		if i64 > int64(length) || i64 < -int64(length) {
			return nil
		}
		j := normalizeModulo(int(i64), length)
		if j < 0 || j >= length {
			return nil
		}
		return []Element{seq.Get(j)}
	case KeySlice:
		return matchSlice(k, seq)
	case KeySymbol, KeyString:
		if k.Text == "*" {
			return seq.Elements()
		}
		return nil
	default:
		return nil
	}
}

// normalizeModulo reduces i modulo length into [0, length), matching the
// "negative wraps from the end" rule without Go's truncating %.
func normalizeModulo(i, length int) int {
	j := i % length
	if j < 0 {
		j += length
	}
	return j
}

func matchSlice(k Key, seq Sequence) []Element {
	length := seq.Len()
	start, end, step := 0, length-1, 1
	if k.SliceStart != nil {
		start = normalizeModulo(int(*k.SliceStart), length)
	}
	if k.SliceEnd != nil {
		end = normalizeModulo(int(*k.SliceEnd), length)
	}
	if k.SliceStep != nil {
		step = int(*k.SliceStep)
	}
	if step == 0 {
		return nil
	}
	if step > 0 && end < start {
		return nil
	}
	if step < 0 && start < end {
		return nil
	}
	var out []Element
	for i := start; ; i += step {
		if i < 0 || i >= length {
			break
		}
		out = append(out, seq.Get(i))
		if i == end {
			break
		}
		if step > 0 && i > end {
			break
		}
		if step < 0 && i < end {
			break
		}
	}
	return out
}

func matchKeyInStruct(k Key, st Struct) []Element {
	if k.Kind != KeySymbol && k.Kind != KeyString {
		return nil
	}
	var out []Element
	for _, f := range st.Fields() {
		if k.Text == "*" || wildcard.Match(k.Text, f.Name) {
			out = append(out, f.Value)
		}
	}
	return out
}

// matchAnnotations implements §4.2.3: every annotation list must have at
// least one of its symbols present among the element's annotations.
func matchAnnotations(lists [][]string, e Element) bool {
	if len(lists) == 0 {
		return true
	}
	ann := e.Annotations()
	for _, list := range lists {
		found := false
		for _, want := range list {
			for _, have := range ann {
				if want == have {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchPredicates implements §4.2.4: every predicate list must have at
// least one predicate that holds.
func matchPredicates(lists [][]Predicate, e Element) bool {
	if len(lists) == 0 {
		return true
	}
	for _, list := range lists {
		found := false
		for _, pred := range list {
			if evalPredicate(pred, e) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func evalPredicate(pred Predicate, e Element) bool {
	if !pred.IsCompare() {
		return len(pred.Subpath.Match(e)) > 0
	}
	var subjects []Element
	if pred.ComparePath != nil {
		subjects = pred.ComparePath.Match(e)
	} else {
		subjects = []Element{e}
	}
	for _, s := range subjects {
		lit, ok := literalFromElement(s)
		if !ok {
			continue
		}
		if Compare(lit, pred.Value, pred.Op) {
			return true
		}
	}
	return false
}
