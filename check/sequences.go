package check

import "reflect"

// compareSequences compares two slices or arrays element-wise. With
// IgnoreOrder both sides are sorted into canonical order first, turning
// the compare into multiset equality. Sorting works on copies; the
// operands are never mutated.
func compareSequences(left, right any, o *options) error {
	lElems := elements(left)
	rElems := elements(right)

	if len(lElems) != len(rElems) {
		return failf(ruleSequences.String(), "sequence lengths differ (%d != %d): %s",
			len(lElems), len(rElems), renderPair(left, right))
	}

	if o.ignoreOrder {
		sortCanonical(lElems)
		sortCanonical(rElems)
	}

	for i := range lElems {
		if deepEqual(lElems[i], rElems[i]) {
			continue
		}

		if o.ignoreOrder {
			return failf(ruleSequences.String(), "sequences differ as multisets: %s",
				renderPair(left, right))
		}

		return failf(ruleSequences.String(), "sequences differ at index %d (%s != %s): %s",
			i, renderValue(lElems[i]), renderValue(rElems[i]), renderPair(left, right))
	}

	return nil
}

// elements copies a slice or array into a []any for uniform handling.
func elements(v any) []any {
	rv := reflect.ValueOf(v)

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out
}
