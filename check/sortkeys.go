package check

import (
	"cmp"
	"slices"
	"strings"

	"facette.io/natsort"
	"github.com/zeebo/xxh3"
)

// Order-insensitive comparison needs a deterministic total order over
// arbitrary elements. Any consistent order yields multiset equality, so
// elements sort by a canonical key: numerics by value, strings naturally
// (with a lexicographic tiebreak, since natural ordering treats "a01" and
// "a1" as equal), and everything else by a digest of its canonical
// rendering, tie-broken by the rendering itself.

type keyKind int

const (
	keyNumeric keyKind = iota
	keyText
	keyDigest
)

type sortKey struct {
	kind keyKind
	num  float64
	text string
	hash uint64
}

func canonicalKey(v any) sortKey {
	if f, ok := toFloat64(v); ok {
		return sortKey{kind: keyNumeric, num: f}
	}

	if s, ok := v.(string); ok {
		return sortKey{kind: keyText, text: s}
	}

	rendered := renderCanonical(v)

	return sortKey{
		kind: keyDigest,
		text: rendered,
		hash: xxh3.HashString(rendered),
	}
}

func compareKeys(a, b sortKey) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}

	switch a.kind {
	case keyNumeric:
		return cmp.Compare(a.num, b.num)

	case keyText:
		if natsort.Compare(a.text, b.text) {
			return -1
		}

		if natsort.Compare(b.text, a.text) {
			return 1
		}

		return strings.Compare(a.text, b.text)

	case keyDigest:
		if a.hash != b.hash {
			return cmp.Compare(a.hash, b.hash)
		}

		return strings.Compare(a.text, b.text)

	default:
		return 0
	}
}

// sortCanonical sorts elements in place by their canonical keys. Keys are
// computed once per element up front.
func sortCanonical(elems []any) {
	type decorated struct {
		key sortKey
		val any
	}

	dec := make([]decorated, len(elems))
	for i, e := range elems {
		dec[i] = decorated{key: canonicalKey(e), val: e}
	}

	slices.SortStableFunc(dec, func(a, b decorated) int {
		return compareKeys(a.key, b.key)
	})

	for i := range dec {
		elems[i] = dec[i].val
	}
}

// sortedKeys returns the keys of a normalized map in canonical order, for
// deterministic rendering.
func sortedKeys(m map[any]any) []any {
	keys := make([]any, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sortCanonical(keys)

	return keys
}
