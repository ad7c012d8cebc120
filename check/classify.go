package check

import (
	"reflect"
	"regexp"
)

// rule is the comparison strategy selected for a pair of operands.
// Classification happens once per check, before any comparing, so the
// priority between strategies stays in one place.
type rule int

const (
	ruleStrict rule = iota
	ruleSequences
	ruleTextPattern
	ruleTolerance
	ruleFilteredMaps
)

func (r rule) String() string {
	switch r {
	case ruleSequences:
		return "sequences"
	case ruleTextPattern:
		return "regex"
	case ruleTolerance:
		return "tolerance"
	case ruleFilteredMaps:
		return "maps"
	case ruleStrict:
		return "strict"
	default:
		return "strict"
	}
}

// classify picks the rule for the given operands and options. First match
// wins; the order below is the contract.
func classify(left, right any, o *options) rule {
	if isSequence(left) && isSequence(right) {
		return ruleSequences
	}

	if _, ok := left.(string); ok {
		if _, ok := right.(*regexp.Regexp); ok {
			return ruleTextPattern
		}
	}

	if o.hasTolerance() {
		return ruleTolerance
	}

	if isMapValue(left) && isMapValue(right) {
		return ruleFilteredMaps
	}

	return ruleStrict
}

// isSequence reports whether v is an ordered sequence (slice or array).
// Strings are not sequences here; they compare as scalars or against
// patterns.
func isSequence(v any) bool {
	if v == nil {
		return false
	}

	switch reflect.ValueOf(v).Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Array:
		return true
	}

	return false
}

// isMapValue reports whether v is a key-value mapping.
func isMapValue(v any) bool {
	if v == nil {
		return false
	}

	return reflect.ValueOf(v).Kind() == reflect.Map
}

// isNilish returns true if the value is a literal nil
// or if it points to something with a nil value.
func isNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}
