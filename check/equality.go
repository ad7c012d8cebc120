package check

import "reflect"

// Equaler lets a type define its own equality for the strict comparison
// path. When the left operand implements Equaler, its Equal method decides
// the outcome before any structural comparison runs.
type Equaler interface {
	Equal(other any) bool
}

// deepEqual is the equality used by the strict path and by per-element
// compares inside sequences and maps. Two nilish values are equal.
// Numeric operands of different Go types compare by value, so an int 5
// equals a JSON-decoded float64 5.
func deepEqual(left, right any) bool {
	if isNilish(left) && isNilish(right) {
		return true
	}

	if eq, ok := left.(Equaler); ok {
		return eq.Equal(right)
	}

	if reflect.DeepEqual(left, right) {
		return true
	}

	lf, lok := toFloat64(left)
	rf, rok := toFloat64(right)

	return lok && rok && lf == rf
}

// toFloat64 coerces any numeric kind to float64. Strings do not coerce;
// tolerance compares parse them as timestamps instead.
func toFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}

	return 0, false
}
