// Package check provides an enhanced equality assertion for tests. A
// single entry point, Eq, picks its comparison from the shape of the
// operands: element-wise (optionally order-insensitive) for sequences,
// pattern matching for a string against a compiled regexp, bounded
// difference for numeric and time values, and key-filtered deep equality
// for maps. On success Eq returns a caller-selectable value so checks can
// be chained through pipelines.
//
// The package also provides Recent, a bounded-window timestamp check, and
// Changes, a pre/post-condition check around an action. Every failure is
// a *Failure unwrapping to ErrCheckFailed; misconfigured calls fail fast
// with ErrBadOptions instead of passing vacuously.
package check

import (
	"regexp"
	"time"
)

// TestingT is the subset of testing.TB the checks need. *testing.T,
// *testing.B, and lightweight fakes all satisfy it.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Eq compares left and right using shape-driven dispatch and fails the
// test on mismatch. On success it returns left, or the Returning option
// when given, so a check can feed its operand onward:
//
//	id := check.Eq(t, resp.ID, want.ID).(string)
func Eq(t TestingT, left, right any, opts ...Option) any {
	t.Helper()

	value, err := Equal(left, right, opts...)
	if err != nil {
		t.Fatalf("%s", err)

		return nil
	}

	return value
}

// Equal is the error-returning core of Eq, for callers that want to
// inspect the failure instead of stopping the test.
//
// Dispatch order, first match wins:
//
//  1. both operands are slices or arrays: element-wise compare,
//     order-insensitive with IgnoreOrder
//  2. left is a string and right a *regexp.Regexp: pattern match
//  3. a tolerance option is present: bounded-difference compare
//  4. both operands are maps: key-filtered deep equality
//  5. otherwise: strict equality
func Equal(left, right any, opts ...Option) (any, error) {
	o := newOptions(opts...)
	r := classify(left, right, o)

	start := time.Now()

	err := o.validate(r)
	if err == nil {
		err = dispatch(r, left, right, o)
	}

	observe(r.String(), start, err)

	if err != nil {
		return nil, err
	}

	return o.returnValue(left), nil
}

func dispatch(r rule, left, right any, o *options) error {
	switch r {
	case ruleSequences:
		return compareSequences(left, right, o)
	case ruleTextPattern:
		return compareTextPattern(left, right)
	case ruleTolerance:
		return compareTolerance(left, right, o)
	case ruleFilteredMaps:
		return compareMaps(left, right, o)
	case ruleStrict:
		return compareStrict(left, right)
	default:
		return compareStrict(left, right)
	}
}

// compareTextPattern succeeds iff the left string matches the right
// pattern. The failure labels which operand is the string and which the
// regex.
func compareTextPattern(left, right any) error {
	//nolint:forcetypeassert // operand shapes are guaranteed by classify
	text, pattern := left.(string), right.(*regexp.Regexp)

	if pattern.MatchString(text) {
		return nil
	}

	return failf(ruleTextPattern.String(), "string %q does not match regex %q",
		text, pattern.String())
}

func compareStrict(left, right any) error {
	if deepEqual(left, right) {
		return nil
	}

	return failf(ruleStrict.String(), "values differ: %s", renderPair(left, right))
}
