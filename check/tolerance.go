package check

import (
	"fmt"
	"math"
	"time"
)

// compareTolerance holds when the absolute difference between the
// operands is at most the configured delta. The difference comes from the
// built-in difference function unless WithDiff replaced it.
func compareTolerance(left, right any, o *options) error {
	diffFn := o.diff
	if diffFn == nil {
		diffFn = difference
	}

	diff, err := diffFn(left, right)
	if err != nil {
		return failf(ruleTolerance.String(), "%v", err)
	}

	delta, deltaLabel := o.tolerance()

	if math.Abs(diff) > delta {
		return failf(ruleTolerance.String(), "values differ by more than %s: %s (difference %s)",
			deltaLabel, renderPair(left, right), renderDifference(diff, o))
	}

	return nil
}

// difference is the built-in DiffFunc. Two time operands (time.Time
// values or RFC 3339 strings) difference in nanoseconds; two numeric
// operands difference as left minus right. Anything else cannot be
// differenced and fails the check with a message naming the unusable
// operand.
func difference(left, right any) (float64, error) {
	lt, ltIsTime := timeOperand(left)
	rt, rtIsTime := timeOperand(right)

	if ltIsTime && rtIsTime {
		return float64(lt.Sub(rt)), nil
	}

	lf, lfIsNum := toFloat64(left)
	rf, rfIsNum := toFloat64(right)

	if lfIsNum && rfIsNum {
		return lf - rf, nil
	}

	lUsable := ltIsTime || lfIsNum
	rUsable := rtIsTime || rfIsNum

	switch {
	case lUsable && !rUsable:
		return 0, fmt.Errorf("cannot compute a difference for right operand %s (type %T)", renderValue(right), right)
	case rUsable && !lUsable:
		return 0, fmt.Errorf("cannot compute a difference for left operand %s (type %T)", renderValue(left), left)
	case lUsable && rUsable:
		return 0, fmt.Errorf("cannot difference a timestamp against a number: %s", renderPair(left, right))
	default:
		return 0, fmt.Errorf("cannot compute a difference between %s (type %T) and %s (type %T)",
			renderValue(left), left, renderValue(right), right)
	}
}

// timeOperand extracts a time from the operand if it is one: a time.Time,
// a *time.Time, or a string parseable as RFC 3339.
func timeOperand(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true

	case *time.Time:
		if t != nil {
			return *t, true
		}

	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// renderDifference renders the observed difference in the same register
// as the delta: a duration when the tolerance is one, a bare number
// otherwise.
func renderDifference(diff float64, o *options) string {
	if o.withinDur != nil {
		return time.Duration(diff).String()
	}

	return trimFloat(diff)
}
