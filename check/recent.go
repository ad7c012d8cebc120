package check

import (
	"time"

	"go.uber.org/atomic"
)

// recentRule is the metrics and failure label for recency checks.
const recentRule = "recent"

// clockFn holds an optional replacement time source. Uses an atomic
// pointer so parallel tests can install and clear overrides without
// locks.
var clockFn *atomic.Pointer[func() time.Time] //nolint:gochecknoglobals

func init() {
	clockFn = atomic.NewPointer[func() time.Time](nil)
}

// SetClock overrides the time source used by Recent. Tests use it to pin
// "now" when checking window edges.
func SetClock(fn func() time.Time) {
	clockFn.Store(&fn)
}

// ResetClock restores the real time source.
func ResetClock() {
	clockFn.Store(nil)
}

func now() time.Time {
	if fn := clockFn.Load(); fn != nil {
		return (*fn)()
	}

	return time.Now()
}

// Recent fails the test unless ts falls within the recency window, by
// default [now-30s, now+1s], compared at second precision. ts may be a
// time.Time or an RFC 3339 string with a zero UTC offset. It returns the
// parsed timestamp.
func Recent(t TestingT, ts any, opts ...Option) time.Time {
	t.Helper()

	parsed, err := RecentE(ts, opts...)
	if err != nil {
		t.Fatalf("%s", err)

		return time.Time{}
	}

	return parsed
}

// RecentE is the error-returning core of Recent.
func RecentE(ts any, opts ...Option) (time.Time, error) {
	o := newOptions(opts...)

	start := time.Now()

	parsed, err := recentIn(ts, o)

	observe(recentRule, start, err)

	return parsed, err
}

func recentIn(ts any, o *options) (time.Time, error) {
	if err := o.validateRecent(); err != nil {
		return time.Time{}, err
	}

	if isNilish(ts) {
		return time.Time{}, failf(recentRule, "timestamp is nil")
	}

	parsed, err := parseTimestamp(ts)
	if err != nil {
		return time.Time{}, err
	}

	if parsed.IsZero() {
		return time.Time{}, failf(recentRule, "timestamp is the zero time")
	}

	current := now().Truncate(time.Second)
	lo := current.Add(-o.windowPast)
	hi := current.Add(o.windowFuture)
	at := parsed.Truncate(time.Second)

	if at.Before(lo) || at.After(hi) {
		return time.Time{}, failf(recentRule, "timestamp %s is not within [%s, %s]",
			parsed.Format(time.RFC3339), lo.Format(time.RFC3339), hi.Format(time.RFC3339))
	}

	return parsed, nil
}

func parseTimestamp(ts any) (time.Time, error) {
	switch t := ts.(type) {
	case time.Time:
		return t, nil

	case *time.Time:
		return *t, nil

	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, failf(recentRule, "timestamp %q is not an RFC 3339 timestamp: %v", t, err)
		}

		if _, offset := parsed.Zone(); offset != 0 {
			return time.Time{}, failf(recentRule, "timestamp %q must carry a zero UTC offset", t)
		}

		return parsed, nil

	default:
		return time.Time{}, failf(recentRule, "timestamp %s (type %T) is not a time or an RFC 3339 string",
			renderValue(ts), ts)
	}
}
