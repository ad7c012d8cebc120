package check

import (
	"fmt"
	"time"
)

// Option is a function that configures a single check call.
// Options follow the functional options pattern for flexible configuration.
type Option func(*options)

// DiffFunc computes a numeric difference between two operands, in the base
// unit of whatever the operands measure. Tolerance checks compare the
// absolute value of the difference against the configured delta.
type DiffFunc func(left, right any) (float64, error)

// filterMode selects how map keys are restricted before comparing.
type filterMode int

const (
	// filterAll compares every key (the default).
	filterAll filterMode = iota

	// filterRightKeys restricts both maps to the keys present in right.
	filterRightKeys

	// filterKeys restricts both maps to an explicit key list.
	filterKeys
)

// options holds the internal configuration for a check call. The zero
// value carries every default: exact compare, no filtering, the left
// operand as the success value.
type options struct {
	ignoreOrder bool

	returning    any
	hasReturning bool

	within    *float64
	withinDur *time.Duration
	diff      DiffFunc

	onlyMode   filterMode
	onlyKeys   []any
	exceptKeys []any

	windowSet    bool
	windowPast   time.Duration
	windowFuture time.Duration
}

const (
	defaultRecentPast   = 30 * time.Second
	defaultRecentFuture = 1 * time.Second
)

func newOptions(opts ...Option) *options {
	o := &options{
		windowPast:   defaultRecentPast,
		windowFuture: defaultRecentFuture,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// IgnoreOrder makes sequence comparison order-insensitive: both sides are
// sorted into a deterministic canonical order before the element-wise
// compare, so sequences with the same multiset of elements are equal.
func IgnoreOrder() Option {
	return func(o *options) {
		o.ignoreOrder = true
	}
}

// Returning sets the value the check yields on success, instead of the
// left operand. Useful for threading a different value through a pipeline
// of checks.
func Returning(v any) Option {
	return func(o *options) {
		o.returning = v
		o.hasReturning = true
	}
}

// Within switches the check to a tolerance compare: it holds when the
// absolute difference between the operands is at most delta. Numeric
// operands difference as left minus right; time operands difference in
// nanoseconds; strings are parsed as RFC 3339 timestamps first.
func Within(delta float64) Option {
	return func(o *options) {
		o.within = &delta
	}
}

// WithinDuration switches the check to a time tolerance compare: it holds
// when the operands are at most d apart. Operands may be time.Time values
// or RFC 3339 strings.
func WithinDuration(d time.Duration) Option {
	return func(o *options) {
		o.withinDur = &d
	}
}

// WithDiff replaces the built-in difference function used by tolerance
// compares.
func WithDiff(fn DiffFunc) Option {
	return func(o *options) {
		o.diff = fn
	}
}

// Only restricts map comparison to the listed keys. Keys absent from a
// map contribute nothing to the compare.
func Only(keys ...any) Option {
	return func(o *options) {
		o.onlyMode = filterKeys
		o.onlyKeys = keys
	}
}

// OnlyRightKeys restricts map comparison to the keys actually present in
// the right operand, so the left map may carry extra keys.
func OnlyRightKeys() Option {
	return func(o *options) {
		o.onlyMode = filterRightKeys
	}
}

// Except removes the listed keys from both maps before comparing.
func Except(keys ...any) Option {
	return func(o *options) {
		o.exceptKeys = keys
	}
}

// RecentWindow overrides the window used by Recent: the timestamp must lie
// within [now-past, now+future].
func RecentWindow(past, future time.Duration) Option {
	return func(o *options) {
		o.windowSet = true
		o.windowPast = past
		o.windowFuture = future
	}
}

// filterRequested reports whether any key filtering option was given.
func (o *options) filterRequested() bool {
	return o.onlyMode != filterAll || len(o.exceptKeys) > 0
}

// hasTolerance reports whether a tolerance option was given.
func (o *options) hasTolerance() bool {
	return o.within != nil || o.withinDur != nil
}

// returnValue applies the return-value rule: the Returning option if
// given, else the original left operand.
func (o *options) returnValue(left any) any {
	if o.hasReturning {
		return o.returning
	}

	return left
}

// tolerance returns the configured delta in base units along with a
// human-readable rendering of it for failure messages.
func (o *options) tolerance() (float64, string) {
	if o.withinDur != nil {
		return float64(*o.withinDur), o.withinDur.String()
	}

	if o.within != nil {
		return *o.within, trimFloat(*o.within)
	}

	return 0, "0"
}

// validate rejects option combinations that cannot take effect for the
// rule about to fire. Misconfigured checks fail fast with ErrBadOptions
// rather than passing vacuously.
func (o *options) validate(r rule) error {
	if o.onlyMode != filterAll && len(o.exceptKeys) > 0 {
		return fmt.Errorf("%w: only and except are mutually exclusive", ErrBadOptions)
	}

	if o.within != nil && o.withinDur != nil {
		return fmt.Errorf("%w: Within and WithinDuration are mutually exclusive", ErrBadOptions)
	}

	if o.within != nil && *o.within < 0 {
		return fmt.Errorf("%w: tolerance must be non-negative, got %s", ErrBadOptions, trimFloat(*o.within))
	}

	if o.withinDur != nil && *o.withinDur < 0 {
		return fmt.Errorf("%w: tolerance must be non-negative, got %s", ErrBadOptions, o.withinDur.String())
	}

	if o.diff != nil && !o.hasTolerance() {
		return fmt.Errorf("%w: WithDiff requires Within or WithinDuration", ErrBadOptions)
	}

	if o.filterRequested() && r != ruleFilteredMaps {
		return fmt.Errorf("%w: key filtering requires map operands on both sides", ErrBadOptions)
	}

	if o.windowSet {
		return fmt.Errorf("%w: RecentWindow applies to Recent", ErrBadOptions)
	}

	return nil
}

// validateRecent rejects options that have no meaning for Recent.
func (o *options) validateRecent() error {
	if o.ignoreOrder || o.hasReturning || o.hasTolerance() || o.filterRequested() || o.diff != nil {
		return fmt.Errorf("%w: Recent accepts only RecentWindow", ErrBadOptions)
	}

	if o.windowPast < 0 || o.windowFuture < 0 {
		return fmt.Errorf("%w: recency window bounds must be non-negative", ErrBadOptions)
	}

	return nil
}
