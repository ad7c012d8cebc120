//nolint:ireturn
package testenv

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrBadValue = errors.New("error parsing environment variable")
	ErrMissing  = errors.New("missing environment variable")
)

// Reader represents a value read from an environment variable. It carries
// the key, whether the variable was set, and any parse error, so callers
// can decide how strictly to treat a missing or malformed value.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Key returns the key of the environment variable.
func (r Reader[A]) Key() string {
	return r.key
}

// Value returns the parsed value, or an error if the variable is missing
// or could not be parsed.
func (r Reader[A]) Value() (A, error) { //nolint:ireturn
	if r.err != nil {
		return r.value, fmt.Errorf("%w %s: %w", ErrBadValue, r.key, r.err)
	}

	if !r.present {
		return r.value, fmt.Errorf("%w %s", ErrMissing, r.key)
	}

	return r.value, nil
}

// ValueOrPanic returns the parsed value, or panics if the variable is
// missing or could not be parsed. Intended for test setup where a broken
// environment should stop the run immediately.
func (r Reader[A]) ValueOrPanic() A { //nolint:ireturn
	value, err := r.Value()
	if err != nil {
		panic(err)
	}

	return value
}

// ValueOrElse returns the parsed value, or the given fallback if the
// variable is missing or could not be parsed. A parse error is logged;
// a variable that is simply not set falls back silently.
func (r Reader[A]) ValueOrElse(v A) A { //nolint:ireturn
	if r.present && r.err == nil {
		return r.value
	}

	if r.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", r.key, "error", r.err, "fallback", v)
	}

	return v
}

// ValueOrElseFunc returns the parsed value, or the result of calling f if
// the variable is missing or could not be parsed. Useful when the fallback
// is expensive to compute.
func (r Reader[A]) ValueOrElseFunc(f func() A) A { //nolint:ireturn
	if r.present && r.err == nil {
		return r.value
	}

	return f()
}

// HasValue returns true if the variable was set and parsed cleanly.
func (r Reader[A]) HasValue() bool {
	return r.present && r.err == nil
}

// HasError returns true if an error occurred while parsing the variable.
func (r Reader[A]) HasError() bool {
	return r.err != nil
}

// Error returns the parse error, if any.
func (r Reader[A]) Error() error {
	return r.err
}

// String renders the reader for logs and failure messages.
func (r Reader[A]) String() string {
	if r.present && r.err == nil {
		return fmt.Sprintf("%s=%v", r.key, r.value)
	}

	if r.err != nil {
		return fmt.Sprintf("%s=<error: %v>", r.key, r.err)
	}

	return r.key + "=<not set>"
}

// WithDefault returns a Reader carrying the given value if this one has
// none. A Reader that already has a value is returned unchanged.
func (r Reader[A]) WithDefault(v A) Reader[A] { //nolint:ireturn
	if r.present {
		return r
	}

	return Reader[A]{
		key:     r.key,
		present: true,
		err:     r.err,
		value:   v,
	}
}

// WithErrorIfMissing returns a Reader carrying the given error if this one
// has no value and no prior error.
func (r Reader[A]) WithErrorIfMissing(err error) Reader[A] { //nolint:ireturn
	if r.present || r.err != nil {
		return r
	}

	return Reader[A]{
		key:     r.key,
		present: false,
		err:     err,
	}
}

// Map returns a Reader with the value transformed by f. The type is fixed;
// use the package-level Map to translate between types.
func (r Reader[A]) Map(f func(A) (A, error)) Reader[A] { //nolint:ireturn
	return Map(r, f)
}

// Map returns a Reader with the value transformed by f, possibly changing
// the value type. Missing values and prior errors pass through untouched.
func Map[A any, B any](r Reader[A], f func(A) (B, error)) Reader[B] {
	if !r.present || r.err != nil {
		return Reader[B]{
			key:     r.key,
			present: r.present,
			err:     r.err,
		}
	}

	val, err := f(r.value)

	return Reader[B]{
		key:     r.key,
		present: true,
		err:     err,
		value:   val,
	}
}
