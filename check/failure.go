package check

import (
	"errors"
	"fmt"
)

var (
	// ErrCheckFailed is the sentinel wrapped by every assertion failure.
	ErrCheckFailed = errors.New("check failed")

	// ErrBadOptions is returned when a check is configured with options
	// that cannot take effect, such as combining Only with Except.
	ErrBadOptions = errors.New("invalid check options")
)

// Failure is the error produced when a check does not hold. It names the
// rule that fired and carries a message rendering both operands. Failures
// unwrap to ErrCheckFailed so callers can match them with errors.Is.
type Failure struct {
	// Rule identifies which comparison fired, e.g. "sequences", "regex",
	// "tolerance", "maps", "strict", "recent", "changes".
	Rule string

	// Message is the human-readable description of the mismatch.
	Message string
}

func (f *Failure) Error() string {
	if f.Rule == "" {
		return "check failed: " + f.Message
	}

	return fmt.Sprintf("check failed (%s): %s", f.Rule, f.Message)
}

func (f *Failure) Unwrap() error {
	return ErrCheckFailed
}

// failf builds a Failure for the given rule with a formatted message.
func failf(rule string, format string, args ...any) error {
	return &Failure{
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	}
}
