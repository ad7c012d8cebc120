package check

import (
	"fmt"
	"time"
)

// changesRule is the metrics and failure label for pre/post-condition
// checks.
const changesRule = "changes"

// Changes runs action and requires the probe to move from one value to
// another: the probe must equal from before the action ("pre-condition")
// and to after it ("post-condition"). Equality follows the strict path,
// so probes returning JSON-decoded numbers compare by value.
//
//	check.Changes(t, func() { cache.Add(k, v) }, cache.Len, 0, 1)
func Changes[T any](t TestingT, action func(), probe func() T, from, to T) {
	t.Helper()

	if err := ChangesE(action, probe, from, to); err != nil {
		t.Fatalf("%s", err)
	}
}

// ChangesE is the error-returning core of Changes.
func ChangesE[T any](action func(), probe func() T, from, to T) error {
	start := time.Now()

	err := changesIn(action, probe, from, to)

	observe(changesRule, start, err)

	return err
}

func changesIn[T any](action func(), probe func() T, from, to T) error {
	if action == nil || probe == nil {
		return fmt.Errorf("%w: action and probe must be non-nil", ErrBadOptions)
	}

	before := probe()
	if !deepEqual(before, from) {
		return failf(changesRule, "pre-condition failed: probe returned %s, want %s",
			renderValue(before), renderValue(from))
	}

	action()

	after := probe()
	if !deepEqual(after, to) {
		return failf(changesRule, "post-condition failed: probe returned %s, want %s",
			renderValue(after), renderValue(to))
	}

	return nil
}
