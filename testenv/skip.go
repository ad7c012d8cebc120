package testenv

import "testing"

// SkipIf skips the test when the given boolean environment variable is
// set to true. Useful for disabling slow or environment-bound tests
// without touching test code.
func SkipIf(t testing.TB, key string) {
	t.Helper()

	if Bool(key).ValueOrElse(false) {
		t.Skipf("skipping test because of environment variable: %s=true", key)
	}
}

// SkipUnless skips the test unless the given boolean environment
// variable is set to true. The inverse of SkipIf, for tests that should
// only run when explicitly enabled.
func SkipUnless(t testing.TB, key string) {
	t.Helper()

	if !Bool(key).ValueOrElse(false) {
		t.Skipf("skipping test because environment variable is not set: %s", key)
	}
}
