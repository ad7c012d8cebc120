package testenv

import (
	"strings"
	"testing"
	"unicode"

	"github.com/google/uuid"
)

// UniqueID returns a fresh identifier for the current test, suitable for
// naming external resources (databases, topics, temp files) so that
// parallel runs never collide.
func UniqueID(t testing.TB) string {
	t.Helper()

	return "test-" + uuid.New().String()
}

// UniqueName returns the test's name flattened to a resource-safe form,
// with a short random suffix appended. Subtest separators and whitespace
// become dashes, everything is lowercased.
func UniqueName(t testing.TB) string {
	t.Helper()

	const suffixLen = 8

	name := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || unicode.IsSpace(r):
			return '-'
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		default:
			return r
		}
	}, t.Name())

	return name + "-" + uuid.New().String()[:suffixLen]
}
