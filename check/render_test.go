package check

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderValue(t *testing.T) {
	t.Parallel()

	t.Run("strings are quoted", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `"hello"`, renderValue("hello"))
		assert.Equal(t, `""`, renderValue(""), "empty strings stay visible")
	})

	t.Run("nilish values render uniformly", func(t *testing.T) {
		t.Parallel()

		var p *int

		assert.Equal(t, "<nil>", renderValue(nil))
		assert.Equal(t, "<nil>", renderValue(p))
	})

	t.Run("times render as RFC 3339", func(t *testing.T) {
		t.Parallel()

		ts := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

		assert.Equal(t, "2026-03-14T09:26:53Z", renderValue(ts))
	})

	t.Run("maps render with keys in canonical order", func(t *testing.T) {
		t.Parallel()

		rendered := renderValue(map[string]int{"b": 2, "a": 1, "c": 3})

		assert.Equal(t, "{a: 1, b: 2, c: 3}", rendered)
	})

	t.Run("slices render as JSON", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "[1,2,3]", renderValue([]int{1, 2, 3}))
	})
}

func TestRenderPair(t *testing.T) {
	t.Parallel()

	t.Run("short operands stay inline", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "1 != 2", renderPair(1, 2))
	})

	t.Run("long operands break onto labeled lines", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 80)

		rendered := renderPair(long, "short")

		assert.Contains(t, rendered, "\n")
		assert.Contains(t, rendered, "left:")
		assert.Contains(t, rendered, "right:")
	})
}

func TestTrimFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3", trimFloat(3))
	assert.Equal(t, "0.5", trimFloat(0.5))
	assert.Equal(t, "1e+06", trimFloat(1e6))
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, normalizeKey(1), normalizeKey(1.0), "numeric keys unify")
	assert.Equal(t, "a", normalizeKey("a"))
	assert.NotEqual(t, normalizeKey("1"), normalizeKey(1), "strings stay strings")
}
