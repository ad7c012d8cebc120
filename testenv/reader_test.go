package testenv_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/amp-labs/amp-testkit/testenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestReaderValue(t *testing.T) {
	t.Run("returns value when present", func(t *testing.T) {
		t.Setenv("TEST_VALUE", "hello")

		value, err := testenv.String("TEST_VALUE").Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
	})

	t.Run("errors when missing", func(t *testing.T) {
		t.Parallel()

		_, err := testenv.String("TEST_VALUE_MISSING").Value()
		require.Error(t, err)
		assert.ErrorIs(t, err, testenv.ErrMissing)
	})

	t.Run("errors on bad parse", func(t *testing.T) {
		t.Setenv("TEST_VALUE_BAD", "not-a-number")

		_, err := testenv.Int("TEST_VALUE_BAD").Value()
		require.Error(t, err)
		assert.ErrorIs(t, err, testenv.ErrBadValue)
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestReaderValueOrElse(t *testing.T) {
	t.Run("returns value when present", func(t *testing.T) {
		t.Setenv("TEST_OR_ELSE", "value")

		assert.Equal(t, "value", testenv.String("TEST_OR_ELSE").ValueOrElse("default"))
	})

	t.Run("returns fallback when missing", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "default", testenv.String("TEST_OR_ELSE_MISSING").ValueOrElse("default"))
	})

	t.Run("returns fallback on bad parse", func(t *testing.T) {
		t.Setenv("TEST_OR_ELSE_BAD", "nope")

		assert.Equal(t, 7, testenv.Int("TEST_OR_ELSE_BAD").ValueOrElse(7))
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestReaderValueOrElseFunc(t *testing.T) {
	t.Run("does not call func when present", func(t *testing.T) {
		t.Setenv("TEST_OR_ELSE_FUNC", "value")

		called := false
		value := testenv.String("TEST_OR_ELSE_FUNC").ValueOrElseFunc(func() string {
			called = true

			return "fallback"
		})

		assert.Equal(t, "value", value)
		assert.False(t, called)
	})

	t.Run("calls func when missing", func(t *testing.T) {
		t.Parallel()

		value := testenv.String("TEST_OR_ELSE_FUNC_MISSING").ValueOrElseFunc(func() string {
			return "fallback"
		})

		assert.Equal(t, "fallback", value)
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestReaderValueOrPanic(t *testing.T) {
	t.Run("returns value when present", func(t *testing.T) {
		t.Setenv("TEST_PANIC", "value")

		assert.NotPanics(t, func() {
			assert.Equal(t, "value", testenv.String("TEST_PANIC").ValueOrPanic())
		})
	})

	t.Run("panics when missing", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			testenv.String("TEST_PANIC_MISSING").ValueOrPanic()
		})
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestReaderString(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		t.Setenv("TEST_RENDER", "value")

		assert.Equal(t, "TEST_RENDER=value", testenv.String("TEST_RENDER").String())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "TEST_RENDER_MISSING=<not set>",
			testenv.String("TEST_RENDER_MISSING").String())
	})

	t.Run("error", func(t *testing.T) {
		t.Setenv("TEST_RENDER_BAD", "nope")

		rendered := testenv.Int("TEST_RENDER_BAD").String()
		assert.True(t, strings.HasPrefix(rendered, "TEST_RENDER_BAD=<error:"), rendered)
	})
}

func TestReaderWithErrorIfMissing(t *testing.T) {
	t.Parallel()

	errNeeded := errors.New("needed for this suite")

	_, err := testenv.String("TEST_IF_MISSING", testenv.IfMissing[string](errNeeded)).Value()
	require.Error(t, err)
	assert.ErrorIs(t, err, errNeeded)
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestReaderMap(t *testing.T) {
	t.Run("transforms present value", func(t *testing.T) {
		t.Setenv("TEST_MAP", "hello")

		rdr := testenv.String("TEST_MAP").Map(func(s string) (string, error) {
			return strings.ToUpper(s), nil
		})

		value, err := rdr.Value()
		require.NoError(t, err)
		assert.Equal(t, "HELLO", value)
	})

	t.Run("skips transform when missing", func(t *testing.T) {
		t.Parallel()

		called := false
		rdr := testenv.String("TEST_MAP_MISSING").Map(func(s string) (string, error) {
			called = true

			return s, nil
		})

		assert.False(t, rdr.HasValue())
		assert.False(t, called)
	})

	t.Run("captures transform error", func(t *testing.T) {
		t.Setenv("TEST_MAP_ERR", "hello")

		errBad := errors.New("rejected")

		rdr := testenv.String("TEST_MAP_ERR").Map(func(s string) (string, error) {
			return s, errBad
		})

		assert.True(t, rdr.HasError())
		assert.ErrorIs(t, rdr.Error(), errBad)
	})

	t.Run("translates types with package-level Map", func(t *testing.T) {
		t.Setenv("TEST_MAP_LEN", "hello")

		rdr := testenv.Map(testenv.String("TEST_MAP_LEN"), func(s string) (int, error) {
			return len(s), nil
		})

		value, err := rdr.Value()
		require.NoError(t, err)
		assert.Equal(t, 5, value)
	})
}

func TestNewReader(t *testing.T) {
	t.Parallel()

	rdr := testenv.NewReader("SYNTHETIC", true, nil, 42)

	value, err := rdr.Value()
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, "SYNTHETIC", rdr.Key())
}
