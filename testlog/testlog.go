// Package testlog builds per-test slog loggers. Output goes through
// t.Log, so it interleaves with the test's own output, respects -v, and
// is attributed to the right test when running in parallel.
package testlog

import (
	"io"
	"log/slog"
	"testing"

	"github.com/amp-labs/amp-testkit/testenv"
	"github.com/neilotoole/slogt"
)

// levelKey is the environment variable consulted for the default minimum
// level, so a run can be made verbose without touching test code.
const levelKey = "TESTKIT_LOG_LEVEL"

// Options is used to configure the per-test logger.
type Options struct {
	JSON     bool
	MinLevel slog.Level
	Source   bool
}

// Option is a functional option for configuring the logger.
type Option func(*Options)

// WithJSON switches the logger to JSON output, which is easier to feed
// into log tooling when a test run is captured.
func WithJSON() Option {
	return func(o *Options) {
		o.JSON = true
	}
}

// WithMinLevel sets the minimum level, overriding the environment
// default.
func WithMinLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// WithSource adds source file and line attributes to each record.
func WithSource() Option {
	return func(o *Options) {
		o.Source = true
	}
}

// New returns a logger bound to the given test. The minimum level
// defaults from TESTKIT_LOG_LEVEL, falling back to info.
func New(t testing.TB, opts ...Option) *slog.Logger {
	t.Helper()

	o := Options{
		MinLevel: testenv.Level(levelKey).ValueOrElse(slog.LevelInfo),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return slogt.New(t, slogt.Factory(func(w io.Writer) slog.Handler {
		handlerOpts := &slog.HandlerOptions{
			Level:     o.MinLevel,
			AddSource: o.Source,
		}

		if o.JSON {
			return slog.NewJSONHandler(w, handlerOpts)
		}

		return slog.NewTextHandler(w, handlerOpts)
	}))
}
