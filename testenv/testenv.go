// Package testenv reads the environment variables that tune test runs,
// such as log levels, golden-file update switches, and skip toggles. It
// wraps each read in a Reader so tests can fall back to sane defaults
// without sprinkling os.LookupEnv and strconv calls around.
package testenv

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrBadLevel is returned when a log level string is not recognized.
var ErrBadLevel = errors.New("invalid log level")

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	record(key, val, ok)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// NewReader returns a Reader for the given raw data. Useful when the
// value comes from somewhere other than the process environment but
// should flow through the same fallback machinery.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	rdr := get(key)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Bool returns a Reader for the given environment variable key,
// parsed with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	rdr := Map(get(key), strconv.ParseBool)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Int returns a Reader for the given environment variable key,
// parsed as a base-10 int.
func Int(key string, opts ...Option[int]) Reader[int] {
	rdr := Map(get(key), strconv.Atoi)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Float64 returns a Reader for the given environment variable key,
// parsed as a float64.
func Float64(key string, opts ...Option[float64]) Reader[float64] {
	rdr := Map(get(key), parseFloat)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Duration returns a Reader for the given environment variable key,
// parsed with time.ParseDuration.
func Duration(key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	rdr := Map(get(key), time.ParseDuration)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Level returns a Reader for the given environment variable key, parsed
// as a slog.Level. Accepts "debug", "info", "warn", and "error" in any
// case, with surrounding whitespace ignored.
func Level(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(key), parseLevel)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadLevel, value)
	}
}
