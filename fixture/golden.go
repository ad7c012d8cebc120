package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/amp-labs/amp-testkit/testenv"
)

// updateKey is the environment variable that switches Golden from
// comparing to rewriting, so expected output can be regenerated with
// TESTKIT_UPDATE_GOLDEN=true go test ./...
const updateKey = "TESTKIT_UPDATE_GOLDEN"

// ErrMismatch is returned when a result does not match its golden file.
var ErrMismatch = errors.New("result does not match golden file")

const excerptLimit = 32

// Option configures golden file comparison.
type Option func(*options)

type options struct {
	dir  string
	name string
	ext  string
}

// WithDir overrides the directory golden files are kept in. The default
// is testdata/golden under the package being tested.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithName overrides the file name derived from the test name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithExt overrides the .golden extension, which helps editors highlight
// golden files that hold a specific format.
func WithExt(ext string) Option {
	return func(o *options) {
		o.ext = ext
	}
}

// Golden compares got against the golden file derived from the test name
// and fails the test on any difference. When TESTKIT_UPDATE_GOLDEN is
// set, the golden file is rewritten with got instead.
func Golden(t testing.TB, got []byte, opts ...Option) {
	t.Helper()

	o := options{
		dir:  filepath.Join("testdata", "golden"),
		name: Filename(t.Name()),
		ext:  ".golden",
	}

	for _, opt := range opts {
		opt(&o)
	}

	path := filepath.Join(o.dir, o.name+o.ext)
	update := testenv.Bool(updateKey).ValueOrElse(false)

	if err := compare(path, got, update); err != nil {
		t.Fatalf("%s", err)

		return
	}

	if update {
		t.Logf("rewrote golden file %s", path)
	}
}

func compare(path string, got []byte, update bool) error {
	if update {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("cannot create golden file directory for %q: %w", path, err)
		}

		if err := os.WriteFile(path, got, 0o600); err != nil {
			return fmt.Errorf("cannot write golden file %q: %w", path, err)
		}

		return nil
	}

	want, err := os.ReadFile(path) //nolint:gosec // golden files are loaded by path on purpose
	if err != nil {
		return fmt.Errorf("cannot read golden file %q (run with %s=true to write it): %w",
			path, updateKey, err)
	}

	if !bytes.Equal(got, want) {
		offset := firstMismatch(got, want)

		return fmt.Errorf("%w %q: first difference at byte %d: %s != %s",
			ErrMismatch, path, offset, excerpt(got, offset), excerpt(want, offset))
	}

	return nil
}

// firstMismatch returns the byte offset at which got and want first
// differ. When one is a prefix of the other, that is the shorter length.
func firstMismatch(got, want []byte) int {
	limit := min(len(got), len(want))

	for i := 0; i < limit; i++ {
		if got[i] != want[i] {
			return i
		}
	}

	return limit
}

// excerpt renders a short quoted window of data starting at offset.
func excerpt(data []byte, offset int) string {
	if offset >= len(data) {
		return "EOF"
	}

	window := data[offset:]
	if len(window) > excerptLimit {
		window = window[:excerptLimit]
	}

	return strconv.Quote(string(window))
}
