// Package fixture loads testdata files and checks results against golden
// files. Fixtures are decoded by extension (.yaml, .yml, .json) and may be
// stored compressed with a trailing .gz or .zst extension, which is
// unwrapped transparently.
package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when a fixture path carries no extension
// the loader knows how to decode.
var ErrUnknownFormat = errors.New("fixture has no recognized format")

// Load decodes the fixture at path into out and fails the test when the
// file cannot be read or decoded.
func Load(t testing.TB, path string, out any) {
	t.Helper()

	if err := load(path, out); err != nil {
		t.Fatalf("%s", err)
	}
}

// Bytes returns the raw contents of the fixture at path, decompressed if
// the path names a compressed file.
func Bytes(t testing.TB, path string) []byte {
	t.Helper()

	data, err := read(path)
	if err != nil {
		t.Fatalf("%s", err)

		return nil
	}

	return data
}

// String is Bytes with the contents returned as a string.
func String(t testing.TB, path string) string {
	t.Helper()

	return string(Bytes(t, path))
}

func load(path string, out any) error {
	data, err := read(path)
	if err != nil {
		return err
	}

	switch formatExt(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("cannot parse YAML fixture %q: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("cannot parse JSON fixture %q: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	return nil
}

// formatExt returns the extension that selects the decoder, looking
// through a trailing compression extension.
func formatExt(path string) string {
	if isCompressed(path) {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}

	return strings.ToLower(filepath.Ext(path))
}

func isCompressed(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".zst":
		return true
	default:
		return false
	}
}

// read returns the contents of path, decompressing .gz and .zst files.
func read(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixtures are loaded by path on purpose
	if err != nil {
		return nil, fmt.Errorf("cannot read fixture %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return gunzip(path, data)
	case ".zst":
		return unzstd(path, data)
	default:
		return data, nil
	}
}

func gunzip(path string, data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decompress fixture %q: %w", path, err)
	}

	defer func() { _ = zr.Close() }()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("cannot decompress fixture %q: %w", path, err)
	}

	return out, nil
}

func unzstd(path string, data []byte) ([]byte, error) {
	zr, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decompress fixture %q: %w", path, err)
	}

	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("cannot decompress fixture %q: %w", path, err)
	}

	return out, nil
}
