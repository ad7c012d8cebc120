package fixture_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amp-labs/amp-testkit/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type service struct {
	Name     string   `json:"name"     yaml:"name"`
	Replicas int      `json:"replicas" yaml:"replicas"`
	Tags     []string `json:"tags"     yaml:"tags"`
	Owner    owner    `json:"owner"    yaml:"owner"`
}

type owner struct {
	Team       string `json:"team"       yaml:"team"`
	Escalation string `json:"escalation" yaml:"escalation"`
}

type event struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
}

// failRecorder captures Fatalf so failure paths can be inspected without
// failing the enclosing test.
type failRecorder struct {
	testing.TB

	failed  bool
	message string
}

func (r *failRecorder) Helper() {}

func (r *failRecorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func assertService(t *testing.T, svc service) {
	t.Helper()

	assert.Equal(t, "billing", svc.Name)
	assert.Equal(t, 3, svc.Replicas)
	assert.Equal(t, []string{"critical", "eu-west"}, svc.Tags)
	assert.Equal(t, "payments", svc.Owner.Team)
	assert.Equal(t, "pager", svc.Owner.Escalation)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	var svc service

	fixture.Load(t, filepath.Join("testdata", "service.yaml"), &svc)
	assertService(t, svc)
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	var svc service

	fixture.Load(t, filepath.Join("testdata", "service.json"), &svc)
	assertService(t, svc)
}

func TestLoadGzipped(t *testing.T) {
	t.Parallel()

	var svc service

	fixture.Load(t, filepath.Join("testdata", "service.yaml.gz"), &svc)
	assertService(t, svc)
}

func TestLoadZstd(t *testing.T) {
	t.Parallel()

	var events []event

	fixture.Load(t, filepath.Join("testdata", "events.json.zst"), &events)

	require.Len(t, events, 3)
	assert.Equal(t, event{ID: 1, Kind: "created"}, events[0])
	assert.Equal(t, event{ID: 2, Kind: "assigned"}, events[1])
	assert.Equal(t, event{ID: 3, Kind: "closed"}, events[2])
}

func TestBytesReturnsRawContents(t *testing.T) {
	t.Parallel()

	data := fixture.Bytes(t, filepath.Join("testdata", "notes.txt"))

	assert.Equal(t, "Raw fixtures come back byte for byte.\n", string(data))
}

func TestBytesDecompresses(t *testing.T) {
	t.Parallel()

	plain := fixture.Bytes(t, filepath.Join("testdata", "service.yaml"))
	zipped := fixture.Bytes(t, filepath.Join("testdata", "service.yaml.gz"))

	assert.Equal(t, plain, zipped)
}

func TestString(t *testing.T) {
	t.Parallel()

	text := fixture.String(t, filepath.Join("testdata", "service.yaml"))

	assert.True(t, strings.HasPrefix(text, "name: billing\n"))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	rec := &failRecorder{TB: t}

	var svc service

	fixture.Load(rec, filepath.Join("testdata", "absent.yaml"), &svc)

	require.True(t, rec.failed)
	assert.Contains(t, rec.message, "cannot read fixture")
}

func TestLoadUnknownFormat(t *testing.T) {
	t.Parallel()

	rec := &failRecorder{TB: t}

	var out map[string]any

	fixture.Load(rec, filepath.Join("testdata", "notes.txt"), &out)

	require.True(t, rec.failed)
	assert.Contains(t, rec.message, "no recognized format")
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not yaml"), 0o600))

	rec := &failRecorder{TB: t}

	var out map[string]any

	fixture.Load(rec, path, &out)

	require.True(t, rec.failed)
	assert.Contains(t, rec.message, "cannot parse YAML fixture")
}

func TestLoadMalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0o600))

	rec := &failRecorder{TB: t}

	var out map[string]any

	fixture.Load(rec, path, &out)

	require.True(t, rec.failed)
	assert.Contains(t, rec.message, "cannot parse JSON fixture")
}

func TestLoadCorruptGzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip at all"), 0o600))

	rec := &failRecorder{TB: t}

	var out map[string]any

	fixture.Load(rec, path, &out)

	require.True(t, rec.failed)
	assert.Contains(t, rec.message, "cannot decompress fixture")
}
