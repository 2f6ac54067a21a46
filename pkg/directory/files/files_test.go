package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/persondir/pkg/errors"
	"github.com/agentstation/persondir/pkg/persons"
)

func TestLoadSingleFile(t *testing.T) {
	d, err := New(filepath.Join("testdata", "people.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	people, err := d.PeopleWithAttributes(context.Background(),
		persons.Attributes{"username": {"alice"}})
	require.NoError(t, err)
	require.Equal(t, 1, people.Len())

	alice, _ := people.Get("alice")
	assert.Equal(t, []any{"admin", "user"}, alice.Values("role"))
	assert.Equal(t, []any{"eng"}, alice.Values("dept"))
}

func TestLoadDirectory(t *testing.T) {
	d, err := New(filepath.Join("testdata", "hr"))
	require.NoError(t, err)

	// Both YAML files load; the stray text file is skipped.
	assert.Equal(t, 2, d.Len())

	people, err := d.PeopleWithAttributes(context.Background(),
		persons.Attributes{"username": {"dave"}})
	require.NoError(t, err)
	assert.Equal(t, 1, people.Len())
}

func TestMissingPath(t *testing.T) {
	_, err := New(filepath.Join("testdata", "does-not-exist.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestEmptyPath(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("people: [unclosed"), 0o644))

	_, err := New(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestSourceName(t *testing.T) {
	d, err := New(filepath.Join("testdata", "people.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "files:people.yaml", d.Name())

	named, err := New(filepath.Join("testdata", "people.yaml"), WithName("hr"))
	require.NoError(t, err)
	assert.Equal(t, "hr", named.Name())
	assert.Equal(t, filepath.Join("testdata", "people.yaml"), named.Path())
}

func TestCaseInsensitiveOption(t *testing.T) {
	d, err := New(filepath.Join("testdata", "people.yaml"), WithCaseInsensitiveNames())
	require.NoError(t, err)

	people, err := d.PeopleWithAttributes(context.Background(),
		persons.Attributes{"USERNAME": {"bob"}})
	require.NoError(t, err)
	assert.Equal(t, 1, people.Len())
}
