package tempstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesScratchDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scratch")

	store, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMaterializeAndRelease(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	content := []byte("%PDF-1.4 fake resume")
	path, err := store.Materialize(content, "resume.pdf")
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	store.Release(path)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file must be gone after release")
}

func TestMaterializePathsNeverCollide(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		path, err := store.Materialize([]byte("x"), "resume.pdf")
		require.NoError(t, err)
		assert.False(t, seen[path], "duplicate scratch path %s", path)
		seen[path] = true
	}
}

func TestMaterializeSanitizesClientFilename(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	path, err := store.Materialize([]byte("x"), "../../etc/my resume.pdf")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path), "scratch file must stay inside the scratch dir")
	assert.NotContains(t, filepath.Base(path), " ")
}

func TestReleaseOnMissingPathIsBestEffort(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	// Must log, not panic or propagate.
	store.Release(filepath.Join(store.Dir(), "never-existed.pdf"))
	store.Release("")
}
