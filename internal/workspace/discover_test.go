package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	exportDir := filepath.Join(root, "workspaceExport")
	require.NoError(t, os.Mkdir(exportDir, 0750))

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	files := []struct {
		path string
		age  time.Duration
	}{
		{path: filepath.Join(root, "old.configfile.zip"), age: 48 * time.Hour},
		{path: filepath.Join(exportDir, "newest.configfile.zip"), age: 0},
		{path: filepath.Join(root, "middle.configfile.zip"), age: 24 * time.Hour},
		{path: filepath.Join(root, "notes.zip"), age: 0},
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(f.path, []byte("zip"), 0600))
		mtime := base.Add(-f.age)
		require.NoError(t, os.Chtimes(f.path, mtime, mtime))
	}

	archives, err := Discover([]string{root, exportDir, filepath.Join(root, "missing")}, "")
	require.NoError(t, err)
	require.Len(t, archives, 3)

	assert.Equal(t, "newest.configfile.zip", archives[0].Name())
	assert.Equal(t, "middle.configfile.zip", archives[1].Name())
	assert.Equal(t, "old.configfile.zip", archives[2].Name())
	assert.Equal(t, int64(3), archives[0].Size)
}

func TestDiscover_DeduplicatesDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.configfile.zip"), []byte("zip"), 0600))

	archives, err := Discover([]string{root, root}, DefaultArchiveGlob)
	require.NoError(t, err)
	assert.Len(t, archives, 1)
}

func TestDiscover_InvalidGlob(t *testing.T) {
	_, err := Discover([]string{t.TempDir()}, "[")
	assert.Error(t, err)
}
