package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadsSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	d, err := NewDownloads(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, d.Dir())

	path, err := d.Save("ai-wallpaper.jpeg", []byte("v1"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ai-wallpaper.jpeg"), path)

	_, err = d.Save("ai-wallpaper.jpeg", []byte("v2"))
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestDownloadsRejectsPaths(t *testing.T) {
	d, err := NewDownloads(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../escape.jpeg", "sub/file.jpeg", `sub\file.jpeg`} {
		_, err := d.Save(name, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestNewDownloadsDefaultsToWorkingDir(t *testing.T) {
	d, err := NewDownloads("  ")
	require.NoError(t, err)
	assert.Equal(t, ".", d.Dir())
}
