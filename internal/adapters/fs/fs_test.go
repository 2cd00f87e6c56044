package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/liner/internal/adapters/fs"
	"go.trai.ch/liner/internal/core/domain"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "liner.yaml")

	require.NoError(t, fs.WriteFileAtomic(path, []byte("first"), domain.FilePerm))
	require.NoError(t, fs.WriteFileAtomic(path, []byte("second"), domain.FilePerm))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")

	ok, err := fs.Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, nil, domain.FilePerm))
	ok, err = fs.Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashKey(t *testing.T) {
	a := fs.HashKey("ripgrep")
	assert.Len(t, a, 16)
	assert.Equal(t, a, fs.HashKey("ripgrep"))
	assert.NotEqual(t, a, fs.HashKey("bat"))
}
