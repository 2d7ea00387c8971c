package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/execrooted/filebyte/entity"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestNewFileRecordSniffsContent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "picture.dat") // extension deliberately misleading
	require.NoError(t, os.WriteFile(path, pngHeader, 0o644))
	info, err := os.Lstat(path)
	require.NoError(t, err)

	record := NewFileRecord(path, info)
	assert.Equal(t, "image/png", record.FileType, "classification is by magic bytes, not extension")
	assert.Equal(t, uint64(len(pngHeader)), record.Size)
	assert.False(t, record.IsDirectory)
}

func TestNewFileRecordDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "box"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "box", "inner.bin"), make([]byte, 11), 0o644))
	path := filepath.Join(root, "box")
	info, err := os.Lstat(path)
	require.NoError(t, err)

	record := NewFileRecord(path, info)
	assert.True(t, record.IsDirectory)
	assert.Equal(t, entity.FileTypeDirectory, record.FileType)
	assert.Equal(t, record.IsDirectory, record.FileType == entity.FileTypeDirectory)
	assert.Equal(t, uint64(11), record.Size)
	assert.Equal(t, "11 B", record.SizeHuman)
}

func TestNewFileRecordReadOnlyEntry(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "locked.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o444))
	info, err := os.Lstat(path)
	require.NoError(t, err)

	record := NewFileRecord(path, info)
	assert.Equal(t, "r-x", record.Permissions,
		"read-only entry in a writable parent can still be deleted")
}

func TestParseTimestamp(t *testing.T) {
	parsed, ok := ParseTimestamp("2024-06-07 08:09:10 UTC")
	require.True(t, ok)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, 10, parsed.Second())

	_, ok = ParseTimestamp("")
	assert.False(t, ok)
	_, ok = ParseTimestamp("yesterday-ish")
	assert.False(t, ok)
}
