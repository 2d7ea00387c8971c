package filesutil

import (
	"os"
	"path/filepath"
	"strings"
)

// IsReadableDirectory checks whether a readable directory exists at given path
func IsReadableDirectory(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsReadableFile checks whether argument is a readable regular file
func IsReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// GetFileExt gets file extension in lower case
func GetFileExt(path string) string {
	ext := filepath.Ext(path)
	return strings.ToLower(ext)
}

// TreeSize returns the size of the entry at path: the byte length for a
// regular file, the recursive total of all descendants for a directory, and
// zero for anything else. The descent ignores every error and every filter;
// an unreadable subtree simply contributes nothing.
func TreeSize(path string) uint64 {
	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}
	if info.Mode().IsRegular() {
		return uint64(info.Size())
	}
	if !info.IsDir() {
		return 0
	}
	var total uint64
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}
	for _, e := range entries {
		total += TreeSize(filepath.Join(path, e.Name()))
	}
	return total
}

// IsWritable reports whether the entry's own mode carries any write bit.
// The inverse is the "read-only" notion used by the compact permission form.
func IsWritable(mode os.FileMode) bool {
	return mode.Perm()&0o222 != 0
}

// IsParentWritable reports whether the parent directory of path can be
// modified, which approximates "can this entry be deleted or renamed":
// removal is a parent-directory capability. A missing or unreadable parent
// counts as not writable.
func IsParentWritable(path string) bool {
	parent := filepath.Dir(path)
	info, err := os.Stat(parent)
	if err != nil {
		return false
	}
	return IsWritable(info.Mode())
}
