package service

import (
	"fmt"
	"os"
	"path/filepath"

	set "github.com/deckarep/golang-set/v2"

	"github.com/execrooted/filebyte/filesutil"
)

// FindDuplicates recursively visits every regular file beneath dirPath and
// groups their paths by exact byte size, returning only groups with two or
// more members. Directories are used for descent, never reported.
//
// Grouping by size alone is a deliberate heuristic: two same-size files with
// different contents land in the same group. No hashing or byte comparison is
// performed; callers wanting certainty must compare contents themselves.
//
// excludedNames (may be nil) are base names skipped entirely, files and
// directories alike. Unreadable subtrees and entries are skipped silently;
// the only reported error is dirPath not being a readable directory.
func FindDuplicates(dirPath string, excludedNames set.Set[string]) (map[uint64][]string, error) {
	if !filesutil.IsReadableDirectory(dirPath) {
		return nil, fmt.Errorf("path \"%s\" is not a readable directory", dirPath)
	}
	sizeToPaths := make(map[uint64][]string)
	scanForDuplicates(dirPath, excludedNames, sizeToPaths)
	for size, paths := range sizeToPaths {
		if len(paths) < 2 {
			delete(sizeToPaths, size)
		}
	}
	return sizeToPaths, nil
}

func scanForDuplicates(dirPath string, excludedNames set.Set[string], sizeToPaths map[uint64][]string) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if excludedNames != nil && excludedNames.Contains(entry.Name()) {
			continue
		}
		entryPath := filepath.Join(dirPath, entry.Name())
		if entry.IsDir() {
			scanForDuplicates(entryPath, excludedNames, sizeToPaths)
			continue
		}
		info, infoErr := entry.Info()
		if infoErr != nil || !info.Mode().IsRegular() {
			continue
		}
		size := uint64(info.Size())
		sizeToPaths[size] = append(sizeToPaths[size], entryPath)
	}
}
