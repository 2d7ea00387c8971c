package service

import (
	"fmt"
	"os"
	"path/filepath"

	set "github.com/deckarep/golang-set/v2"

	"github.com/execrooted/filebyte/entity"
	"github.com/execrooted/filebyte/filesutil"
)

const numEntriesGuess = 1_000

// CollectOptions bound a single walk.
type CollectOptions struct {
	// SearchPattern keeps only matching names (regex or substring, see Filter).
	SearchPattern string
	// ExcludePattern rejects matching names outright (regex).
	ExcludePattern string
	// SortBy orders the result; the zero value sorts by name.
	SortBy entity.SortBy
	// Recursive selects a deep walk (full subtree) over a shallow one
	// (direct children only).
	Recursive bool
	// ExcludedNames are base names (files and directories) skipped entirely,
	// before any pattern is consulted. Nil means none.
	ExcludedNames set.Set[string]
	// MinSize drops regular files smaller than this many bytes.
	// Directories are never dropped by size. Zero means no minimum.
	MinSize uint64
}

// Collect walks dirPath and returns one normalized record per surviving
// entry, sorted per opts.SortBy with directories first.
//
// The walk is a synchronous depth-first traversal with a single accumulator;
// entries whose metadata cannot be read and subtrees that cannot be opened
// are skipped silently. The only error Collect reports is the root
// precondition: dirPath must exist and be a readable directory.
func Collect(dirPath string, opts CollectOptions) ([]entity.FileRecord, error) {
	if !filesutil.IsReadableDirectory(dirPath) {
		return nil, fmt.Errorf("path \"%s\" is not a readable directory", dirPath)
	}
	filter := NewFilter(opts.SearchPattern, opts.ExcludePattern)
	records := make([]entity.FileRecord, 0, numEntriesGuess)
	records = collectInto(records, dirPath, filter, opts)
	SortRecords(records, opts.SortBy)
	return records, nil
}

// collectInto appends records for the children of dirPath to acc and returns
// the grown slice. In recursive mode it descends into every subdirectory that
// was not excluded by name or pattern; in shallow mode subdirectories are
// listed but never entered (their aggregate size is still computed in full
// by the normalizer).
func collectInto(acc []entity.FileRecord, dirPath string, filter Filter, opts CollectOptions) []entity.FileRecord {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		// Unreadable directory: this subtree contributes nothing.
		return acc
	}
	for _, entry := range entries {
		name := entry.Name()
		if opts.ExcludedNames != nil && opts.ExcludedNames.Contains(name) {
			continue
		}
		if filter.Excludes(name) {
			continue
		}
		entryPath := filepath.Join(dirPath, name)
		info, infoErr := entry.Info()
		if infoErr != nil {
			// Metadata race or permission problem: drop the entry, keep walking.
			continue
		}
		if filter.Matches(name) {
			record := NewFileRecord(entryPath, info)
			if record.IsDirectory || opts.MinSize == 0 || record.Size >= opts.MinSize {
				acc = append(acc, record)
			}
		}
		if opts.Recursive && entry.IsDir() {
			acc = collectInto(acc, entryPath, filter, opts)
		}
	}
	return acc
}
