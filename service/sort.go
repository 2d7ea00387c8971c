package service

import (
	"sort"

	"github.com/execrooted/filebyte/entity"
)

// SortRecords orders records in place. Directories always come before files;
// within each partition the criterion applies: name ascending, size
// descending, or modification date descending (records without a
// modification timestamp sort last). The sort is stable so equal keys keep
// their relative enumeration order run to run.
func SortRecords(records []entity.FileRecord, by entity.SortBy) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.IsDirectory != b.IsDirectory {
			return a.IsDirectory
		}
		switch by {
		case entity.SortBySize:
			return a.Size > b.Size
		case entity.SortByDate:
			return a.Modified > b.Modified
		default:
			return a.Name < b.Name
		}
	})
}
