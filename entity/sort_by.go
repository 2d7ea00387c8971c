package entity

import "strings"

// SortBy is the ordering criterion for a collected record set.
type SortBy int8

// Under every criterion directories sort ahead of files; the criterion only
// decides ordering within each partition.
const (
	// SortByName orders ascending lexicographically by base name.
	SortByName SortBy = iota
	// SortBySize orders descending by byte size.
	SortBySize
	// SortByDate orders descending by formatted modification timestamp
	// (records without one sort last).
	SortByDate
)

// ParseSortBy maps a user-supplied criterion name to a SortBy.
// Unrecognized values fall back to SortByName, matching the behavior when
// no criterion is given at all.
func ParseSortBy(s string) SortBy {
	switch strings.ToLower(s) {
	case "size":
		return SortBySize
	case "date":
		return SortByDate
	default:
		return SortByName
	}
}

func (s SortBy) String() string {
	switch s {
	case SortBySize:
		return "size"
	case SortByDate:
		return "date"
	default:
		return "name"
	}
}
