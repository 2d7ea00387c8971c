package service

import (
	"regexp"
	"strings"
)

// patternKind tags how a search pattern is to be interpreted.
type patternKind int8

const (
	patternNone patternKind = iota
	patternSubstring
	patternRegex
)

// Filter decides whether entry names are included in a walk. The exclusion
// pattern is always a regular expression and is absolute: a name matching it
// is rejected before the search pattern is consulted. The search pattern is
// classified once, at construction, as either a regular expression or a plain
// case-sensitive substring.
//
// A malformed pattern degrades silently: an invalid exclusion never excludes
// and an invalid search never matches. Pattern problems must not abort a walk.
type Filter struct {
	kind      patternKind
	substring string
	search    *regexp.Regexp
	exclude   *regexp.Regexp
	badSearch bool
}

// NewFilter builds a Filter from optional search and exclusion patterns
// (empty string means absent).
func NewFilter(searchPattern, excludePattern string) Filter {
	var f Filter
	if excludePattern != "" {
		// Compile errors leave exclude nil: never excludes.
		f.exclude, _ = regexp.Compile(excludePattern)
	}
	if searchPattern == "" {
		f.kind = patternNone
		return f
	}
	if looksLikeRegex(searchPattern) {
		f.kind = patternRegex
		re, err := regexp.Compile(searchPattern)
		if err != nil {
			f.badSearch = true
		} else {
			f.search = re
		}
	} else {
		f.kind = patternSubstring
		f.substring = searchPattern
	}
	return f
}

// looksLikeRegex decides whether a pattern should be treated as a regular
// expression rather than a literal substring. Casual users can type "log"
// and have it behave as a substring search, while anchored or classed
// patterns get full regex treatment without needing a mode flag.
func looksLikeRegex(pattern string) bool {
	return strings.HasPrefix(pattern, "^") ||
		strings.HasSuffix(pattern, "$") ||
		strings.Contains(pattern, ".*") ||
		strings.Contains(pattern, "[") ||
		strings.Contains(pattern, "]")
}

// Matches reports whether an entry with the given base name passes the filter.
func (f Filter) Matches(name string) bool {
	if f.Excludes(name) {
		return false
	}
	switch f.kind {
	case patternSubstring:
		return strings.Contains(name, f.substring)
	case patternRegex:
		if f.badSearch {
			return false
		}
		return f.search.MatchString(name)
	default:
		return true
	}
}

// Excludes reports whether the exclusion pattern alone rejects the name.
func (f Filter) Excludes(name string) bool {
	return f.exclude != nil && f.exclude.MatchString(name)
}
