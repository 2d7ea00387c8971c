package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSubstringMode(t *testing.T) {
	f := NewFilter("log", "")
	assert.True(t, f.Matches("system.log"))
	assert.True(t, f.Matches("logbook.txt"))
	assert.False(t, f.Matches("system.LOG"), "substring matching is case-sensitive")
	assert.False(t, f.Matches("notes.txt"))
}

func TestFilterRegexMode(t *testing.T) {
	for pattern, classified := range map[string]bool{
		"^alpha":    true,
		"alpha$":    true,
		"al.*a":     true,
		"[ab]lpha":  true,
		"alpha]":    true,
		"alpha":     false,
		"alpha.txt": false, // a lone dot is not enough to look like a regex
	} {
		assert.Equal(t, classified, looksLikeRegex(pattern), "pattern %q", pattern)
	}

	f := NewFilter("^alpha", "")
	assert.True(t, f.Matches("alpha.txt"))
	assert.False(t, f.Matches("notalpha.txt"))

	f = NewFilter("\\.go$", "")
	assert.True(t, f.Matches("main.go"))
	assert.False(t, f.Matches("main.gone"))
}

func TestFilterInvalidRegexNeverMatches(t *testing.T) {
	f := NewFilter("[unclosed", "")
	assert.False(t, f.Matches("unclosed"))
	assert.False(t, f.Matches("anything"))
}

func TestFilterExclusionIsAbsolute(t *testing.T) {
	// Name matches the search pattern but exclusion wins.
	f := NewFilter("report", "^report")
	assert.False(t, f.Matches("report.pdf"))
	assert.True(t, f.Matches("old_report.pdf"))
}

func TestFilterInvalidExclusionNeverExcludes(t *testing.T) {
	f := NewFilter("", "[unclosed")
	assert.True(t, f.Matches("unclosed"))
	assert.False(t, f.Excludes("unclosed"))
}

func TestFilterNoPatternsMatchesEverything(t *testing.T) {
	f := NewFilter("", "")
	assert.True(t, f.Matches("anything at all"))
}
