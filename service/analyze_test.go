package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/execrooted/filebyte/bytesutil"
	"github.com/execrooted/filebyte/entity"
)

func stampAgo(now time.Time, ago time.Duration) string {
	return now.Add(-ago).UTC().Format(TimestampLayout)
}

func TestAnalyzeCounts(t *testing.T) {
	records := []entity.FileRecord{
		{Name: "d1", IsDirectory: true},
		{Name: "d2", IsDirectory: true},
		{Name: "f1", Size: 10},
		{Name: "f2", Size: 20},
		{Name: "f3", Size: 30},
	}
	analysis := Analyze(records)
	assert.Equal(t, 5, analysis.TotalItems)
	assert.Equal(t, 2, analysis.Directories)
	assert.Equal(t, 3, analysis.RegularFiles)
}

func TestAnalyzeSizeBucketsOmitEmpty(t *testing.T) {
	records := []entity.FileRecord{
		{Name: "empty", Size: 0},
		{Name: "tiny", Size: 100},
		{Name: "small", Size: 2 * bytesutil.KIBI},
		{Name: "huge", Size: 2 * bytesutil.GIBI},
	}
	analysis := Analyze(records)
	labels := make([]string, 0, len(analysis.SizeBuckets))
	for _, b := range analysis.SizeBuckets {
		labels = append(labels, b.Label)
		assert.Equal(t, 1, b.Count)
		assert.InDelta(t, 25.0, b.Percentage, 0.001)
	}
	assert.Equal(t,
		[]string{"Empty (0 B)", "Tiny (< 1 KB)", "Small (1 KB - 1 MB)", "Huge (> 1 GB)"},
		labels, "zero-count buckets are omitted")
}

func TestAnalyzeSizeBucketBoundaries(t *testing.T) {
	records := []entity.FileRecord{
		{Name: "a", Size: 1023},                   // still Tiny
		{Name: "b", Size: bytesutil.KIBI},         // first Small
		{Name: "c", Size: bytesutil.MEBI - 1},     // last Small
		{Name: "d", Size: bytesutil.MEBI},         // first Medium
		{Name: "e", Size: 100*bytesutil.MEBI - 1}, // last Medium
		{Name: "f", Size: 100 * bytesutil.MEBI},   // first Large
		{Name: "g", Size: bytesutil.GIBI},         // first Huge
	}
	analysis := Analyze(records)
	byLabel := map[string]int{}
	for _, b := range analysis.SizeBuckets {
		byLabel[b.Label] = b.Count
	}
	assert.Equal(t, 1, byLabel["Tiny (< 1 KB)"])
	assert.Equal(t, 2, byLabel["Small (1 KB - 1 MB)"])
	assert.Equal(t, 2, byLabel["Medium (1 MB - 100 MB)"])
	assert.Equal(t, 1, byLabel["Large (100 MB - 1 GB)"])
	assert.Equal(t, 1, byLabel["Huge (> 1 GB)"])
}

func TestAnalyzeAgeBuckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	records := []entity.FileRecord{
		{Name: "today", Modified: stampAgo(now, 2*time.Hour)},
		{Name: "this_week", Modified: stampAgo(now, 3*24*time.Hour)},
		{Name: "this_month", Modified: stampAgo(now, 20*24*time.Hour)},
		{Name: "this_year", Modified: stampAgo(now, 200*24*time.Hour)},
		{Name: "older", Modified: stampAgo(now, 2*365*24*time.Hour)},
		{Name: "no_timestamp", Modified: ""},
		{Name: "garbage", Modified: "not a timestamp"},
	}
	analysis := analyzeAt(records, now)
	require.Len(t, analysis.AgeBuckets, 5)
	for i, label := range []string{"Today", "This Week", "This Month", "This Year", "Older"} {
		assert.Equal(t, label, analysis.AgeBuckets[i].Label)
		assert.Equal(t, 1, analysis.AgeBuckets[i].Count,
			"records without a parseable timestamp contribute to no bucket")
	}
}

func TestAnalyzeExtremes(t *testing.T) {
	records := []entity.FileRecord{
		{Name: "dir", IsDirectory: true, Size: 9999},
		{Name: "big", Size: 500},
		{Name: "mid", Size: 50},
		{Name: "empty", Size: 0},
	}
	analysis := Analyze(records)
	require.NotNil(t, analysis.Largest)
	assert.Equal(t, "big", analysis.Largest.Name, "directories never win the largest slot")
	require.NotNil(t, analysis.Smallest)
	assert.Equal(t, "mid", analysis.Smallest.Name, "empty files never win the smallest slot")
}

func TestAnalyzeSmallestAbsentForOnlyEmptyFiles(t *testing.T) {
	records := []entity.FileRecord{
		{Name: "dir", IsDirectory: true, Size: 123},
		{Name: "empty", Size: 0},
	}
	analysis := Analyze(records)
	assert.Nil(t, analysis.Smallest)
	assert.NotNil(t, analysis.Largest)
}

func TestAnalyzePermissionSummary(t *testing.T) {
	records := []entity.FileRecord{
		{Name: "a", Permissions: "rwx"},
		{Name: "b", Permissions: "rw-"},
		{Name: "c", Permissions: "r-x"},
		{Name: "d", Permissions: "r--"},
	}
	analysis := Analyze(records)
	assert.Equal(t, 4, analysis.Permissions.Readable)
	assert.Equal(t, 2, analysis.Permissions.Writable)
	assert.Equal(t, 1, analysis.Permissions.ReadOnly)
	assert.Equal(t, 1, analysis.Permissions.ReadWrite)
	assert.InDelta(t, 25.0, analysis.Percentage(analysis.Permissions.ReadOnly), 0.001)
}

func TestAnalyzeEmptySet(t *testing.T) {
	analysis := Analyze(nil)
	assert.Zero(t, analysis.TotalItems)
	assert.Nil(t, analysis.Largest)
	assert.Nil(t, analysis.Smallest)
	assert.Zero(t, analysis.Percentage(0))
}
