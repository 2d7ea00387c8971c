package service

import (
	"strings"
	"time"

	"github.com/execrooted/filebyte/bytesutil"
	"github.com/execrooted/filebyte/entity"
)

// Bucket is one half-open range of a histogram with its population.
type Bucket struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PermissionSummary counts records by capability classes of the compact
// permission form. Readable/Writable test for the presence of the capability
// anywhere in the summary; ReadOnly/ReadWrite require the exact form.
type PermissionSummary struct {
	Readable  int `json:"readable"`
	Writable  int `json:"writable"`
	ReadOnly  int `json:"read_only"`
	ReadWrite int `json:"read_write"`
}

// Analysis is the set of derived statistics over one record set.
// Largest is the biggest regular file; Smallest is the smallest regular file
// with a size strictly greater than zero (so a tree of empty files yields no
// smallest entry rather than a degenerate always-zero one). Both are nil when
// no qualifying file exists.
type Analysis struct {
	TotalItems   int                `json:"total_items"`
	Directories  int                `json:"directories"`
	RegularFiles int                `json:"regular_files"`
	SizeBuckets  []Bucket           `json:"size_buckets"`
	AgeBuckets   []Bucket           `json:"age_buckets"`
	Largest      *entity.FileRecord `json:"largest,omitempty"`
	Smallest     *entity.FileRecord `json:"smallest,omitempty"`
	Permissions  PermissionSummary  `json:"permissions"`
}

// Percentage of count against the total item count (directories included).
func (a Analysis) Percentage(count int) float64 {
	if a.TotalItems == 0 {
		return 0
	}
	return float64(count) / float64(a.TotalItems) * 100.0
}

type sizeRange struct {
	label    string
	min, max uint64 // half-open [min, max)
}

var sizeRanges = []sizeRange{
	{"Empty (0 B)", 0, 1},
	{"Tiny (< 1 KB)", 1, bytesutil.KIBI},
	{"Small (1 KB - 1 MB)", bytesutil.KIBI, bytesutil.MEBI},
	{"Medium (1 MB - 100 MB)", bytesutil.MEBI, 100 * bytesutil.MEBI},
	{"Large (100 MB - 1 GB)", 100 * bytesutil.MEBI, bytesutil.GIBI},
	{"Huge (> 1 GB)", bytesutil.GIBI, ^uint64(0)},
}

type ageRange struct {
	label    string
	min, max uint64 // elapsed seconds since modification, half-open
}

var ageRanges = []ageRange{
	{"Today", 0, 86_400},
	{"This Week", 86_400, 604_800},
	{"This Month", 604_800, 2_592_000},
	{"This Year", 2_592_000, 31_536_000},
	{"Older", 31_536_000, ^uint64(0)},
}

// Analyze computes the aggregate statistics of a record set, evaluating file
// ages against the current time.
func Analyze(records []entity.FileRecord) Analysis {
	return analyzeAt(records, time.Now())
}

func analyzeAt(records []entity.FileRecord, now time.Time) Analysis {
	analysis := Analysis{TotalItems: len(records)}
	for _, r := range records {
		if r.IsDirectory {
			analysis.Directories++
		}
	}
	analysis.RegularFiles = analysis.TotalItems - analysis.Directories

	for _, sr := range sizeRanges {
		count := 0
		for _, r := range records {
			if r.Size >= sr.min && r.Size < sr.max {
				count++
			}
		}
		if count > 0 {
			analysis.SizeBuckets = append(analysis.SizeBuckets,
				Bucket{Label: sr.label, Count: count, Percentage: analysis.Percentage(count)})
		}
	}

	for _, ar := range ageRanges {
		count := 0
		for _, r := range records {
			modified, ok := ParseTimestamp(r.Modified)
			if !ok {
				continue
			}
			elapsed := now.Sub(modified)
			if elapsed < 0 {
				elapsed = 0
			}
			seconds := uint64(elapsed / time.Second)
			if seconds >= ar.min && seconds < ar.max {
				count++
			}
		}
		if count > 0 {
			analysis.AgeBuckets = append(analysis.AgeBuckets,
				Bucket{Label: ar.label, Count: count, Percentage: analysis.Percentage(count)})
		}
	}

	for i := range records {
		r := &records[i]
		if r.IsDirectory {
			continue
		}
		if analysis.Largest == nil || r.Size > analysis.Largest.Size {
			analysis.Largest = r
		}
		if r.Size > 0 && (analysis.Smallest == nil || r.Size < analysis.Smallest.Size) {
			analysis.Smallest = r
		}
	}

	for _, r := range records {
		if strings.Contains(r.Permissions, "r") {
			analysis.Permissions.Readable++
		}
		if strings.Contains(r.Permissions, "w") {
			analysis.Permissions.Writable++
		}
		if r.Permissions == PermReadOnly {
			analysis.Permissions.ReadOnly++
		}
		if r.Permissions == PermReadWrite {
			analysis.Permissions.ReadWrite++
		}
	}

	return analysis
}
