// Package display renders collection results on a terminal. It is a pure
// consumer of the record/analysis types: nothing here walks the filesystem
// except the detailed-permission lookup for listings.
package display

import (
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/execrooted/filebyte/entity"
	"github.com/execrooted/filebyte/fmte"
	"github.com/execrooted/filebyte/service"
)

const separatorWidth = 50

var (
	dirName   = color.New(color.FgBlue, color.Bold)
	fileSize  = color.New(color.FgGreen)
	highlight = color.New(color.FgCyan)
	typeName  = color.New(color.FgMagenta)
	timestamp = color.New(color.FgYellow)
)

// DisableColor turns all colored output into plain text.
func DisableColor() {
	color.NoColor = true
}

// SizeFormatter renders a byte count for display.
type SizeFormatter func(uint64) string

// ListOptions control the listing layout.
type ListOptions struct {
	// ShowSize prints sizes next to names; without it files get their
	// permissions and modification date instead.
	ShowSize bool
	// Properties appends the created/modified/permission detail to each line.
	Properties bool
	// DetailedPermissions replaces the compact 3-character summary with the
	// 10-character POSIX string where the entry is still stat-able.
	DetailedPermissions bool
	// FormatSize renders sizes; defaults to the record's precomputed
	// auto-scaled rendering when nil.
	FormatSize SizeFormatter
}

// ListFiles prints one line per record.
func ListFiles(records []entity.FileRecord, opts ListOptions) {
	for _, r := range records {
		sizeStr := r.SizeHuman
		if opts.FormatSize != nil {
			sizeStr = opts.FormatSize(r.Size)
		}
		var line string
		switch {
		case r.IsDirectory && opts.ShowSize:
			line = dirName.Sprint(r.Name) + " " + highlight.Sprint(sizeStr) + " " + dirName.Sprint("[DIR]")
		case r.IsDirectory:
			line = dirName.Sprint(r.Name) + " " + dirName.Sprint("[DIR]")
		case opts.ShowSize:
			line = r.Name + " " + fileSize.Sprint(sizeStr)
		default:
			line = r.Name + " " + typeName.Sprint(permissionsFor(r, opts)) + " " + timestamp.Sprint(shortDate(r.Modified))
		}
		if opts.Properties {
			line += timestamp.Sprintf(" [%s Created: %s Modified: %s]", r.Permissions, r.Created, r.Modified)
		}
		fmte.Println(line)
	}
}

func permissionsFor(r entity.FileRecord, opts ListOptions) string {
	if !opts.DetailedPermissions {
		return r.Permissions
	}
	info, err := os.Lstat(r.Path)
	if err != nil {
		return r.Permissions
	}
	return service.DetailedPermissions(info.Mode(), info.IsDir())
}

// shortDate trims a record timestamp down to its date part.
func shortDate(modified string) string {
	if modified == "" {
		return "unknown"
	}
	if datePart, _, found := strings.Cut(modified, " "); found {
		return datePart
	}
	return modified
}

// ShowTypeStats prints per-type file counts, most frequent first. Directories
// and unclassified files are left out.
func ShowTypeStats(records []entity.FileRecord) {
	typeCounts := make(map[string]int)
	totalFiles := 0
	for _, r := range records {
		if r.IsDirectory {
			continue
		}
		typeCounts[r.FileType]++
		totalFiles++
	}
	if totalFiles == 0 {
		return
	}
	fmte.Printf("\nFile Type Statistics:\n")
	fmte.Println(strings.Repeat("─", 40))
	types := make([]string, 0, len(typeCounts))
	for fileType := range typeCounts {
		if fileType != entity.FileTypeUnknown {
			types = append(types, fileType)
		}
	}
	sort.SliceStable(types, func(i, j int) bool {
		return typeCounts[types[i]] > typeCounts[types[j]]
	})
	for _, fileType := range types {
		count := typeCounts[fileType]
		percentage := float64(count) / float64(totalFiles) * 100.0
		fmte.Printf("%s: %s files (%.1f%%)\n",
			typeName.Sprint(fileType), highlight.Sprint(count), percentage)
	}
	fmte.Printf("\nTotal Files: %s\n", highlight.Sprint(totalFiles))
}

// ShowAnalysis prints the aggregate statistics report.
func ShowAnalysis(analysis service.Analysis) {
	fmte.Printf("\nDetailed Analysis:\n")
	fmte.Println(strings.Repeat("-", separatorWidth))
	fmte.Printf("Total Items: %s (%s)\n",
		highlight.Sprint(analysis.TotalItems),
		timestamp.Sprintf("%d files, %d dirs", analysis.RegularFiles, analysis.Directories))

	if len(analysis.SizeBuckets) > 0 {
		fmte.Printf("\nSize Distribution:\n")
		for _, b := range analysis.SizeBuckets {
			fmte.Printf("  %s: %s files (%.1f%%)\n", typeName.Sprint(b.Label), highlight.Sprint(b.Count), b.Percentage)
		}
	}
	if len(analysis.AgeBuckets) > 0 {
		fmte.Printf("\nFile Age Distribution:\n")
		for _, b := range analysis.AgeBuckets {
			fmte.Printf("  %s: %s files (%.1f%%)\n", typeName.Sprint(b.Label), highlight.Sprint(b.Count), b.Percentage)
		}
	}
	if analysis.Largest != nil {
		fmte.Printf("\nLargest File: %s (%s)\n",
			highlight.Sprint(analysis.Largest.Name), fileSize.Sprint(analysis.Largest.SizeHuman))
	}
	if analysis.Smallest != nil {
		fmte.Printf("Smallest File: %s (%s)\n",
			highlight.Sprint(analysis.Smallest.Name), fileSize.Sprint(analysis.Smallest.SizeHuman))
	}

	fmte.Printf("\nPermissions Summary:\n")
	fmte.Printf("  Readable: %s files (%.1f%%)\n",
		highlight.Sprint(analysis.Permissions.Readable), analysis.Percentage(analysis.Permissions.Readable))
	fmte.Printf("  Writable: %s files (%.1f%%)\n",
		highlight.Sprint(analysis.Permissions.Writable), analysis.Percentage(analysis.Permissions.Writable))
	fmte.Printf("  Read-only: %s files (%.1f%%)\n",
		highlight.Sprint(analysis.Permissions.ReadOnly), analysis.Percentage(analysis.Permissions.ReadOnly))
	fmte.Printf("  Read-write: %s files (%.1f%%)\n",
		highlight.Sprint(analysis.Permissions.ReadWrite), analysis.Percentage(analysis.Permissions.ReadWrite))
}

// ShowDuplicates prints candidate duplicate groups. Groups are keyed by size
// only, so the output is a candidate list, not proof of identical content.
func ShowDuplicates(groups map[uint64][]string, formatSize SizeFormatter) {
	if len(groups) == 0 {
		fmte.Printf("No duplicate files found.\n")
		return
	}
	fmte.Printf("Duplicate files found:\n")
	fmte.Println(strings.Repeat("─", separatorWidth))
	sizes := make([]uint64, 0, len(groups))
	for size := range groups {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] > sizes[j] })
	for _, size := range sizes {
		paths := groups[size]
		fmte.Printf("Size: %s (%s)\n", highlight.Sprint(formatSize(size)), timestamp.Sprint(len(paths)))
		for _, path := range paths {
			fmte.Printf("  %s\n", path)
		}
		fmte.Printf("\n")
	}
}
