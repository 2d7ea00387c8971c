package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	set "github.com/deckarep/golang-set/v2"

	"github.com/execrooted/filebyte/bytesutil"
	"github.com/execrooted/filebyte/display"
	"github.com/execrooted/filebyte/diskutil"
	"github.com/execrooted/filebyte/entity"
	"github.com/execrooted/filebyte/export"
	"github.com/execrooted/filebyte/filesutil"
	"github.com/execrooted/filebyte/fmte"
	"github.com/execrooted/filebyte/service"
)

// errExport marks failures of the export step so main can map them to their
// own exit code.
var errExport = errors.New("export failed")

// inspectOptions carry one command invocation's worth of settings from flag
// parsing down to the flows.
type inspectOptions struct {
	searchPattern  string
	excludePattern string
	sortBy         entity.SortBy
	recursive      bool
	exclusions     set.Set[string]
	minSize        uint64
	sizeUnit       entity.SizeUnit
	autoSize       bool
	showSize       bool
	properties     bool
	exportPath     string
}

func (o inspectOptions) formatSize(size uint64) string {
	if o.autoSize {
		return bytesutil.AutoFormat(size)
	}
	return o.sizeUnit.Format(size)
}

func (o inspectOptions) collectOptions() service.CollectOptions {
	return service.CollectOptions{
		SearchPattern:  o.searchPattern,
		ExcludePattern: o.excludePattern,
		SortBy:         o.sortBy,
		Recursive:      o.recursive,
		ExcludedNames:  o.exclusions,
		MinSize:        o.minSize,
	}
}

// listFiles is the default flow: collect, render (or summarize when
// searching), and optionally export.
func listFiles(dirPath string, opts inspectOptions) error {
	records, err := service.Collect(dirPath, opts.collectOptions())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		if opts.searchPattern != "" {
			fmte.Printf("No files found matching pattern: %s\n", opts.searchPattern)
		} else {
			fmte.Printf("No files found.\n")
		}
		return nil
	}
	if opts.searchPattern != "" {
		display.ShowTypeStats(records)
	} else {
		display.ListFiles(records, display.ListOptions{
			ShowSize:            opts.showSize,
			Properties:          opts.properties,
			DetailedPermissions: true,
			FormatSize:          opts.formatSize,
		})
		if !opts.properties && opts.recursive {
			display.ShowTypeStats(records)
		}
	}
	if opts.exportPath != "" {
		if exportErr := export.ToFile(records, opts.exportPath); exportErr != nil {
			return fmt.Errorf("%w: %v", errExport, exportErr)
		}
		fmte.Printf("Results exported to %s\n", opts.exportPath)
	}
	return nil
}

// analyzeDirectory is the properties flow for a directory: full recursive
// collection plus the aggregate statistics report.
func analyzeDirectory(dirPath string, opts inspectOptions) error {
	collectOpts := opts.collectOptions()
	collectOpts.Recursive = true
	records, err := service.Collect(dirPath, collectOpts)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmte.Printf("No files found in directory.\n")
		return nil
	}
	analysis := service.Analyze(records)
	fmte.Printf("\nDirectory: %s\n", dirPath)
	fmte.Printf("Total Items: %d (%d files, %d dirs)\n",
		analysis.TotalItems, analysis.RegularFiles, analysis.Directories)
	fmte.Printf("Total Size: %s\n", opts.formatSize(filesutil.TreeSize(dirPath)))
	display.ShowTypeStats(records)
	display.ShowAnalysis(analysis)
	return nil
}

// inspectWhole analyzes a path as a single entity, auto-detecting whether it
// is a file or a directory.
func inspectWhole(path string, opts inspectOptions) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("path \"%s\" does not exist", path)
	}
	record := service.NewFileRecord(path, info)
	switch {
	case info.Mode().IsRegular():
		display.ShowFileProperties(path, record, opts.formatSize)
	case info.IsDir():
		display.ShowDirectoryProperties(path, record, opts.formatSize)
	default:
		return fmt.Errorf("path \"%s\" is neither a file nor a directory", path)
	}
	return nil
}

func findDuplicates(dirPath string, opts inspectOptions) error {
	groups, err := service.FindDuplicates(dirPath, opts.exclusions)
	if err != nil {
		return err
	}
	display.ShowDuplicates(groups, opts.formatSize)
	return nil
}

func printTree(dirPath string) error {
	if info, err := os.Lstat(dirPath); err != nil || !info.IsDir() {
		return fmt.Errorf("tree display needs a directory, \"%s\" is not one", dirPath)
	}
	fmte.Printf("%s\n", dirPath)
	display.PrintTree(dirPath, "")
	return nil
}

func listDisks(opts inspectOptions) error {
	volumes, err := diskutil.ListVolumes()
	if err != nil {
		return err
	}
	fmte.Printf("\nAvailable disks:\n")
	for _, v := range volumes {
		fmte.Printf("%s (%s) - Total: %s | Used: %s | Available: %s\n",
			v.Device, v.Mountpoint,
			opts.formatSize(v.Total), opts.formatSize(v.Used), opts.formatSize(v.Available))
	}
	return nil
}

// inspectDisk shows a volume's usage and then runs the selected flow against
// its mountpoint.
func inspectDisk(name string, tree bool, duplicates bool, opts inspectOptions) error {
	volume, err := diskutil.FindVolume(name)
	if err != nil {
		return err
	}
	fmte.Printf("\nDisk: %s (%s, %s)\n", volume.Device, volume.Mountpoint, volume.Fstype)
	fmte.Printf("Total: %s | Used: %s (%.1f%%) | Available: %s\n",
		opts.formatSize(volume.Total), opts.formatSize(volume.Used),
		volume.UsedPercent(), opts.formatSize(volume.Available))
	switch {
	case tree:
		return printTree(volume.Mountpoint)
	case duplicates:
		return findDuplicates(volume.Mountpoint, opts)
	case opts.properties:
		return analyzeDirectory(volume.Mountpoint, opts)
	default:
		return listFiles(volume.Mountpoint, opts)
	}
}

// resolvePath normalizes the positional path argument, defaulting to the
// current directory.
func resolvePath(arg string) string {
	if arg == "" {
		return "."
	}
	return filepath.Clean(arg)
}
