package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	set "github.com/deckarep/golang-set/v2"
	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"

	"github.com/execrooted/filebyte/display"
	"github.com/execrooted/filebyte/entity"
	"github.com/execrooted/filebyte/fmte"
)

const version = "1.3.2"

// Constants indicating return codes of this tool, when run from command line
const (
	exitCodeSuccess = iota
	exitCodeInvalidArgs
	exitCodeRootPathError
	exitCodeDiskError
	exitCodeExportError
	exitCodeExclusionFilesError
)

//go:embed default_exclusions.txt
var defaultExclusionsStr string

var flags struct {
	isHelp        func() bool
	isVersion     func() bool
	isTree        func() bool
	isProperties  func() bool
	isNoColor     func() bool
	isDuplicates  func() bool
	isRecursive   func() bool
	isWhole       func() bool
	getDisk       func() string
	getSearch     func() string
	getExcluding  func() string
	getSortBy     func() entity.SortBy
	getExport     func() string
	getSizeUnit   func() (unit entity.SizeUnit, auto bool, shown bool)
	getMinSize    func() uint64
	getExclusions func() set.Set[string]
}

func setupBoolOpts() {
	helpPtr := flag.BoolP("help", "h", false, "show help information")
	versionPtr := flag.BoolP("version", "v", false, "show version information")
	treePtr := flag.BoolP("tree", "t", false, "show directory tree")
	propertiesPtr := flag.BoolP("properties", "p", false, "show file properties")
	noColorPtr := flag.Bool("no-color", false, "disable colored output")
	duplicatesPtr := flag.Bool("duplicates", false,
		"find candidate duplicate files (grouped by identical size, contents are not compared)")
	recursivePtr := flag.BoolP("recursive", "r", false, "enable recursive searching and analysis")
	wholePtr := flag.BoolP("whole", "w", false, "analyze the path as a whole (auto-detects if file or directory)")
	flags.isHelp = func() bool { return *helpPtr }
	flags.isVersion = func() bool { return *versionPtr }
	flags.isTree = func() bool { return *treePtr }
	flags.isProperties = func() bool { return *propertiesPtr }
	flags.isNoColor = func() bool { return *noColorPtr }
	flags.isDuplicates = func() bool { return *duplicatesPtr }
	flags.isRecursive = func() bool { return *recursivePtr }
	flags.isWhole = func() bool { return *wholePtr }
}

func setupStringOpts() {
	diskPtr := flag.StringP("disk", "m", "",
		"disk operations: 'list' to show all disks, or a disk name for info")
	searchPtr := flag.StringP("search", "e", "",
		"search for files by pattern (regex if it looks like one, substring otherwise)")
	excludingPtr := flag.StringP("excluding", "x", "", "exclude files matching regex pattern")
	sortByPtr := flag.String("sort-by", "", "sort files by: name, size, date")
	exportPtr := flag.String("export", "", "export results to file (json/csv)")
	flags.getDisk = func() string { return *diskPtr }
	flags.getSearch = func() string { return *searchPtr }
	flags.getExcluding = func() string { return *excludingPtr }
	flags.getSortBy = func() entity.SortBy { return entity.ParseSortBy(*sortByPtr) }
	flags.getExport = func() string { return *exportPtr }
}

func setupSizeOpt() {
	sizePtr := flag.StringP("size", "s", "auto",
		"show file sizes with specified unit (auto, b/bytes, kb/kilobytes, mb/megabytes, gb/gigabytes, tb/terabytes)")
	flag.Lookup("size").NoOptDefVal = "auto"
	flags.getSizeUnit = func() (entity.SizeUnit, bool, bool) {
		unit, err := entity.ParseSizeUnit(*sizePtr)
		if err != nil {
			fmte.PrintfErr("error: %v\n", err)
			fmte.PrintfErr("Available options are: auto, b/bytes, kb/kilobytes, mb/megabytes, gb/gigabytes, tb/terabytes\n")
			os.Exit(exitCodeInvalidArgs)
		}
		return unit, strings.EqualFold(*sizePtr, "auto"), flag.Lookup("size").Changed
	}
}

func setupMinSizeOpt() {
	minSizePtr := flag.String("min-size", "0B", "minimum file size to list (e.g. 1KB)")
	flags.getMinSize = func() uint64 {
		minSize, err := humanize.ParseBytes(*minSizePtr)
		if err != nil {
			fmte.PrintfErr("error: invalid min-size: %v\n", err)
			os.Exit(exitCodeInvalidArgs)
		}
		return minSize
	}
}

func setupExclusionsOpt() {
	const exclusionsFlag = "exclusions"
	excludesListFilePathPtr := flag.String(exclusionsFlag, "",
		"path to file containing newline separated list of file/directory names to skip during walks\n"+
			"(defaults to: "+strings.Join(firstFewExclusions(), ", ")+" etc.)")
	flags.getExclusions = func() set.Set[string] {
		excludesListFilePath := *excludesListFilePathPtr
		if excludesListFilePath == "" {
			return exclusionsFromLines(defaultExclusionsStr)
		}
		rawContents, err := os.ReadFile(excludesListFilePath)
		if err != nil {
			fmte.PrintfErr("error: argument to flag --%s isn't readable: %+v\n", exclusionsFlag, err)
			flag.Usage()
			os.Exit(exitCodeExclusionFilesError)
		}
		contents := strings.ReplaceAll(string(rawContents), "\r\n", "\n") // Windows
		return exclusionsFromLines(contents)
	}
}

func exclusionsFromLines(lineSeparated string) set.Set[string] {
	exclusions := set.NewSet[string]()
	for _, line := range strings.Split(lineSeparated, "\n") {
		if strings.TrimSpace(line) != "" {
			exclusions.Add(line)
		}
	}
	return exclusions
}

func firstFewExclusions() []string {
	lines := []string{}
	for _, line := range strings.Split(defaultExclusionsStr, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		if len(lines) == 3 {
			break
		}
	}
	return lines
}

func setupUsage() {
	flag.Usage = func() {
		fmte.PrintfErr("Run \"filebyte --help\" for usage\n")
	}
}

func showHelpAndExit() {
	fmt.Printf(`filebyte lists files and directories with sizes, types, timestamps and
permissions; renders directory trees; finds candidate duplicate files; and
exports results to JSON or CSV.

Usage:
	 filebyte <flags> [path]

where,
	path    Path to a file or directory (defaults to the current directory)

flags: (all optional)
`)
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
	os.Exit(exitCodeSuccess)
}

func handlePanic() {
	err := recover()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Program exited unexpectedly. "+
			"Please report the below error to the author:\n"+
			"%+v\n", err)
		_, _ = fmt.Fprintln(os.Stderr, string(debug.Stack()))
		os.Exit(exitCodeInvalidArgs)
	}
}

func setupFlags() {
	setupBoolOpts()
	setupStringOpts()
	setupSizeOpt()
	setupMinSizeOpt()
	setupExclusionsOpt()
	setupUsage()
	flag.CommandLine.SortFlags = false
}

func main() {
	defer handlePanic()
	setupFlags()
	flag.Parse()
	if flags.isHelp() {
		showHelpAndExit()
	}
	if flags.isVersion() {
		fmt.Printf("filebyte %s\n", version)
		os.Exit(exitCodeSuccess)
	}
	if flags.isNoColor() {
		display.DisableColor()
	}

	unit, autoSize, shown := flags.getSizeUnit()
	opts := inspectOptions{
		searchPattern:  flags.getSearch(),
		excludePattern: flags.getExcluding(),
		sortBy:         flags.getSortBy(),
		recursive:      flags.isRecursive(),
		exclusions:     flags.getExclusions(),
		minSize:        flags.getMinSize(),
		sizeUnit:       unit,
		autoSize:       autoSize,
		showSize:       shown,
		properties:     flags.isProperties(),
		exportPath:     flags.getExport(),
	}

	if disk := flags.getDisk(); disk != "" {
		var diskErr error
		if disk == "list" {
			diskErr = listDisks(opts)
		} else {
			diskErr = inspectDisk(disk, flags.isTree(), flags.isDuplicates(), opts)
		}
		if diskErr != nil {
			fmte.PrintfErr("error: %v\n", diskErr)
			os.Exit(exitCodeDiskError)
		}
		os.Exit(exitCodeSuccess)
	}

	path := resolvePath(flag.Arg(0))
	var runErr error
	switch {
	case flags.isWhole():
		runErr = inspectWhole(path, opts)
	case flags.isTree():
		runErr = printTree(path)
	case flags.isDuplicates():
		runErr = findDuplicates(path, opts)
	case flags.isProperties():
		runErr = runProperties(path, opts)
	default:
		runErr = listFiles(path, opts)
	}
	if runErr != nil {
		fmte.PrintfErr("error: %v\n", runErr)
		os.Exit(exitCodeForError(runErr))
	}
}

// runProperties dispatches the properties flow on the path kind: single-file
// panel for files, full statistics report for directories.
func runProperties(path string, opts inspectOptions) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("path \"%s\" does not exist", path)
	}
	if info.Mode().IsRegular() {
		return inspectWhole(path, opts)
	}
	return analyzeDirectory(path, opts)
}

func exitCodeForError(err error) int {
	if errors.Is(err, errExport) {
		return exitCodeExportError
	}
	return exitCodeRootPathError
}
