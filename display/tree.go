package display

import (
	"os"
	"path/filepath"

	"github.com/execrooted/filebyte/fmte"
)

// PrintTree renders the subtree under path with box-drawing connectors.
// The caller prints the root line itself; prefix carries the indentation
// accumulated along the way. Unreadable directories end their branch with a
// note instead of aborting the rest of the tree.
func PrintTree(path, prefix string) {
	entries, err := os.ReadDir(path)
	if err != nil {
		fmte.PrintfErr("Error reading directory %s: %v\n", path, err)
		return
	}
	for i, entry := range entries {
		isLast := i == len(entries)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		if entry.IsDir() {
			fmte.Printf("%s%s%s\n", prefix, connector, dirName.Sprint(entry.Name()))
			PrintTree(filepath.Join(path, entry.Name()), childPrefix)
		} else {
			fmte.Printf("%s%s%s\n", prefix, connector, entry.Name())
		}
	}
}
