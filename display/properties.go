package display

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/execrooted/filebyte/entity"
	"github.com/execrooted/filebyte/filesutil"
	"github.com/execrooted/filebyte/fmte"
	"github.com/execrooted/filebyte/service"
)

// ShowFileProperties prints the analysis panel for a single regular file.
func ShowFileProperties(path string, record entity.FileRecord, formatSize SizeFormatter) {
	sizeStr := record.SizeHuman
	if formatSize != nil {
		sizeStr = formatSize(record.Size)
	}
	canonical := record.Path
	if abs, err := filepath.Abs(path); err == nil {
		canonical = abs
	}
	fmte.Printf("\nFile Analysis:\n")
	fmte.Println(strings.Repeat("─", separatorWidth))
	fmte.Printf("Name: %s\n", dirName.Sprint(record.Name))
	fmte.Printf("Path: %s\n", canonical)
	fmte.Printf("Size: %s\n", fileSize.Sprint(sizeStr))
	fmte.Printf("Type: %s\n", typeName.Sprint(record.FileType))
	fmte.Printf("Extension: %s\n", highlight.Sprint(extensionOf(record.Name)))
	fmte.Printf("Permissions: %s\n", timestamp.Sprint(detailedOrCompact(path, record)))
	if record.Created != "" {
		fmte.Printf("Created: %s\n", timestamp.Sprint(record.Created))
	}
	if record.Modified != "" {
		fmte.Printf("Modified: %s\n", timestamp.Sprint(record.Modified))
	}
}

// ShowDirectoryProperties prints the analysis panel for a directory treated
// as a whole.
func ShowDirectoryProperties(path string, record entity.FileRecord, formatSize SizeFormatter) {
	sizeStr := record.SizeHuman
	if formatSize != nil {
		sizeStr = formatSize(record.Size)
	}
	fmte.Printf("\nDirectory Analysis:\n")
	fmte.Println(strings.Repeat("─", separatorWidth))
	fmte.Printf("Name: %s\n", dirName.Sprint(record.Name))
	fmte.Printf("Path: %s\n", path)
	fmte.Printf("Size: %s\n", fileSize.Sprint(sizeStr))
	fmte.Printf("Permissions: %s\n", timestamp.Sprint(detailedOrCompact(path, record)))
	if record.Created != "" {
		fmte.Printf("Created: %s\n", timestamp.Sprint(record.Created))
	}
	if record.Modified != "" {
		fmte.Printf("Modified: %s\n", timestamp.Sprint(record.Modified))
	}
}

func detailedOrCompact(path string, record entity.FileRecord) string {
	info, err := os.Lstat(path)
	if err != nil {
		return record.Permissions
	}
	return service.DetailedPermissions(info.Mode(), info.IsDir())
}

// extensionOf reports the extension for the properties panel, handling
// dotfiles like ".bashrc" (extension "bashrc") and extensionless names
// ("none").
func extensionOf(name string) string {
	if strings.HasPrefix(name, ".") {
		parts := strings.Split(name, ".")
		if len(parts) >= 2 && parts[1] != "" {
			return strings.Join(parts[1:], ".")
		}
		return "none"
	}
	ext := filesutil.GetFileExt(name)
	if ext == "" {
		return "none"
	}
	return strings.TrimPrefix(ext, ".")
}
