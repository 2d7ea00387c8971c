package service

import (
	"io/fs"
	"time"

	"github.com/djherbis/times"
	"github.com/h2non/filetype"

	"github.com/execrooted/filebyte/bytesutil"
	"github.com/execrooted/filebyte/entity"
	"github.com/execrooted/filebyte/filesutil"
)

// TimestampLayout is the format of FileRecord.Created and FileRecord.Modified.
const TimestampLayout = "2006-01-02 15:04:05 UTC"

// NewFileRecord normalizes one directory entry into a FileRecord.
// path is the full path of the entry and info its lstat metadata.
//
// Directory sizes are the recursive total of everything beneath them,
// computed with an unfiltered sub-walk: even a shallow or filtered query
// reports the true aggregate size of each directory it lists. File types
// come from content signatures (magic bytes), never from the extension.
func NewFileRecord(path string, info fs.FileInfo) entity.FileRecord {
	size := filesutil.TreeSize(path)
	record := entity.FileRecord{
		Name:        info.Name(),
		Path:        path,
		Size:        size,
		SizeHuman:   bytesutil.AutoFormat(size),
		FileType:    sniffFileType(path, info),
		Modified:    formatTimestamp(info.ModTime()),
		Permissions: CompactPermissions(filesutil.IsWritable(info.Mode()), filesutil.IsParentWritable(path)),
		IsDirectory: info.IsDir(),
	}
	if ts, err := times.Lstat(path); err == nil && ts.HasBirthTime() {
		record.Created = formatTimestamp(ts.BirthTime())
	}
	return record
}

// sniffFileType classifies an entry: directories get the sentinel type, files
// are matched against the registry of known content signatures. Empty files,
// unreadable files and unrecognized signatures are all "unknown".
func sniffFileType(path string, info fs.FileInfo) string {
	if info.IsDir() {
		return entity.FileTypeDirectory
	}
	kind, err := filetype.MatchFile(path)
	if err != nil || kind == filetype.Unknown {
		return entity.FileTypeUnknown
	}
	return kind.MIME.Value
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp is the inverse of the record timestamp rendering. It returns
// the zero time and false for absent or malformed values.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
