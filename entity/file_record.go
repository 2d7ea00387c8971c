package entity

import "fmt"

// FileTypeDirectory is the sentinel type string for directory records.
const FileTypeDirectory = "directory"

// FileTypeUnknown is the type string used when content sniffing yields nothing.
const FileTypeUnknown = "unknown"

// FileRecord is a normalized description of one filesystem entry observed
// during a single walk. Records are snapshots: they are never updated after
// creation, even if the underlying entry changes.
//
// Created and Modified are formatted timestamps ("2006-01-02 15:04:05 UTC");
// an empty string means the platform did not report the timestamp.
// Field names are identical across JSON and CSV exports so that a record
// round-trips through either format.
type FileRecord struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Size        uint64 `json:"size"`
	SizeHuman   string `json:"size_human"`
	FileType    string `json:"file_type"`
	Created     string `json:"created,omitempty"`
	Modified    string `json:"modified,omitempty"`
	Permissions string `json:"permissions"`
	IsDirectory bool   `json:"is_directory"`
}

func (r FileRecord) String() string {
	return fmt.Sprintf("{%s %s %s}", r.Path, r.SizeHuman, r.FileType)
}
