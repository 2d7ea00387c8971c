package service

import "io/fs"

// Compact permission forms produced by CompactPermissions. The permission
// summary in Analyze compares against these exact strings.
const (
	PermReadOnly  = "r--"
	PermReadWrite = "rw-"
)

// CompactPermissions renders the 3-character capability summary for an entry.
// entryWritable is whether the entry's own mode carries a write bit;
// parentWritable is whether the containing directory can be modified, which
// stands in for "can this entry be deleted or renamed". Both inputs are
// passed explicitly so the function needs no filesystem access.
func CompactPermissions(entryWritable, parentWritable bool) string {
	if !entryWritable {
		if parentWritable {
			return "r-x"
		}
		return PermReadOnly
	}
	if parentWritable {
		return "rwx"
	}
	return PermReadWrite
}

// DetailedPermissions renders the 10-character POSIX-style string for a mode:
// a type character ('d' or '-') followed by the nine owner/group/other
// read/write/execute positions.
func DetailedPermissions(mode fs.FileMode, isDir bool) string {
	buf := [10]byte{}
	if isDir {
		buf[0] = 'd'
	} else {
		buf[0] = '-'
	}
	perm := mode.Perm()
	symbols := [3]byte{'r', 'w', 'x'}
	for i := 0; i < 9; i++ {
		if perm&(1<<(8-i)) != 0 {
			buf[i+1] = symbols[i%3]
		} else {
			buf[i+1] = '-'
		}
	}
	return string(buf[:])
}
