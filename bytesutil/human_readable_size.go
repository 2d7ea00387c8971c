package bytesutil

import "fmt"

const (
	KIBI uint64 = 1024        // 1024 power 1 (2 power 10)
	MEBI        = KIBI * KIBI // 1024 power 2 (2 power 20)
	GIBI        = MEBI * KIBI // 1024 power 3 (2 power 30)
	TEBI        = GIBI * KIBI // 1024 power 4 (2 power 40)
)

// AutoFormat renders a byte count using the largest 1024-based unit in which
// the magnitude is at least 1. Bytes are rendered as an integer, every other
// unit with two decimal places.
func AutoFormat(size uint64) string {
	switch {
	case size < KIBI:
		return fmt.Sprintf("%d B", size)
	case size < MEBI:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(KIBI))
	case size < GIBI:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(MEBI))
	case size < TEBI:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(GIBI))
	default:
		return fmt.Sprintf("%.2f TB", float64(size)/float64(TEBI))
	}
}
