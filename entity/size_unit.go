package entity

import (
	"fmt"
	"strings"

	"github.com/execrooted/filebyte/bytesutil"
)

// SizeUnit is a fixed display unit for byte counts, selected with the
// --size flag. The zero value renders plain bytes.
type SizeUnit int8

const (
	Bytes SizeUnit = iota
	Kilobytes
	Megabytes
	Gigabytes
	Terabytes
)

// ParseSizeUnit maps a unit name (short or long form) to a SizeUnit.
// "auto" parses successfully; callers treat it as auto-scaling and never
// call Format with it.
func ParseSizeUnit(s string) (SizeUnit, error) {
	switch strings.ToLower(s) {
	case "b", "bytes", "auto":
		return Bytes, nil
	case "kb", "kilobytes":
		return Kilobytes, nil
	case "mb", "megabytes":
		return Megabytes, nil
	case "gb", "gigabytes":
		return Gigabytes, nil
	case "tb", "terabytes":
		return Terabytes, nil
	default:
		return Bytes, fmt.Errorf("invalid size unit: %s", s)
	}
}

// Format renders size in this unit, two decimal places for non-byte units.
func (u SizeUnit) Format(size uint64) string {
	switch u {
	case Kilobytes:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(bytesutil.KIBI))
	case Megabytes:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(bytesutil.MEBI))
	case Gigabytes:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(bytesutil.GIBI))
	case Terabytes:
		return fmt.Sprintf("%.2f TB", float64(size)/float64(bytesutil.TEBI))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
