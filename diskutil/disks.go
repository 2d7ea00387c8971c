// Package diskutil enumerates mounted volumes and their usage for the disk
// display modes. It only reads; nothing here mounts or modifies volumes.
package diskutil

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// Volume is one mounted filesystem with its usage numbers.
type Volume struct {
	Device     string
	Mountpoint string
	Fstype     string
	Total      uint64
	Used       uint64
	Available  uint64
}

// UsedPercent is the used fraction of the volume in percent.
func (v Volume) UsedPercent() float64 {
	if v.Total == 0 {
		return 0
	}
	return float64(v.Used) / float64(v.Total) * 100.0
}

// ListVolumes returns every physical mounted volume. Volumes whose usage
// cannot be read are listed with zero sizes rather than dropped.
func ListVolumes() ([]Volume, error) {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return nil, fmt.Errorf("couldn't enumerate disks: %w", err)
	}
	volumes := make([]Volume, 0, len(partitions))
	for _, p := range partitions {
		v := Volume{Device: p.Device, Mountpoint: p.Mountpoint, Fstype: p.Fstype}
		if usage, usageErr := disk.Usage(p.Mountpoint); usageErr == nil {
			v.Total = usage.Total
			v.Used = usage.Used
			v.Available = usage.Free
		}
		volumes = append(volumes, v)
	}
	return volumes, nil
}

// FindVolume locates a volume by device name or mountpoint.
func FindVolume(name string) (Volume, error) {
	volumes, err := ListVolumes()
	if err != nil {
		return Volume{}, err
	}
	for _, v := range volumes {
		if v.Device == name || v.Mountpoint == name {
			return v, nil
		}
	}
	return Volume{}, fmt.Errorf("disk \"%s\" not found", name)
}
