package model

import "time"

// StatusColor selects the icon tint shown in the tray.
type StatusColor int

const (
	StatusNormal StatusColor = iota
	StatusDiskRead
	StatusDiskWrite
)

// String returns the lowercase name of the color.
func (color StatusColor) String() string {
	switch color {
	case StatusDiskRead:
		return "disk_read"
	case StatusDiskWrite:
		return "disk_write"
	default:
		return "normal"
	}
}

// StatusColors lists every color an icon set must provide.
var StatusColors = []StatusColor{StatusNormal, StatusDiskRead, StatusDiskWrite}

// ControllerConfig contains runtime settings for the animation controller.
type ControllerConfig struct {
	SleepingThreshold float64
	MinDuration       time.Duration
	MaxDuration       time.Duration
	DiskIndicator     bool
}

// DiskCounters holds cumulative byte counters summed over all block devices.
type DiskCounters struct {
	ReadBytes  uint64
	WriteBytes uint64
}
