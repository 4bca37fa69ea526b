package controller

import (
	"time"

	"runcat/internal/core/model"
)

// Event describes what the tray should display after a tick.
type Event struct {
	Frame      int
	Color      model.StatusColor
	Sleeping   bool
	CPUPercent float64
	Tooltip    string
	Interval   time.Duration
	At         time.Time
}
