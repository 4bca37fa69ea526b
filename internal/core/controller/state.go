package controller

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"runcat/internal/core/model"
)

// recolorDivisor scales the CPU percentage in the recolor gate.
const recolorDivisor = 25

// DiskSampler returns the current cumulative disk counters.
type DiskSampler func() (model.DiskCounters, error)

// State is the animation state advanced once per tick.
type State struct {
	FrameIndex int
	Color      model.StatusColor
	CPUPercent float64

	disk       model.DiskCounters
	diskPrimed bool
}

// NewState returns the state of an animation that has not ticked yet.
func NewState() State {
	return State{FrameIndex: 1, Color: model.StatusNormal}
}

// Interval maps a CPU percentage onto [MinDuration, MaxDuration].
// Higher load yields a shorter interval.
func Interval(config model.ControllerConfig, cpuPercent float64) time.Duration {
	minDuration, maxDuration := config.MinDuration, config.MaxDuration
	if maxDuration < minDuration {
		minDuration, maxDuration = maxDuration, minDuration
	}
	percent := clampPercent(cpuPercent)
	minMillis := float64(minDuration) / float64(time.Millisecond)
	spanMillis := float64(maxDuration-minDuration) / float64(time.Millisecond)
	millis := minMillis + spanMillis*(100-percent)/100
	return time.Duration(math.Round(millis)) * time.Millisecond
}

// Step advances the state by one tick. sampleDisk is only invoked when the
// disk indicator is enabled and the recolor gate passes.
func (state *State) Step(config model.ControllerConfig, frameCount int, cpuPercent float64, sampleDisk DiskSampler) Event {
	percent := clampPercent(cpuPercent)
	state.CPUPercent = percent

	sleeping := percent < config.SleepingThreshold
	frame := 0
	if !sleeping && frameCount > 1 {
		if state.FrameIndex < 1 || state.FrameIndex >= frameCount {
			state.FrameIndex = 1
		}
		frame = state.FrameIndex
		state.FrameIndex = nextFrame(state.FrameIndex, frameCount)
	}

	state.updateColor(config, percent, sampleDisk)

	return Event{
		Frame:      frame,
		Color:      state.Color,
		Sleeping:   sleeping,
		CPUPercent: percent,
		Tooltip:    Tooltip(percent),
		Interval:   Interval(config, percent),
	}
}

// Tooltip formats the CPU percentage shown on hover.
func Tooltip(cpuPercent float64) string {
	return fmt.Sprintf("CPU: %s%%", strconv.FormatFloat(cpuPercent, 'f', -1, 64))
}

func (state *State) updateColor(config model.ControllerConfig, percent float64, sampleDisk DiskSampler) {
	if !config.DiskIndicator {
		state.Color = model.StatusNormal
		state.diskPrimed = false
		return
	}
	if float64(state.FrameIndex+1) <= percent/recolorDivisor || sampleDisk == nil {
		return
	}

	counters, err := sampleDisk()
	if err != nil {
		return
	}
	if !state.diskPrimed {
		state.disk = counters
		state.diskPrimed = true
		return
	}

	switch {
	case counters.ReadBytes > state.disk.ReadBytes:
		state.Color = model.StatusDiskRead
	case counters.WriteBytes > state.disk.WriteBytes:
		state.Color = model.StatusDiskWrite
	default:
		state.Color = model.StatusNormal
	}
	state.disk = counters
}

func nextFrame(index, frameCount int) int {
	if index >= frameCount-1 {
		return 1
	}
	return index + 1
}

func clampPercent(percent float64) float64 {
	if math.IsNaN(percent) || percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
