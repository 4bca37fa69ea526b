package controller

import (
	"errors"
	"testing"
	"time"

	"runcat/internal/core/model"
)

func testConfig() model.ControllerConfig {
	return model.ControllerConfig{
		SleepingThreshold: 15,
		MinDuration:       50 * time.Millisecond,
		MaxDuration:       500 * time.Millisecond,
	}
}

func TestIntervalBoundsAndMonotonic(t *testing.T) {
	config := testConfig()
	previous := Interval(config, 0)
	for percent := 0.0; percent <= 100; percent += 0.5 {
		interval := Interval(config, percent)
		if interval < config.MinDuration || interval > config.MaxDuration {
			t.Fatalf("interval(%v) = %v, outside [%v, %v]", percent, interval, config.MinDuration, config.MaxDuration)
		}
		if interval > previous {
			t.Fatalf("interval(%v) = %v increased from %v", percent, interval, previous)
		}
		previous = interval
	}
}

func TestIntervalEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		expected time.Duration
	}{
		{name: "idle", percent: 0, expected: 500 * time.Millisecond},
		{name: "full load", percent: 100, expected: 50 * time.Millisecond},
		{name: "ten percent", percent: 10, expected: 455 * time.Millisecond},
		{name: "below range clamps", percent: -5, expected: 500 * time.Millisecond},
		{name: "above range clamps", percent: 140, expected: 50 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interval(testConfig(), tt.percent); got != tt.expected {
				t.Errorf("Interval(%v) = %v, expected %v", tt.percent, got, tt.expected)
			}
		})
	}
}

func TestIntervalInvertedRange(t *testing.T) {
	config := testConfig()
	config.MinDuration, config.MaxDuration = config.MaxDuration, config.MinDuration

	if got := Interval(config, 100); got != 50*time.Millisecond {
		t.Errorf("expected 50ms at full load, got %v", got)
	}
	if got := Interval(config, 0); got != 500*time.Millisecond {
		t.Errorf("expected 500ms when idle, got %v", got)
	}
}

func TestStepSleepingKeepsFrameZero(t *testing.T) {
	state := NewState()
	config := testConfig()

	for i := 0; i < 5; i++ {
		event := state.Step(config, 6, 10, nil)
		if event.Frame != 0 || !event.Sleeping {
			t.Fatalf("tick %d: expected sleeping frame 0, got frame %d sleeping=%v", i, event.Frame, event.Sleeping)
		}
		if event.Tooltip != "CPU: 10%" {
			t.Errorf("expected tooltip %q, got %q", "CPU: 10%", event.Tooltip)
		}
		if event.Interval != 455*time.Millisecond {
			t.Errorf("expected 455ms interval, got %v", event.Interval)
		}
	}
	if state.FrameIndex != 1 {
		t.Errorf("frame index advanced while sleeping: %d", state.FrameIndex)
	}
}

func TestStepRunningCycleSkipsSleepingPose(t *testing.T) {
	state := NewState()
	config := testConfig()

	var frames []int
	for i := 0; i < 12; i++ {
		event := state.Step(config, 6, 100, nil)
		if event.Interval != config.MinDuration {
			t.Fatalf("expected min duration at full load, got %v", event.Interval)
		}
		frames = append(frames, event.Frame)
	}

	expected := []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2}
	for i := range expected {
		if frames[i] != expected[i] {
			t.Fatalf("frames = %v, expected %v", frames, expected)
		}
	}
}

func TestStepResumesAfterSleeping(t *testing.T) {
	state := NewState()
	config := testConfig()

	state.Step(config, 6, 80, nil)
	state.Step(config, 6, 80, nil)
	if event := state.Step(config, 6, 1, nil); event.Frame != 0 {
		t.Fatalf("expected sleeping frame, got %d", event.Frame)
	}
	if event := state.Step(config, 6, 80, nil); event.Frame != 3 {
		t.Errorf("expected animation to resume at frame 3, got %d", event.Frame)
	}
}

func TestStepTooltipKeepsFraction(t *testing.T) {
	state := NewState()
	if event := state.Step(testConfig(), 6, 42.5, nil); event.Tooltip != "CPU: 42.5%" {
		t.Errorf("unexpected tooltip %q", event.Tooltip)
	}
}

type diskSequence struct {
	samples []model.DiskCounters
	calls   int
	err     error
}

func (seq *diskSequence) sample() (model.DiskCounters, error) {
	if seq.err != nil {
		return model.DiskCounters{}, seq.err
	}
	index := seq.calls
	if index >= len(seq.samples) {
		index = len(seq.samples) - 1
	}
	seq.calls++
	return seq.samples[index], nil
}

func TestStepDiskActivityColors(t *testing.T) {
	config := testConfig()
	config.DiskIndicator = true

	tests := []struct {
		name     string
		samples  []model.DiskCounters
		expected model.StatusColor
	}{
		{
			name:     "read increase",
			samples:  []model.DiskCounters{{ReadBytes: 100, WriteBytes: 100}, {ReadBytes: 200, WriteBytes: 100}},
			expected: model.StatusDiskRead,
		},
		{
			name:     "write increase",
			samples:  []model.DiskCounters{{ReadBytes: 100, WriteBytes: 100}, {ReadBytes: 100, WriteBytes: 300}},
			expected: model.StatusDiskWrite,
		},
		{
			name:     "read wins over write",
			samples:  []model.DiskCounters{{ReadBytes: 100, WriteBytes: 100}, {ReadBytes: 101, WriteBytes: 300}},
			expected: model.StatusDiskRead,
		},
		{
			name:     "no activity",
			samples:  []model.DiskCounters{{ReadBytes: 100, WriteBytes: 100}, {ReadBytes: 100, WriteBytes: 100}},
			expected: model.StatusNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			seq := &diskSequence{samples: tt.samples}

			first := state.Step(config, 6, 20, seq.sample)
			if first.Color != model.StatusNormal {
				t.Fatalf("baseline tick changed color to %v", first.Color)
			}
			second := state.Step(config, 6, 20, seq.sample)
			if second.Color != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, second.Color)
			}
		})
	}
}

func TestStepDiskColorResetsWhenIdle(t *testing.T) {
	config := testConfig()
	config.DiskIndicator = true
	state := NewState()
	seq := &diskSequence{samples: []model.DiskCounters{{ReadBytes: 1}, {ReadBytes: 2}, {ReadBytes: 2}}}

	state.Step(config, 6, 20, seq.sample)
	if event := state.Step(config, 6, 20, seq.sample); event.Color != model.StatusDiskRead {
		t.Fatalf("expected disk_read, got %v", event.Color)
	}
	if event := state.Step(config, 6, 20, seq.sample); event.Color != model.StatusNormal {
		t.Errorf("expected normal after idle sample, got %v", event.Color)
	}
}

func TestStepRecolorGate(t *testing.T) {
	config := testConfig()
	config.DiskIndicator = true
	state := NewState()
	seq := &diskSequence{samples: []model.DiskCounters{{ReadBytes: 1}}}

	// At full load the gate needs a post-advance frame index of at least 4.
	state.Step(config, 6, 100, seq.sample)
	state.Step(config, 6, 100, seq.sample)
	if seq.calls != 0 {
		t.Fatalf("disk sampled before gate opened: %d calls", seq.calls)
	}
	state.Step(config, 6, 100, seq.sample)
	if seq.calls != 1 {
		t.Errorf("expected one disk sample once the gate opened, got %d", seq.calls)
	}
}

func TestStepDiskErrorKeepsColor(t *testing.T) {
	config := testConfig()
	config.DiskIndicator = true
	state := NewState()
	seq := &diskSequence{samples: []model.DiskCounters{{ReadBytes: 1}, {ReadBytes: 5}}}

	state.Step(config, 6, 20, seq.sample)
	state.Step(config, 6, 20, seq.sample)
	seq.err = errors.New("boom")
	if event := state.Step(config, 6, 20, seq.sample); event.Color != model.StatusDiskRead {
		t.Errorf("expected color to stay disk_read on error, got %v", event.Color)
	}
}

func TestStepDisabledIndicatorResetsColor(t *testing.T) {
	config := testConfig()
	state := NewState()
	state.Color = model.StatusDiskWrite

	called := false
	event := state.Step(config, 6, 20, func() (model.DiskCounters, error) {
		called = true
		return model.DiskCounters{}, nil
	})
	if called {
		t.Error("disk sampled while indicator disabled")
	}
	if event.Color != model.StatusNormal {
		t.Errorf("expected normal color, got %v", event.Color)
	}
}
