package preferences

import (
	"time"

	"runcat/internal/core/model"
)

// Bounds accepted for each setting.
const (
	MinSleepingThreshold = 1
	MaxSleepingThreshold = 99
	MinFrameDuration     = 10
	MaxFrameDuration     = 10000
)

// Settings defines editable user preferences.
type Settings struct {
	SleepingThreshold    int
	AnimationMinDuration int
	AnimationMaxDuration int
	HDDActivityIndicator bool
}

// DefaultSettings returns default settings for RunCat.
func DefaultSettings() Settings {
	return Settings{
		SleepingThreshold:    15,
		AnimationMinDuration: 50,
		AnimationMaxDuration: 500,
		HDDActivityIndicator: false,
	}
}

// Normalize clamps every value into its bounds and orders the durations so
// that the minimum never exceeds the maximum.
func (settings Settings) Normalize() Settings {
	settings.SleepingThreshold = clamp(settings.SleepingThreshold, MinSleepingThreshold, MaxSleepingThreshold)
	settings.AnimationMinDuration = clamp(settings.AnimationMinDuration, MinFrameDuration, MaxFrameDuration)
	settings.AnimationMaxDuration = clamp(settings.AnimationMaxDuration, MinFrameDuration, MaxFrameDuration)
	if settings.AnimationMinDuration > settings.AnimationMaxDuration {
		settings.AnimationMinDuration, settings.AnimationMaxDuration = settings.AnimationMaxDuration, settings.AnimationMinDuration
	}
	return settings
}

// ControllerConfig converts settings to the controller configuration.
func (settings Settings) ControllerConfig() model.ControllerConfig {
	return model.ControllerConfig{
		SleepingThreshold: float64(settings.SleepingThreshold),
		MinDuration:       time.Duration(settings.AnimationMinDuration) * time.Millisecond,
		MaxDuration:       time.Duration(settings.AnimationMaxDuration) * time.Millisecond,
		DiskIndicator:     settings.HDDActivityIndicator,
	}
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
