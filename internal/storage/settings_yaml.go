package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"runcat/internal/ui/preferences"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const settingsFileName = ".runcat.yaml"

type yamlFile struct {
	Settings yamlSettings `yaml:"settings"`
}

// Values are decimal strings so the file stays a flat key/value section.
type yamlSettings struct {
	SleepingThreshold    string `yaml:"sleeping_threshold"`
	AnimationMinDuration string `yaml:"animation_min_duration"`
	AnimationMaxDuration string `yaml:"animation_max_duration"`
	HDDActivityIndicator string `yaml:"hdd_activity_indicator"`
}

// DefaultPath returns the settings file location in the user's home directory.
func DefaultPath() string {
	return filepath.Join(xdg.Home, settingsFileName)
}

// LoadSettings reads user preferences from YAML.
// A missing file yields defaults; missing or malformed keys keep their default.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlFile
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData.Settings)
	return settings.Normalize(), nil
}

// SaveSettings writes every key of the user preferences to YAML.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlFile{Settings: yamlSettings{
		SleepingThreshold:    strconv.Itoa(settings.SleepingThreshold),
		AnimationMinDuration: strconv.Itoa(settings.AnimationMinDuration),
		AnimationMaxDuration: strconv.Itoa(settings.AnimationMaxDuration),
		HDDActivityIndicator: formatBool(settings.HDDActivityIndicator),
	}}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if value, err := strconv.Atoi(strings.TrimSpace(fileData.SleepingThreshold)); err == nil {
		settings.SleepingThreshold = value
	}
	if value, err := strconv.Atoi(strings.TrimSpace(fileData.AnimationMinDuration)); err == nil {
		settings.AnimationMinDuration = value
	}
	if value, err := strconv.Atoi(strings.TrimSpace(fileData.AnimationMaxDuration)); err == nil {
		settings.AnimationMaxDuration = value
	}
	if value, ok := parseBool(fileData.HDDActivityIndicator); ok {
		settings.HDDActivityIndicator = value
	}
}

func formatBool(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}
