//go:build linux

package platform

import (
	"strings"
	"testing"
)

func TestBuildDesktopEntry(t *testing.T) {
	entry := buildDesktopEntry("RunCat", "/opt/run cat/runcat")

	for _, expected := range []string{
		"Name=RunCat\n",
		`Exec="/opt/run cat/runcat"`,
		"Icon=runcat\n",
		"X-GNOME-Autostart-enabled=true",
	} {
		if !strings.Contains(entry, expected) {
			t.Errorf("expected %q in desktop entry:\n%s", expected, entry)
		}
	}
}

func TestAutostartRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	service := NewService()

	enabled, err := service.AutostartEnabled("RunCat")
	if err != nil || enabled {
		t.Fatalf("expected disabled before enable, got %v, %v", enabled, err)
	}

	if err := service.EnableAutostart("RunCat", "/usr/bin/runcat"); err != nil {
		t.Fatalf("EnableAutostart failed: %v", err)
	}
	if enabled, err := service.AutostartEnabled("RunCat"); err != nil || !enabled {
		t.Fatalf("expected enabled, got %v, %v", enabled, err)
	}

	if err := service.DisableAutostart("RunCat"); err != nil {
		t.Fatalf("DisableAutostart failed: %v", err)
	}
	if err := service.DisableAutostart("RunCat"); err != nil {
		t.Errorf("second disable should be a no-op, got %v", err)
	}
	if enabled, _ := service.AutostartEnabled("RunCat"); enabled {
		t.Error("expected disabled after removal")
	}
}

func TestEnableAutostartValidatesInput(t *testing.T) {
	service := NewService()
	if err := service.EnableAutostart("", "/usr/bin/runcat"); err == nil {
		t.Error("expected error for empty app name")
	}
	if err := service.EnableAutostart("RunCat", ""); err == nil {
		t.Error("expected error for empty exec path")
	}
}
