package tray

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/systray"
)

// statusRefreshInterval limits how often the menu is rebuilt for the status line.
const statusRefreshInterval = time.Second

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnSettings func()
	OnClose    func()
}

// Manager handles system tray state.
type Manager struct {
	host        Host
	callbacks   Callbacks
	versionItem *fyne.MenuItem
	statusItem  *fyne.MenuItem
	setTooltip  func(string)
	refreshedAt time.Time
}

// New creates a tray manager and installs its menu.
func New(host Host, version string, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:       host,
		callbacks:  callbacks,
		setTooltip: systray.SetTooltip,
	}

	manager.versionItem = fyne.NewMenuItem("v. "+version, nil)
	manager.versionItem.Disabled = true

	manager.statusItem = fyne.NewMenuItem("CPU: --", nil)
	manager.statusItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetIcon replaces the tray icon.
func (manager *Manager) SetIcon(icon fyne.Resource) {
	if manager.host != nil && icon != nil {
		manager.host.SetSystemTrayIcon(icon)
	}
}

// SetStatus updates the tooltip on every call and the menu status line at most
// once per statusRefreshInterval.
func (manager *Manager) SetStatus(status string) {
	if manager.setTooltip != nil {
		manager.setTooltip(status)
	}
	manager.statusItem.Label = status
	if time.Since(manager.refreshedAt) < statusRefreshInterval {
		return
	}
	manager.refreshedAt = time.Now()
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.host == nil {
		return
	}
	manager.host.SetSystemTrayMenu(fyne.NewMenu("RunCat",
		manager.versionItem,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", func() {
			if manager.callbacks.OnSettings != nil {
				manager.callbacks.OnSettings()
			}
		}),
		fyne.NewMenuItem("Close", func() {
			if manager.callbacks.OnClose != nil {
				manager.callbacks.OnClose()
			}
		}),
	))
}
