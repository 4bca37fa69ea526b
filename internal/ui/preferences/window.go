package preferences

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

type credit struct {
	label string
	link  string
}

var credits = []credit{
	{label: "Original RunCat program: Kyome", link: "https://kyome.io/runcat/index.html?lang=en"},
	{label: "Cat icons: win0err", link: "https://github.com/win0err/gnome-runcat"},
}

// Window handles the settings dialog.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	threshold    *widget.Entry
	minDuration  *widget.Entry
	maxDuration  *widget.Entry
	hddIndicator *widget.Check
}

// New creates the settings window. It stays hidden until Show is called.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("RunCat Settings")

	threshold := boundedEntry(MinSleepingThreshold, MaxSleepingThreshold)
	minDuration := boundedEntry(MinFrameDuration, MaxFrameDuration)
	maxDuration := boundedEntry(MinFrameDuration, MaxFrameDuration)
	hddIndicator := widget.NewCheck("Color the cat on disk activity", nil)

	form := widget.NewForm(
		widget.NewFormItem("Sleeping threshold (%)", threshold),
		widget.NewFormItem("Minimal frame duration (ms)", minDuration),
		widget.NewFormItem("Maximal frame duration (ms)", maxDuration),
		widget.NewFormItem("", hddIndicator),
	)

	about := container.NewVBox(widget.NewLabelWithStyle("About", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, entry := range credits {
		about.Add(creditRow(entry))
	}

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, container.NewVBox(form, widget.NewSeparator(), about))
	window.SetContent(content)
	window.Resize(fyne.NewSize(460, 320))
	window.SetFixedSize(true)

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		threshold:    threshold,
		minDuration:  minDuration,
		maxDuration:  maxDuration,
		hddIndicator: hddIndicator,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = prefs.handleCancel
	window.SetCloseIntercept(prefs.handleCancel)

	return prefs
}

// Show displays the settings window with the current values.
func (prefs *Window) Show() {
	prefs.UpdateSettings(prefs.settings)
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the values last confirmed in the dialog.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.threshold.SetText(strconv.Itoa(settings.SleepingThreshold))
	prefs.minDuration.SetText(strconv.Itoa(settings.AnimationMinDuration))
	prefs.maxDuration.SetText(strconv.Itoa(settings.AnimationMaxDuration))
	prefs.hddIndicator.SetChecked(settings.HDDActivityIndicator)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if value, ok := parseBounded(prefs.threshold.Text, MinSleepingThreshold, MaxSleepingThreshold); ok {
		settings.SleepingThreshold = value
	}
	if value, ok := parseBounded(prefs.minDuration.Text, MinFrameDuration, MaxFrameDuration); ok {
		settings.AnimationMinDuration = value
	}
	if value, ok := parseBounded(prefs.maxDuration.Text, MinFrameDuration, MaxFrameDuration); ok {
		settings.AnimationMaxDuration = value
	}
	settings.HDDActivityIndicator = prefs.hddIndicator.Checked

	settings = settings.Normalize()
	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) handleCancel() {
	prefs.UpdateSettings(prefs.settings)
	prefs.window.Hide()
}

func boundedEntry(low, high int) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(fmt.Sprintf("%d-%d", low, high))
	entry.Validator = func(text string) error {
		if _, ok := parseBounded(text, low, high); !ok {
			return fmt.Errorf("enter a whole number between %d and %d", low, high)
		}
		return nil
	}
	return entry
}

func creditRow(entry credit) fyne.CanvasObject {
	link, err := url.Parse(entry.link)
	if err != nil {
		return widget.NewLabel(entry.label)
	}
	return container.NewHBox(widget.NewLabel(entry.label), widget.NewHyperlink(link.Host, link))
}

func parseBounded(value string, low, high int) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < low || parsed > high {
		return 0, false
	}
	return parsed, true
}
