package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bibshelf/internal/config"
	"github.com/ytget/bibshelf/internal/filedialog"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	dialogs  *DialogService
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	workingDirEntry  *widget.Entry
	maxParallelEntry *widget.Entry
	languageSelect   *widget.Select
	languageCodes    map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a save.
func NewSettingsDialog(settings *config.Settings, dialogs *DialogService, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		dialogs:  dialogs,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Working directory selection
	sd.workingDirEntry = widget.NewEntry()
	sd.workingDirEntry.SetPlaceHolder("Working directory path")

	browseDirBtn := widget.NewButton(IconFolder, sd.onBrowseDirectory)
	workingDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.workingDirEntry)

	// Max parallel extractions
	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-8")

	// Language selection shows display names, stores codes
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel("Working Directory:"),
		workingDirRow,

		widget.NewLabel("Parallel PDF Extractions:"),
		sd.maxParallelEntry,

		widget.NewSeparator(),

		widget.NewLabel("Language:"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.workingDirEntry.SetText(sd.settings.GetWorkingDirectory())
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelExtractions()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory opens a folder dialog starting at the typed directory
func (sd *SettingsDialog) onBrowseDirectory() {
	cfg := filedialog.NewBuilder().
		WithInitialDirectory(sd.workingDirEntry.Text).
		Build()

	sd.dialogs.PickDirectory(cfg, sd.onDirectoryChosen)
}

// onDirectoryChosen only fills the entry; the value is stored on Save
func (sd *SettingsDialog) onDirectoryChosen(path string) {
	sd.workingDirEntry.SetText(path)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the entered values; invalid entries keep the stored value
func (sd *SettingsDialog) apply() {
	if dir := sd.workingDirEntry.Text; dir != "" {
		sd.settings.SetWorkingDirectory(dir)
	}

	if maxParallelStr := sd.maxParallelEntry.Text; maxParallelStr != "" {
		if maxParallel, err := strconv.Atoi(maxParallelStr); err == nil {
			sd.settings.SetMaxParallelExtractions(maxParallel)
		}
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
