package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/bibshelf/internal/config"
)

func TestSettingsDialog_LoadAndApply(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	settings.SetLanguage("pt")

	saved := false
	sd := NewSettingsDialog(settings, NewDialogService(window, settings), window, func() { saved = true })
	sd.loadCurrentSettings()

	if sd.languageSelect.Selected != "Português" {
		t.Errorf("Expected language 'Português' selected, got %s", sd.languageSelect.Selected)
	}
	if sd.maxParallelEntry.Text != "2" {
		t.Errorf("Expected max parallel '2', got %s", sd.maxParallelEntry.Text)
	}

	dir := t.TempDir()
	sd.workingDirEntry.SetText(dir)
	sd.maxParallelEntry.SetText("20")
	sd.languageSelect.SetSelected("English")
	sd.onSave(true)

	if !saved {
		t.Error("onSaved callback should run after saving")
	}
	if got := settings.GetWorkingDirectory(); got != dir {
		t.Errorf("Expected working directory %s, got %s", dir, got)
	}
	if got := settings.GetMaxParallelExtractions(); got != 8 {
		t.Errorf("Expected max parallel clamped to 8, got %d", got)
	}
	if got := settings.GetLanguage(); got != "en" {
		t.Errorf("Expected language 'en', got %s", got)
	}
}

func TestSettingsDialog_CancelKeepsSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	settings.SetMaxParallelExtractions(3)

	sd := NewSettingsDialog(settings, NewDialogService(window, settings), window, nil)
	sd.loadCurrentSettings()
	sd.maxParallelEntry.SetText("not a number")
	sd.onSave(false)

	if got := settings.GetMaxParallelExtractions(); got != 3 {
		t.Errorf("Cancel should keep max parallel 3, got %d", got)
	}

	// Invalid numbers are ignored on save as well
	sd.onSave(true)
	if got := settings.GetMaxParallelExtractions(); got != 3 {
		t.Errorf("Invalid entry should keep max parallel 3, got %d", got)
	}
}

func TestSettingsDialog_BrowseThenCancelKeepsWorkingDirectory(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	original := t.TempDir()
	settings.SetWorkingDirectory(original)

	dialogs := NewDialogService(window, settings)
	sd := NewSettingsDialog(settings, dialogs, window, nil)
	sd.loadCurrentSettings()

	browsed := t.TempDir()
	dialogs.directoryChosen(browsed, false, sd.onDirectoryChosen)

	if sd.workingDirEntry.Text != browsed {
		t.Errorf("Expected entry %s after browsing, got %s", browsed, sd.workingDirEntry.Text)
	}
	if got := settings.GetWorkingDirectory(); got != original {
		t.Errorf("Browsing should not store the directory, got %s", got)
	}

	sd.onSave(false)
	if got := settings.GetWorkingDirectory(); got != original {
		t.Errorf("Cancel should keep working directory %s, got %s", original, got)
	}
}
