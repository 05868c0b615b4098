package ui

import (
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/bibshelf/internal/config"
	"github.com/ytget/bibshelf/internal/filedialog"
)

// DialogService opens native file dialogs described by filedialog configurations
type DialogService struct {
	window   fyne.Window
	settings *config.Settings
}

// NewDialogService creates a dialog service for the window
func NewDialogService(window fyne.Window, settings *config.Settings) *DialogService {
	return &DialogService{window: window, settings: settings}
}

// ShowFileOpen asks for an existing file and passes its path to onChosen.
// Cancelling the dialog calls nothing.
func (ds *DialogService) ShowFileOpen(cfg *filedialog.Configuration, onChosen func(path string)) {
	ds.restoreLastFilter(cfg)

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ds.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ds.recordChoice(cfg, path)
		onChosen(path)
	}, ds.window)

	ds.apply(fd, cfg)
	fd.Show()
}

// ShowFileSave asks for a target file and passes its path to onChosen.
// The dialog creates the file; callers overwrite it.
func (ds *DialogService) ShowFileSave(cfg *filedialog.Configuration, onChosen func(path string)) {
	ds.restoreLastFilter(cfg)

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ds.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		ds.recordChoice(cfg, path)
		onChosen(path)
	}, ds.window)

	ds.apply(fd, cfg)
	if name := cfg.InitialFileName(); name != "" {
		fd.SetFileName(name)
	}
	fd.Show()
}

// ShowDirectory asks for a directory, remembers it as the working directory
// and passes its path to onChosen.
func (ds *DialogService) ShowDirectory(cfg *filedialog.Configuration, onChosen func(path string)) {
	ds.showDirectory(cfg, true, onChosen)
}

// PickDirectory asks for a directory without touching settings. Forms that
// only save on confirmation use it.
func (ds *DialogService) PickDirectory(cfg *filedialog.Configuration, onChosen func(path string)) {
	ds.showDirectory(cfg, false, onChosen)
}

func (ds *DialogService) showDirectory(cfg *filedialog.Configuration, persist bool, onChosen func(path string)) {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ds.window)
			return
		}
		if uri == nil {
			return
		}
		ds.directoryChosen(uri.Path(), persist, onChosen)
	}, ds.window)

	if location, ok := cfg.DirectoryURI(); ok {
		fd.SetLocation(location)
	}
	fd.Show()
}

func (ds *DialogService) directoryChosen(path string, persist bool, onChosen func(path string)) {
	if persist && ds.settings != nil {
		ds.settings.SetWorkingDirectory(path)
	}
	onChosen(path)
}

func (ds *DialogService) apply(fd *dialog.FileDialog, cfg *filedialog.Configuration) {
	if location, ok := cfg.DirectoryURI(); ok {
		fd.SetLocation(location)
	}
	if filter := filedialog.ToFyneFilter(cfg.ActiveFilters()...); filter != nil {
		fd.SetFilter(filter)
	}
	if size := ds.window.Canvas().Size(); size.Width > 0 && size.Height > 0 {
		fd.Resize(size)
	}
}

// restoreLastFilter preselects the filter chosen in an earlier dialog when
// this configuration offers it too.
func (ds *DialogService) restoreLastFilter(cfg *filedialog.Configuration) {
	if ds.settings == nil || cfg.SelectedExtensionFilter() != nil {
		return
	}
	last := ds.settings.GetLastFilter()
	if last == "" {
		return
	}
	for _, f := range cfg.ExtensionFilters() {
		if f.Description == last {
			cfg.SetSelectedExtensionFilter(f)
			return
		}
	}
}

// recordChoice stores the filter matching the chosen file as the selected one
// and remembers the file's directory for the next dialog.
func (ds *DialogService) recordChoice(cfg *filedialog.Configuration, path string) {
	if f := cfg.FilterFor(path); f != nil {
		cfg.SetSelectedExtensionFilter(f)
		if ds.settings != nil {
			ds.settings.SetLastFilter(f.Description)
		}
	}
	if ds.settings != nil {
		ds.settings.SetWorkingDirectory(filepath.Dir(path))
	}
	log.Printf("File chosen: %s", path)
}
