package ui

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bibshelf/internal/config"
	"github.com/ytget/bibshelf/internal/filedialog"
	"github.com/ytget/bibshelf/internal/filetype"
	"github.com/ytget/bibshelf/internal/l10n"
	"github.com/ytget/bibshelf/internal/platform"
	"github.com/ytget/bibshelf/internal/search"
)

// SearchFunc runs a full-text search over the given files
type SearchFunc func(ctx context.Context, query string, paths []string) (*search.Result, error)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *l10n.Localization
	dialogs      *DialogService
	searcher     search.Searcher

	libraryLabel  *widget.Label
	folderLabel   *widget.Label
	openBtn       *widget.Button
	folderBtn     *widget.Button
	queryEntry    *widget.Entry
	searchBtn     *widget.Button
	exportBtn     *widget.Button
	progress      *widget.ProgressBarInfinite
	resultsTab    *SearchResultsTab
	tabs          *container.AppTabs
	libraryPath   string
	searchCancel  context.CancelFunc
	searchMutex   sync.Mutex
	searchTimeout time.Duration
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, searcher search.Searcher) *RootUI {
	settings := config.NewSettings(app)

	localization := l10n.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:        window,
		settings:      settings,
		localization:  localization,
		dialogs:       NewDialogService(window, settings),
		searcher:      searcher,
		searchTimeout: 5 * time.Minute,
	}

	window.SetTitle(localization.Lang(l10n.KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.openBtn = widget.NewButton(IconLibrary+" "+ui.localization.Lang(l10n.KeyOpenLibrary), ui.onOpenLibrary)
	ui.folderBtn = widget.NewButton(IconFolder+" "+ui.localization.Lang(l10n.KeyChooseFolder), ui.onChooseFolder)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.libraryLabel = widget.NewLabel("")
	ui.folderLabel = widget.NewLabel(ui.settings.GetPDFDirectory())
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis

	ui.queryEntry = widget.NewEntry()
	ui.queryEntry.SetPlaceHolder(ui.localization.Lang(l10n.KeySearchPlaceholder))
	ui.queryEntry.SetText(ui.settings.GetLastQuery())
	ui.queryEntry.OnSubmitted = func(string) { ui.onSearch() }

	ui.searchBtn = widget.NewButton(ui.localization.Lang(l10n.KeySearch), ui.onSearch)
	ui.exportBtn = widget.NewButton(ui.localization.Lang(l10n.KeyExport), ui.onExport)
	ui.exportBtn.Disable()

	ui.progress = widget.NewProgressBarInfinite()
	ui.progress.Hide()

	ui.resultsTab = NewSearchResultsTab(ui.localization, platform.OpenFileWithDefaultApp, func(err error) {
		dialog.ShowError(err, ui.window)
	})
	ui.tabs = container.NewAppTabs(ui.resultsTab.TabItem())

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.openBtn, ui.folderBtn),
		nil,
		container.NewHBox(ui.libraryLabel, ui.folderLabel),
	)
	searchRow := container.NewBorder(nil, nil, nil, container.NewHBox(ui.searchBtn, ui.exportBtn), ui.queryEntry)

	content := container.NewBorder(
		container.NewVBox(toolbar, searchRow, ui.progress),
		nil,
		nil,
		nil,
		ui.tabs,
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))
	ui.createMenu()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.Lang(l10n.KeyMenuFile),
		fyne.NewMenuItem(ui.localization.Lang(l10n.KeyOpenLibrary), ui.onOpenLibrary),
		fyne.NewMenuItem(ui.localization.Lang(l10n.KeyRevealLibrary), ui.onRevealLibrary),
		fyne.NewMenuItem(ui.localization.Lang(l10n.KeyChooseFolder), ui.onChooseFolder),
		fyne.NewMenuItem(ui.localization.Lang(l10n.KeyExport), ui.onExport),
		fyne.NewMenuItem(IconSettings, ui.onShowSettings),
	)

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// LibraryDialogConfiguration describes the "open library" dialog
func (ui *RootUI) LibraryDialogConfiguration() *filedialog.Configuration {
	return filedialog.NewBuilder().
		WithLocalization(ui.localization).
		WithInitialDirectory(ui.settings.GetWorkingDirectory()).
		AddFileType(filetype.BibtexDB).
		AddFileType(filetype.Any).
		WithDefaultExtension(filetype.BibtexDB).
		Build()
}

// ExportDialogConfiguration describes the "export results" dialog
func (ui *RootUI) ExportDialogConfiguration() *filedialog.Configuration {
	return filedialog.NewBuilder().
		WithLocalization(ui.localization).
		WithInitialDirectory(ui.settings.GetWorkingDirectory()).
		WithInitialFileName(ExportFileName).
		AddFileType(filetype.TXT).
		AddFileType(filetype.Markdown).
		AddFileType(filetype.YAML).
		Build()
}

// FolderDialogConfiguration describes the PDF folder dialog
func (ui *RootUI) FolderDialogConfiguration() *filedialog.Configuration {
	dir := ui.settings.GetPDFDirectory()
	if dir == "" {
		dir = ui.settings.GetWorkingDirectory()
	}
	return filedialog.NewBuilder().WithInitialDirectory(dir).Build()
}

func (ui *RootUI) onOpenLibrary() {
	ui.dialogs.ShowFileOpen(ui.LibraryDialogConfiguration(), ui.setLibrary)
}

// setLibrary makes path the current library; its directory becomes the PDF
// folder when none was chosen yet.
func (ui *RootUI) setLibrary(path string) {
	ui.libraryPath = path
	ui.libraryLabel.SetText(filepath.Base(path))
	if ui.settings.GetPDFDirectory() == "" {
		ui.setPDFDirectory(filepath.Dir(path))
	}
	log.Printf("Library opened: %s", path)

	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.Lang(l10n.KeyLibraryOpened),
		Content: filepath.Base(path),
	})
}

// onRevealLibrary shows the open library in the system file manager
func (ui *RootUI) onRevealLibrary() {
	if ui.libraryPath == "" {
		return
	}
	if err := platform.RevealInFileManager(ui.libraryPath); err != nil {
		log.Printf("Error revealing library %s: %v", ui.libraryPath, err)
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) onChooseFolder() {
	ui.dialogs.ShowDirectory(ui.FolderDialogConfiguration(), ui.setPDFDirectory)
}

func (ui *RootUI) setPDFDirectory(dir string) {
	ui.settings.SetPDFDirectory(dir)
	ui.folderLabel.SetText(dir)
}

// onSearch starts a search in the background, cancelling a running one
func (ui *RootUI) onSearch() {
	query := strings.TrimSpace(ui.queryEntry.Text)
	dir := ui.settings.GetPDFDirectory()
	if dir == "" {
		dialog.ShowInformation(ui.localization.Lang(l10n.KeySearch), ui.localization.Lang(l10n.KeyNoFolder), ui.window)
		return
	}
	if query == "" {
		return
	}
	ui.settings.SetLastQuery(query)

	ctx := ui.beginSearch()
	ui.progress.Show()
	ui.searchBtn.Disable()

	go func() {
		result, err := ui.runSearch(ctx, query, dir)
		fyne.Do(func() {
			ui.progress.Hide()
			ui.searchBtn.Enable()
			if errors.Is(err, context.Canceled) {
				return
			}
			if err != nil {
				dialog.ShowError(err, ui.window)
				return
			}
			ui.showResult(result)
		})
	}()
}

func (ui *RootUI) beginSearch() context.Context {
	ui.searchMutex.Lock()
	defer ui.searchMutex.Unlock()

	if ui.searchCancel != nil {
		ui.searchCancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), ui.searchTimeout)
	ui.searchCancel = cancel
	return ctx
}

func (ui *RootUI) runSearch(ctx context.Context, query, dir string) (*search.Result, error) {
	files, err := search.Discover(dir)
	if err != nil {
		return nil, err
	}
	log.Printf("Searching %d PDF files in %s for %q", len(files), dir, query)
	return ui.searcher.Search(ctx, query, files)
}

func (ui *RootUI) showResult(result *search.Result) {
	ui.resultsTab.SetResult(result)
	ui.tabs.Select(ui.resultsTab.TabItem())
	if result.IsEmpty() {
		ui.exportBtn.Disable()
	} else {
		ui.exportBtn.Enable()
	}
}

func (ui *RootUI) onExport() {
	result := ui.resultsTab.Result()
	if result == nil {
		return
	}

	ui.dialogs.ShowFileSave(ui.ExportDialogConfiguration(), func(path string) {
		if err := ui.exportResult(result, path); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		dialog.ShowInformation(ui.localization.Lang(l10n.KeyExport), ui.localization.Lang(l10n.KeyResultsExported), ui.window)
	})
}

// exportResult writes result to path in the format implied by its extension
func (ui *RootUI) exportResult(result *search.Result, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, ExportPermissions)
	if err != nil {
		return err
	}
	if err := search.Write(f, result, search.FormatForFile(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.dialogs, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	if svc, ok := ui.searcher.(interface{ SetMaxParallel(int) }); ok {
		svc.SetMaxParallel(ui.settings.GetMaxParallelExtractions())
	}
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.Lang(l10n.KeyAppTitle))
	ui.openBtn.SetText(IconLibrary + " " + ui.localization.Lang(l10n.KeyOpenLibrary))
	ui.folderBtn.SetText(IconFolder + " " + ui.localization.Lang(l10n.KeyChooseFolder))
	ui.queryEntry.SetPlaceHolder(ui.localization.Lang(l10n.KeySearchPlaceholder))
	ui.searchBtn.SetText(ui.localization.Lang(l10n.KeySearch))
	ui.exportBtn.SetText(ui.localization.Lang(l10n.KeyExport))
	ui.resultsTab.Refresh()
	ui.tabs.Refresh()
	ui.createMenu()
}
