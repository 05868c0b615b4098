package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/bibshelf/internal/platform"
	"github.com/ytget/bibshelf/internal/search"
)

// Settings keys for Fyne preferences
const (
	KeyWorkingDirectory = "working_directory"
	KeyPDFDirectory     = "pdf_directory"
	KeyLanguage         = "app_language"
	KeyLastFilter       = "last_extension_filter"
	KeyLastQuery        = "last_search_query"
	KeyMaxParallel      = "max_parallel_extractions"
)

// Default values
const (
	DefaultLanguage    = "system"
	DefaultMaxParallel = search.DefaultMaxParallel
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetWorkingDirectory returns the directory file dialogs start in
func (s *Settings) GetWorkingDirectory() string {
	dir := s.app.Preferences().String(KeyWorkingDirectory)
	if dir == "" {
		dir = platform.DefaultWorkingDirectory()
		s.SetWorkingDirectory(dir)
	}
	return dir
}

// SetWorkingDirectory sets the working directory
func (s *Settings) SetWorkingDirectory(dir string) {
	s.app.Preferences().SetString(KeyWorkingDirectory, dir)
}

// GetPDFDirectory returns the folder searched for PDFs, empty if none chosen
func (s *Settings) GetPDFDirectory() string {
	return s.app.Preferences().String(KeyPDFDirectory)
}

// SetPDFDirectory sets the PDF folder
func (s *Settings) SetPDFDirectory(dir string) {
	s.app.Preferences().SetString(KeyPDFDirectory, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastFilter returns the description of the last selected extension filter
func (s *Settings) GetLastFilter() string {
	return s.app.Preferences().String(KeyLastFilter)
}

// SetLastFilter remembers the selected extension filter by description
func (s *Settings) SetLastFilter(description string) {
	s.app.Preferences().SetString(KeyLastFilter, description)
}

// GetLastQuery returns the last full-text search query
func (s *Settings) GetLastQuery() string {
	return s.app.Preferences().String(KeyLastQuery)
}

// SetLastQuery remembers the full-text search query
func (s *Settings) SetLastQuery(query string) {
	s.app.Preferences().SetString(KeyLastQuery, query)
}

// GetMaxParallelExtractions returns how many PDFs are read at once
func (s *Settings) GetMaxParallelExtractions() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelExtractions(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelExtractions sets the number of parallel extractions (1-8)
func (s *Settings) SetMaxParallelExtractions(count int) {
	s.app.Preferences().SetInt(KeyMaxParallel, search.ClampParallel(count))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
