package l10n

import "github.com/ytget/bibshelf/internal/filetype"

// Localization manages text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyOpenLibrary       = "open_library"
	KeyChooseFolder      = "choose_folder"
	KeySearch            = "search"
	KeySearchPlaceholder = "search_placeholder"
	KeyExport            = "export"
	KeySearchResults     = "search_results"
	KeyNoResults         = "no_results"
	KeyPage              = "page"
	KeyNoFolder          = "no_folder"
	KeyLibraryOpened     = "library_opened"
	KeyResultsExported   = "results_exported"
	KeyUnreadableFiles   = "unreadable_files"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyMenuFile          = "menu_file"
	KeyRevealLibrary     = "reveal_library"

	KeyLibrary = filetype.KeyLibrary
	KeyFile    = filetype.KeyFile
	KeyAll     = filetype.KeyAll
)

// Supported language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
)

// NewLocalization creates a new localization manager set to English
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem {
		// System locale detection is not wired yet
		lang = LangEnglish
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// Lang returns localized text for the given key.
// Falls back to English, then to the key itself.
func (l *Localization) Lang(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// CurrentLanguage returns the current language code
func (l *Localization) CurrentLanguage() string {
	return l.currentLanguage
}

// AvailableLanguages returns language codes with their display names
func (l *Localization) AvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "BibShelf",
		KeyOpenLibrary:       "Open library",
		KeyChooseFolder:      "PDF folder",
		KeySearch:            "Search",
		KeySearchPlaceholder: "Search text in PDF files",
		KeyExport:            "Export",
		KeySearchResults:     "Search results",
		KeyNoResults:         "No results",
		KeyPage:              "Page %d",
		KeyNoFolder:          "Choose a PDF folder first",
		KeyLibraryOpened:     "Library opened",
		KeyResultsExported:   "Results exported",
		KeyUnreadableFiles:   "Some files could not be read",
		KeyErrorOpeningFile:  "Error opening file",
		KeyMenuFile:          "File",
		KeyRevealLibrary:     "Show library in folder",
		KeyLibrary:           "Library",
		KeyFile:              "file",
		KeyAll:               "All files",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "BibShelf",
		KeyOpenLibrary:       "Открыть библиотеку",
		KeyChooseFolder:      "Папка PDF",
		KeySearch:            "Поиск",
		KeySearchPlaceholder: "Поиск текста в PDF файлах",
		KeyExport:            "Экспорт",
		KeySearchResults:     "Результаты поиска",
		KeyNoResults:         "Ничего не найдено",
		KeyPage:              "Страница %d",
		KeyNoFolder:          "Сначала выберите папку PDF",
		KeyLibraryOpened:     "Библиотека открыта",
		KeyResultsExported:   "Результаты экспортированы",
		KeyUnreadableFiles:   "Некоторые файлы не удалось прочитать",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyMenuFile:          "Файл",
		KeyRevealLibrary:     "Показать библиотеку в папке",
		KeyLibrary:           "Библиотека",
		KeyFile:              "файл",
		KeyAll:               "Все файлы",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "BibShelf",
		KeyOpenLibrary:       "Abrir biblioteca",
		KeyChooseFolder:      "Pasta de PDF",
		KeySearch:            "Pesquisar",
		KeySearchPlaceholder: "Pesquisar texto em arquivos PDF",
		KeyExport:            "Exportar",
		KeySearchResults:     "Resultados da pesquisa",
		KeyNoResults:         "Nenhum resultado",
		KeyPage:              "Página %d",
		KeyNoFolder:          "Escolha uma pasta de PDF primeiro",
		KeyLibraryOpened:     "Biblioteca aberta",
		KeyResultsExported:   "Resultados exportados",
		KeyUnreadableFiles:   "Alguns arquivos não puderam ser lidos",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyMenuFile:          "Arquivo",
		KeyRevealLibrary:     "Mostrar biblioteca na pasta",
		KeyLibrary:           "Biblioteca",
		KeyFile:              "arquivo",
		KeyAll:               "Todos os arquivos",
	}
}
