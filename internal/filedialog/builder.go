package filedialog

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/bibshelf/internal/filetype"
	"github.com/ytget/bibshelf/internal/l10n"
)

// Builder accumulates dialog settings. None of its methods fail:
// unusable values are stored as "not set".
type Builder struct {
	translator       Translator
	initialDirectory string
	hasDirectory     bool
	initialFileName  string
	defaultExtension *ExtensionFilter
	extensionFilters []*ExtensionFilter
}

// NewBuilder creates a builder translating file type descriptions in English
func NewBuilder() *Builder {
	return &Builder{translator: l10n.NewLocalization()}
}

// WithLocalization sets the translator used for file type descriptions
func (b *Builder) WithLocalization(tr Translator) *Builder {
	if tr != nil {
		b.translator = tr
	}
	return b
}

// WithInitialDirectory sets the initial directory from a path string.
// An empty or non-existing path clears it. A path to an existing file
// resolves to the file's directory.
func (b *Builder) WithInitialDirectory(dir string) *Builder {
	b.initialDirectory, b.hasDirectory = resolveDirectory(dir)
	return b
}

// WithInitialDirectoryURI is WithInitialDirectory for a Fyne URI.
// Nil and non-file URIs clear the directory.
func (b *Builder) WithInitialDirectoryURI(uri fyne.URI) *Builder {
	if uri == nil || uri.Scheme() != "file" {
		b.initialDirectory, b.hasDirectory = "", false
		return b
	}
	return b.WithInitialDirectory(uri.Path())
}

// WithInitialFileName sets the preset file name verbatim
func (b *Builder) WithInitialFileName(name string) *Builder {
	b.initialFileName = name
	return b
}

// WithDefaultExtension makes the file type the default filter,
// described by its canonical localized description.
func (b *Builder) WithDefaultExtension(ft filetype.FileType) *Builder {
	if missingFileType(ft) {
		b.defaultExtension = nil
		return b
	}
	b.defaultExtension = NewExtensionFilter(DescribeFileType(ft, b.translator), ft)
	return b
}

// WithDefaultExtensionDescription makes the file type the default filter
// under a custom description.
func (b *Builder) WithDefaultExtensionDescription(description string, ft filetype.FileType) *Builder {
	if missingFileType(ft) {
		b.defaultExtension = nil
		return b
	}
	b.defaultExtension = NewExtensionFilter(description, ft)
	return b
}

// WithDefaultExtensionFilter sets a prebuilt default filter; nil means none
func (b *Builder) WithDefaultExtensionFilter(filter *ExtensionFilter) *Builder {
	b.defaultExtension = filter
	return b
}

// WithDefaultExtensionNamed selects an already added filter by description.
// Without a match there is no default.
func (b *Builder) WithDefaultExtensionNamed(description string) *Builder {
	b.defaultExtension = nil
	for _, f := range b.extensionFilters {
		if f.Description == description {
			b.defaultExtension = f
			break
		}
	}
	return b
}

// AddExtensionFilters appends filters in order. Duplicates are kept,
// nil entries are skipped.
func (b *Builder) AddExtensionFilters(filters ...*ExtensionFilter) *Builder {
	for _, f := range filters {
		if f != nil {
			b.extensionFilters = append(b.extensionFilters, f)
		}
	}
	return b
}

// AddExtensionFilter appends a filter built from a file type
func (b *Builder) AddExtensionFilter(description string, ft filetype.FileType) *Builder {
	if missingFileType(ft) {
		return b
	}
	return b.AddExtensionFilters(NewExtensionFilter(description, ft))
}

// AddFileType appends a filter for the file type with its canonical description
func (b *Builder) AddFileType(ft filetype.FileType) *Builder {
	if missingFileType(ft) {
		return b
	}
	return b.AddExtensionFilter(DescribeFileType(ft, b.translator), ft)
}

// missingFileType reports a nil file type, including a typed nil pointer
// stored in the interface, or one without extensions.
func missingFileType(ft filetype.FileType) bool {
	return ft == nil || len(ft.Extensions()) == 0
}

// Build returns the configuration. The builder may be reused afterwards;
// later changes do not affect configurations already built.
func (b *Builder) Build() *Configuration {
	filters := make([]*ExtensionFilter, len(b.extensionFilters))
	copy(filters, b.extensionFilters)

	return &Configuration{
		initialDirectory: b.initialDirectory,
		hasDirectory:     b.hasDirectory,
		initialFileName:  b.initialFileName,
		defaultExtension: b.defaultExtension,
		extensionFilters: filters,
	}
}

// resolveDirectory returns an existing directory for path, or false
func resolveDirectory(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}

	cleaned := filepath.Clean(path)
	if info.IsDir() {
		return cleaned, true
	}
	return filepath.Dir(cleaned), true
}

// DirectoryURI returns the initial directory as a listable Fyne URI
func (c *Configuration) DirectoryURI() (fyne.ListableURI, bool) {
	dir, ok := c.InitialDirectory()
	if !ok {
		return nil, false
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return nil, false
	}
	return lister, true
}
