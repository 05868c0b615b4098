package filedialog

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/bibshelf/internal/filetype"
	"github.com/ytget/bibshelf/internal/l10n"
)

func TestWithValidDirectoryString(t *testing.T) {
	tempDir := t.TempDir()

	cfg := NewBuilder().WithInitialDirectory(tempDir).Build()

	dir, ok := cfg.InitialDirectory()
	assert.True(t, ok)
	assert.Equal(t, tempDir, dir)
}

func TestWithValidDirectoryURI(t *testing.T) {
	tempDir := t.TempDir()

	cfg := NewBuilder().WithInitialDirectoryURI(storage.NewFileURI(tempDir)).Build()

	dir, ok := cfg.InitialDirectory()
	assert.True(t, ok)
	assert.Equal(t, tempDir, dir)
}

func TestWithEmptyDirectoryString(t *testing.T) {
	cfg := NewBuilder().WithInitialDirectory("").Build()

	_, ok := cfg.InitialDirectory()
	assert.False(t, ok)
}

func TestWithNilDirectoryURI(t *testing.T) {
	cfg := NewBuilder().WithInitialDirectoryURI(nil).Build()

	_, ok := cfg.InitialDirectory()
	assert.False(t, ok)
}

func TestWithNonFileDirectoryURI(t *testing.T) {
	uri, err := storage.ParseURI("https://example.com/papers")
	require.NoError(t, err)

	cfg := NewBuilder().WithInitialDirectoryURI(uri).Build()

	_, ok := cfg.InitialDirectory()
	assert.False(t, ok)
}

func TestWithNonExistingRelativeDirectory(t *testing.T) {
	cfg := NewBuilder().WithInitialDirectory("workingDirectory").Build()

	dir, ok := cfg.InitialDirectory()
	assert.False(t, ok)
	assert.Empty(t, dir)
}

func TestWithNonExistingNestedDirectory(t *testing.T) {
	cfg := NewBuilder().WithInitialDirectory("test/cornerCase/").Build()

	_, ok := cfg.InitialDirectory()
	assert.False(t, ok)
}

func TestWithNonExistingAbsoluteDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	cfg := NewBuilder().WithInitialDirectory(missing).Build()

	_, ok := cfg.InitialDirectory()
	assert.False(t, ok)
}

func TestWithExistingFileUsesParentDirectory(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "library.bib")
	require.NoError(t, os.WriteFile(file, []byte("@article{a,}"), 0644))

	cfg := NewBuilder().WithInitialDirectory(file).Build()

	dir, ok := cfg.InitialDirectory()
	assert.True(t, ok)
	assert.Equal(t, tempDir, dir)
}

func TestInvalidDirectoryClearsPreviousValue(t *testing.T) {
	cfg := NewBuilder().
		WithInitialDirectory(t.TempDir()).
		WithInitialDirectory("workingDirectory").
		Build()

	_, ok := cfg.InitialDirectory()
	assert.False(t, ok)
}

func TestWithInitialFileName(t *testing.T) {
	names := []string{"testFileName.txt", "", "dir/sub/library.bib", "no-extension"}

	for _, name := range names {
		cfg := NewBuilder().WithInitialFileName(name).Build()
		assert.Equal(t, name, cfg.InitialFileName())
	}
}

func TestSingleExtension(t *testing.T) {
	cfg := NewBuilder().WithDefaultExtension(filetype.BibtexDB).Build()

	expected := []string{}
	for _, ext := range filetype.BibtexDB.Extensions() {
		expected = append(expected, "*."+ext)
	}

	require.NotNil(t, cfg.DefaultExtension())
	assert.Equal(t, expected, cfg.DefaultExtension().Patterns)
	assert.Equal(t, "BibTeX Library", cfg.DefaultExtension().Description)
}

func TestDefaultExtensionIsLocalized(t *testing.T) {
	loc := l10n.NewLocalization()
	loc.SetLanguage("pt")

	cfg := NewBuilder().WithLocalization(loc).WithDefaultExtension(filetype.BibtexDB).Build()

	assert.Equal(t, "BibTeX Biblioteca", cfg.DefaultExtension().Description)
}

func TestWithNilDefaultExtension(t *testing.T) {
	cfg := NewBuilder().
		WithDefaultExtension(filetype.PDF).
		WithDefaultExtensionFilter(nil).
		Build()

	assert.Nil(t, cfg.DefaultExtension())
}

func TestTypedNilFileTypeIsIgnored(t *testing.T) {
	var ft *filetype.StandardFileType

	assert.NotPanics(t, func() {
		cfg := NewBuilder().
			WithDefaultExtension(filetype.PDF).
			WithDefaultExtension(ft).
			AddFileType(ft).
			AddExtensionFilter("broken", ft).
			Build()

		assert.Nil(t, cfg.DefaultExtension())
		assert.Empty(t, cfg.ExtensionFilters())
	})

	assert.NotPanics(t, func() {
		cfg := NewBuilder().WithDefaultExtensionDescription("broken", ft).Build()
		assert.Nil(t, cfg.DefaultExtension())
	})
}

func TestWithDescriptionAndFileTypeDefaultExtension(t *testing.T) {
	cfg := NewBuilder().WithDefaultExtensionDescription("description", filetype.BibtexDB).Build()

	assert.Equal(t, NewExtensionFilter("description", filetype.BibtexDB), cfg.DefaultExtension())
}

func TestWithDefaultExtensionNamed(t *testing.T) {
	isi := NewExtensionFilter("ISI file", filetype.ISI)
	ris := NewExtensionFilter("RIS file", filetype.RIS)

	cfg := NewBuilder().
		AddExtensionFilters(isi, ris).
		WithDefaultExtensionNamed("RIS file").
		Build()
	assert.Same(t, ris, cfg.DefaultExtension())

	cfg = NewBuilder().
		AddExtensionFilters(isi, ris).
		WithDefaultExtensionNamed("fileTypeDescriptionTest").
		Build()
	assert.Nil(t, cfg.DefaultExtension())
}

func TestWithExtensionFilterList(t *testing.T) {
	filters := []*ExtensionFilter{
		{Description: "TestDescription1", Patterns: []string{"TestExtensions1"}},
		{Description: "TestDescription2", Patterns: []string{"TestExtensions2"}},
	}

	cfg := NewBuilder().AddExtensionFilters(filters...).Build()

	assert.Equal(t, filters, cfg.ExtensionFilters())
}

func TestAddExtensionFilterKeepsOrderAndDuplicates(t *testing.T) {
	cfg := NewBuilder().
		AddExtensionFilter("description", filetype.ISI).
		AddFileType(filetype.PDF).
		AddExtensionFilter("description", filetype.ISI).
		Build()

	filters := cfg.ExtensionFilters()
	require.Len(t, filters, 3)
	assert.Equal(t, NewExtensionFilter("description", filetype.ISI), filters[0])
	assert.Equal(t, "PDF file", filters[1].Description)
	assert.Equal(t, filters[0], filters[2])
	assert.Equal(t, []string{"*.isi", "*.txt"}, filters[0].Patterns)
}

func TestBuildSnapshotIsIndependent(t *testing.T) {
	b := NewBuilder().AddFileType(filetype.PDF)
	cfg := b.Build()

	b.AddFileType(filetype.TXT).WithInitialFileName("later.txt")

	assert.Len(t, cfg.ExtensionFilters(), 1)
	assert.Empty(t, cfg.InitialFileName())
}

func TestExtensionFiltersReturnsCopy(t *testing.T) {
	cfg := NewBuilder().AddFileType(filetype.PDF).Build()

	filters := cfg.ExtensionFilters()
	filters[0] = nil

	assert.NotNil(t, cfg.ExtensionFilters()[0])
}
