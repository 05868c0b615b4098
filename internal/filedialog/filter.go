package filedialog

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2/storage"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/ytget/bibshelf/internal/filetype"
)

// Pattern constants
const (
	PatternPrefix   = "*."
	WildcardPattern = "*"
)

// Translator resolves a localization key to display text
type Translator interface {
	Lang(key string) string
}

// ExtensionFilter is a human-readable description paired with file name
// patterns such as "*.bib".
type ExtensionFilter struct {
	Description string
	Patterns    []string
}

// NewExtensionFilter converts a file type into a filter with the given
// description. Every extension becomes a "*.<ext>" pattern, order kept.
func NewExtensionFilter(description string, ft filetype.FileType) *ExtensionFilter {
	exts := ft.Extensions()
	patterns := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == WildcardPattern {
			patterns = append(patterns, WildcardPattern)
			continue
		}
		patterns = append(patterns, PatternPrefix+ext)
	}
	return &ExtensionFilter{Description: description, Patterns: patterns}
}

// DescribeFileType builds the canonical description of a file type,
// e.g. "BibTeX Library".
func DescribeFileType(ft filetype.FileType, tr Translator) string {
	label := tr.Lang(ft.DescriptionKey())
	if ft.Name() == "" {
		return label
	}
	return fmt.Sprintf("%s %s", ft.Name(), label)
}

// Matches reports whether the base name of fileName matches any pattern.
// Matching ignores letter case.
func (f *ExtensionFilter) Matches(fileName string) bool {
	if f == nil {
		return false
	}
	name := strings.ToLower(filepath.Base(fileName))
	for _, pattern := range f.Patterns {
		ok, err := doublestar.Match(strings.ToLower(pattern), name)
		if err == nil && ok {
			return true
		}
	}
	return false
}

// Extensions returns dot-prefixed suffixes (".bib") for every "*.<ext>"
// pattern. The second result is false when a pattern accepts any file.
func (f *ExtensionFilter) Extensions() ([]string, bool) {
	var exts []string
	for _, pattern := range f.Patterns {
		if pattern == WildcardPattern || pattern == "*.*" {
			return nil, false
		}
		if strings.HasPrefix(pattern, PatternPrefix) {
			exts = append(exts, "."+strings.TrimPrefix(pattern, PatternPrefix))
		}
	}
	return exts, true
}

// String implements fmt.Stringer, e.g. "BibTeX Library (*.bib)"
func (f *ExtensionFilter) String() string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", f.Description, strings.Join(f.Patterns, ", "))
}

// ToFyneFilter converts filters into a single Fyne file filter accepting
// the union of their extensions. Nil means no restriction.
func ToFyneFilter(filters ...*ExtensionFilter) storage.FileFilter {
	var exts []string
	seen := make(map[string]bool)
	for _, f := range filters {
		if f == nil {
			continue
		}
		fe, restricted := f.Extensions()
		if !restricted {
			return nil
		}
		for _, ext := range fe {
			if !seen[ext] {
				seen[ext] = true
				exts = append(exts, ext)
			}
		}
	}
	if len(exts) == 0 {
		return nil
	}
	return storage.NewExtensionFileFilter(exts)
}
