package filetype

import "strings"

// Localization keys used as file type descriptions
const (
	KeyLibrary = "library"
	KeyFile    = "file"
	KeyAll     = "all_files"
)

// FileType is a named set of file name extensions
type FileType interface {
	Name() string
	Extensions() []string
	DescriptionKey() string
}

// StandardFileType is one of the built-in file types
type StandardFileType struct {
	name       string
	extensions []string
	key        string
}

// Predefined file types
var (
	BibtexDB = &StandardFileType{name: "BibTeX", extensions: []string{"bib"}, key: KeyLibrary}
	ISI      = &StandardFileType{name: "ISI", extensions: []string{"isi", "txt"}, key: KeyFile}
	RIS      = &StandardFileType{name: "RIS", extensions: []string{"ris"}, key: KeyFile}
	PDF      = &StandardFileType{name: "PDF", extensions: []string{"pdf"}, key: KeyFile}
	TXT      = &StandardFileType{name: "Plain text", extensions: []string{"txt"}, key: KeyFile}
	Markdown = &StandardFileType{name: "Markdown", extensions: []string{"md"}, key: KeyFile}
	YAML     = &StandardFileType{name: "YAML", extensions: []string{"yaml", "yml"}, key: KeyFile}
	Any      = &StandardFileType{name: "", extensions: []string{"*"}, key: KeyAll}
)

// Name returns the display name of the type. All methods accept a nil receiver.
func (ft *StandardFileType) Name() string {
	if ft == nil {
		return ""
	}
	return ft.name
}

// Extensions returns a copy of the type's extensions in declaration order
func (ft *StandardFileType) Extensions() []string {
	if ft == nil {
		return nil
	}
	out := make([]string, len(ft.extensions))
	copy(out, ft.extensions)
	return out
}

// DescriptionKey returns the localization key of the description
func (ft *StandardFileType) DescriptionKey() string {
	if ft == nil {
		return ""
	}
	return ft.key
}

// String implements fmt.Stringer
func (ft *StandardFileType) String() string {
	if ft == nil {
		return ""
	}
	if ft.name == "" {
		return ft.key
	}
	return ft.name
}

// All returns every standard file type, Any last
func All() []*StandardFileType {
	return []*StandardFileType{BibtexDB, ISI, RIS, PDF, TXT, Markdown, YAML, Any}
}

// Lookup returns the first standard type owning the extension.
// A leading dot and letter case are ignored. Any is never returned.
func Lookup(ext string) (*StandardFileType, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return nil, false
	}
	for _, ft := range All() {
		if ft == Any {
			continue
		}
		for _, e := range ft.extensions {
			if e == ext {
				return ft, true
			}
		}
	}
	return nil, false
}
