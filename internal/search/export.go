package search

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an export format for results
type Format string

// Supported export formats
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// FormatForFile picks the export format from a file name extension,
// defaulting to plain text.
func FormatForFile(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md":
		return FormatMarkdown
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatMarkdown, FormatYAML:
		return f, nil
	case "txt":
		return FormatText, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Write renders the result in the given format
func Write(w io.Writer, r *Result, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		return writeMarkdown(w, r)
	default:
		return writeText(w, r)
	}
}

func writeText(w io.Writer, r *Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %s\n", r.Query)
	fmt.Fprintf(&b, "Matches: %d pages in %d files (%d scanned)\n", r.TotalHits(), len(r.Files), r.Scanned)
	for _, f := range r.Files {
		fmt.Fprintf(&b, "\n%s\n", f.Path)
		for _, h := range f.Hits {
			fmt.Fprintf(&b, "  page %d (%d): %s\n", h.Page, h.Count, h.Snippet)
		}
	}
	for _, fail := range r.Failures {
		fmt.Fprintf(&b, "\nunreadable: %s: %s\n", fail.Path, fail.Error)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdown(w io.Writer, r *Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Search results for \"%s\"\n\n", r.Query)
	fmt.Fprintf(&b, "%d matching pages in %d files.\n", r.TotalHits(), len(r.Files))
	for _, f := range r.Files {
		fmt.Fprintf(&b, "\n## [%s](%s)\n\n", filepath.Base(f.Path), filepath.ToSlash(f.Path))
		for _, h := range f.Hits {
			fmt.Fprintf(&b, "- **Page %d**: %s\n", h.Page, h.Snippet)
		}
	}
	if len(r.Failures) > 0 {
		b.WriteString("\n## Unreadable files\n\n")
		for _, fail := range r.Failures {
			fmt.Fprintf(&b, "- `%s`: %s\n", fail.Path, fail.Error)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
