package search

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ledongthuc/pdf"
)

// PDFPattern matches PDF files at any depth, either extension case
const PDFPattern = "**/*.{pdf,PDF}"

// PageReader returns the plain text of every page of a document
type PageReader interface {
	ReadPages(ctx context.Context, path string) ([]string, error)
}

// PDFReader extracts page text with ledongthuc/pdf
type PDFReader struct{}

// ReadPages returns one entry per page; pages without text are empty strings.
// ledongthuc/pdf panics on damaged object streams; that is returned as an error.
func (PDFReader) ReadPages(ctx context.Context, path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("failed to read PDF %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages = make([]string, 0, total)

	for pageIndex := 1; pageIndex <= total; pageIndex++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract page %d of %s: %w", pageIndex, path, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}

// Discover returns the PDF files under root, sorted. A root that is itself
// a PDF file is returned as is.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access path '%s': %w", root, err)
	}

	if !info.IsDir() {
		ok, err := doublestar.Match("*.{pdf,PDF}", filepath.Base(root))
		if err != nil {
			return nil, fmt.Errorf("matching '%s': %w", root, err)
		}
		if !ok {
			return nil, nil
		}
		return []string{root}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), PDFPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("searching PDF files in '%s': %w", root, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, filepath.Join(root, filepath.FromSlash(m)))
	}
	sort.Strings(files)
	return files, nil
}

// DiscoverAll runs Discover on every root and drops duplicates, keeping
// the first occurrence.
func DiscoverAll(roots []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, root := range roots {
		files, err := Discover(root)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			key := filepath.Clean(f)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, f)
		}
	}
	return out, nil
}
