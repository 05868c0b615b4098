package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/go-pdf/fpdf"
)

func writePDF(t *testing.T, path string, pages ...string) {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		doc.AddPage()
		doc.Cell(40, 10, text)
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("Failed to write PDF: %v", err)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestSearchCommand_TextOutput(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, filepath.Join(dir, "paper.pdf"), "Introduction", "Entropy bounds")

	out, err := executeCommand(t, "search", dir, "--query", "entropy")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if !strings.Contains(out, filepath.Join(dir, "paper.pdf")) {
		t.Errorf("Output should list the matching file, got:\n%s", out)
	}
	if !strings.Contains(out, "p.2") {
		t.Errorf("Output should list page 2, got:\n%s", out)
	}
}

func TestSearchCommand_YAMLOutput(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, filepath.Join(dir, "paper.pdf"), "Entropy")

	out, err := executeCommand(t, "search", dir, "-q", "entropy", "-o", "yaml")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if !strings.Contains(out, "query: entropy") {
		t.Errorf("YAML output should contain the query, got:\n%s", out)
	}
	if !strings.Contains(out, "page: 1") {
		t.Errorf("YAML output should contain page 1, got:\n%s", out)
	}
}

func TestSearchCommand_NoMatches(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, filepath.Join(dir, "paper.pdf"), "Introduction")

	out, err := executeCommand(t, "search", dir, "-q", "quantum")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "No pages mention") {
		t.Errorf("Expected no-match message, got:\n%s", out)
	}
}

func TestSearchCommand_ReportsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("not a pdf"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	out, err := executeCommand(t, "search", dir, "-q", "x")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "unreadable: ") {
		t.Errorf("Expected unreadable file report, got:\n%s", out)
	}
}

func TestSearchCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := executeCommand(t, "search", dir); err == nil {
		t.Error("Expected error when --query is missing")
	}
	if _, err := executeCommand(t, "search", dir, "-q", "x", "-o", "json"); err == nil {
		t.Error("Expected error for unknown output format")
	}
	if _, err := executeCommand(t, "search", filepath.Join(dir, "missing"), "-q", "x"); err == nil {
		t.Error("Expected error for missing path")
	}
	if _, err := executeCommand(t, "search", dir, "-q", "   "); err == nil {
		t.Error("Expected error for blank query")
	}
}

func TestFileTypesCommand(t *testing.T) {
	out, err := executeCommand(t, "filetypes")
	if err != nil {
		t.Fatalf("filetypes failed: %v", err)
	}

	if !strings.Contains(out, "BibTeX Library") || !strings.Contains(out, "*.bib") {
		t.Errorf("Expected BibTeX filter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "*.isi *.txt") {
		t.Errorf("Expected ISI patterns in output, got:\n%s", out)
	}
}

func TestFileTypesCommand_Localized(t *testing.T) {
	out, err := executeCommand(t, "filetypes", "--lang", "ru")
	if err != nil {
		t.Fatalf("filetypes failed: %v", err)
	}
	if !strings.Contains(out, "BibTeX Библиотека") {
		t.Errorf("Expected Russian description, got:\n%s", out)
	}
}
