package search

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *Result {
	return &Result{
		ID:    "run-1",
		Query: "entropy",
		Files: []FileHits{
			{Path: "/papers/a.pdf", Hits: []Hit{{ID: "h1", Page: 2, Count: 1, Snippet: "max entropy"}}},
		},
		Failures: []Failure{{Path: "/papers/broken.pdf", Error: "malformed"}},
		Scanned:  1,
	}
}

func TestFormatForFile(t *testing.T) {
	assert.Equal(t, FormatMarkdown, FormatForFile("out.MD"))
	assert.Equal(t, FormatYAML, FormatForFile("out.yml"))
	assert.Equal(t, FormatYAML, FormatForFile("out.yaml"))
	assert.Equal(t, FormatText, FormatForFile("out.txt"))
	assert.Equal(t, FormatText, FormatForFile("out"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("md")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	_, err = ParseFormat("json")
	assert.Error(t, err)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), FormatText))

	out := buf.String()
	assert.Contains(t, out, "Query: entropy")
	assert.Contains(t, out, "/papers/a.pdf")
	assert.Contains(t, out, "page 2 (1): max entropy")
	assert.Contains(t, out, "unreadable: /papers/broken.pdf: malformed")
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), FormatMarkdown))

	out := buf.String()
	assert.Contains(t, out, "# Search results for \"entropy\"")
	assert.Contains(t, out, "## [a.pdf](/papers/a.pdf)")
	assert.Contains(t, out, "- **Page 2**: max entropy")
	assert.Contains(t, out, "## Unreadable files")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), FormatYAML))

	var decoded Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "entropy", decoded.Query)
	require.Len(t, decoded.Files, 1)
	assert.Equal(t, 2, decoded.Files[0].Hits[0].Page)
	assert.Equal(t, "malformed", decoded.Failures[0].Error)
}
