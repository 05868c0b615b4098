package search

// Package search implements full-text search over the PDF documents stored
// next to a library. Pages are scanned linearly; there is no index. Results
// are grouped per file with one hit per matching page, ready to be rendered
// as file and page links.
