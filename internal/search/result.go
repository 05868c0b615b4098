package search

import "time"

// Hit is a page that contains the query
type Hit struct {
	ID      string `yaml:"id"`
	Page    int    `yaml:"page"`    // 1-based
	Count   int    `yaml:"count"`   // occurrences on the page
	Snippet string `yaml:"snippet"` // text around the first occurrence
}

// FileHits groups the hits of one file, pages ascending
type FileHits struct {
	Path string `yaml:"path"`
	Hits []Hit  `yaml:"hits"`
}

// Failure is a file that could not be read
type Failure struct {
	Path  string `yaml:"path"`
	Error string `yaml:"error"`
}

// Result is the outcome of one search run
type Result struct {
	ID         string     `yaml:"id"`
	Query      string     `yaml:"query"`
	Files      []FileHits `yaml:"files"`
	Failures   []Failure  `yaml:"failures,omitempty"`
	Scanned    int        `yaml:"scanned"`
	StartedAt  time.Time  `yaml:"started_at"`
	FinishedAt time.Time  `yaml:"finished_at"`
}

// TotalHits returns the number of matching pages across all files
func (r *Result) TotalHits() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, f := range r.Files {
		total += len(f.Hits)
	}
	return total
}

// IsEmpty reports whether nothing matched
func (r *Result) IsEmpty() bool {
	return r.TotalHits() == 0
}

// Duration returns how long the search took
func (r *Result) Duration() time.Duration {
	if r == nil || r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
