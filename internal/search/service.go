package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Search defaults
const (
	DefaultMaxParallel   = 2
	MaxParallelLimit     = 8
	DefaultSnippetRadius = 40
	EllipsisMarker       = "…"
)

// ErrEmptyQuery is returned when the query has no searchable text
var ErrEmptyQuery = errors.New("search query is empty")

// Searcher defines the interface for the full-text search service.
type Searcher interface {
	Search(ctx context.Context, query string, paths []string) (*Result, error)
}

// Service scans documents page by page for a query
type Service struct {
	reader        PageReader
	mu            sync.Mutex
	maxParallel   int
	snippetRadius int
	logger        *slog.Logger
}

// Option configures a Service
type Option func(*Service)

// WithReader replaces the PDF page reader
func WithReader(r PageReader) Option {
	return func(s *Service) {
		if r != nil {
			s.reader = r
		}
	}
}

// WithMaxParallel bounds how many files are read at once (1-8)
func WithMaxParallel(n int) Option {
	return func(s *Service) {
		s.maxParallel = ClampParallel(n)
	}
}

// WithSnippetRadius sets how many characters surround a match in snippets
func WithSnippetRadius(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.snippetRadius = n
		}
	}
}

// WithLogger sets the logger; nil keeps slog.Default()
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a search service reading PDFs
func NewService(opts ...Option) *Service {
	s := &Service{
		reader:        PDFReader{},
		maxParallel:   DefaultMaxParallel,
		snippetRadius: DefaultSnippetRadius,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetMaxParallel changes the file concurrency for later searches
func (s *Service) SetMaxParallel(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxParallel = ClampParallel(n)
}

// MaxParallel returns the current file concurrency
func (s *Service) MaxParallel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxParallel
}

// ClampParallel limits n to 1..MaxParallelLimit
func ClampParallel(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxParallelLimit {
		return MaxParallelLimit
	}
	return n
}

type fileOutcome struct {
	hits []Hit
	err  error
}

// Search looks for query in every page of paths. Matching ignores case and
// treats runs of whitespace as a single space. Files that cannot be read are
// listed in Result.Failures; the search itself fails only for an empty query
// or a cancelled context.
func (s *Service) Search(ctx context.Context, query string, paths []string) (*Result, error) {
	needle := []rune(normalize(query))
	if len(needle) == 0 {
		return nil, ErrEmptyQuery
	}

	result := &Result{
		ID:        uuid.New().String(),
		Query:     strings.TrimSpace(query),
		StartedAt: time.Now(),
	}
	log := s.logger.With("search_id", result.ID)
	log.Info("search started", "query", result.Query, "files", len(paths))

	outcomes := make([]fileOutcome, len(paths))
	sem := make(chan struct{}, s.MaxParallel())
	var wg sync.WaitGroup

	for i, path := range paths {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			pages, err := s.reader.ReadPages(ctx, path)
			if err != nil {
				outcomes[i] = fileOutcome{err: err}
				return
			}
			outcomes[i] = fileOutcome{hits: s.scanPages(pages, needle)}
		}(i, path)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, outcome := range outcomes {
		if outcome.err != nil {
			log.Warn("file skipped", "path", paths[i], "error", outcome.err)
			result.Failures = append(result.Failures, Failure{Path: paths[i], Error: outcome.err.Error()})
			continue
		}
		result.Scanned++
		if len(outcome.hits) > 0 {
			result.Files = append(result.Files, FileHits{Path: paths[i], Hits: outcome.hits})
		}
	}

	result.FinishedAt = time.Now()
	log.Info("search finished", "hits", result.TotalHits(), "failures", len(result.Failures), "duration", result.Duration())
	return result, nil
}

func (s *Service) scanPages(pages []string, needle []rune) []Hit {
	var hits []Hit
	for i, page := range pages {
		text := []rune(normalize(page))
		first, count := findAll(text, needle)
		if count == 0 {
			continue
		}
		hits = append(hits, Hit{
			ID:      uuid.New().String(),
			Page:    i + 1,
			Count:   count,
			Snippet: snippet(text, first, len(needle), s.snippetRadius),
		})
	}
	return hits
}

// normalize collapses whitespace runs and trims the ends
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// findAll returns the index of the first case-insensitive, non-overlapping
// match and the number of matches.
func findAll(text, needle []rune) (int, int) {
	first, count := -1, 0
	for i := 0; i+len(needle) <= len(text); {
		if equalFold(text[i:i+len(needle)], needle) {
			if first < 0 {
				first = i
			}
			count++
			i += len(needle)
			continue
		}
		i++
	}
	return first, count
}

func equalFold(a, b []rune) bool {
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}

// snippet cuts radius runes on each side of the match, marking cut ends
func snippet(text []rune, start, length, radius int) string {
	from := start - radius
	if from < 0 {
		from = 0
	}
	to := start + length + radius
	if to > len(text) {
		to = len(text)
	}

	var b strings.Builder
	if from > 0 {
		b.WriteString(EllipsisMarker)
	}
	b.WriteString(strings.TrimSpace(string(text[from:to])))
	if to < len(text) {
		b.WriteString(EllipsisMarker)
	}
	return b.String()
}
