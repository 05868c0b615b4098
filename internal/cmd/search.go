package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/bibshelf/internal/search"
)

type searchOptions struct {
	query    string
	output   string
	parallel int
	verbose  bool
}

// NewSearchCommand creates the search subcommand
func NewSearchCommand() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <dir|file>...",
		Short: "Find pages mentioning a term in PDF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runSearch(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "text to search for (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(search.FormatText), "output format: text, markdown, yaml")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", search.DefaultMaxParallel, "number of files read at once (1-8)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

func runSearch(ctx context.Context, out, errOut io.Writer, roots []string, opts *searchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := search.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	files, err := search.DiscoverAll(roots)
	if err != nil {
		return err
	}

	svc := search.NewService(search.WithMaxParallel(opts.parallel), search.WithLogger(logger))
	result, err := svc.Search(ctx, opts.query, files)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if format == search.FormatText {
		return printResult(out, result)
	}
	return search.Write(out, result, format)
}

// printResult writes a colored terminal summary
func printResult(w io.Writer, r *search.Result) error {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	if r.IsEmpty() {
		yellow.Fprintf(w, "No pages mention %q (%d files scanned)\n", r.Query, r.Scanned)
	}

	for _, f := range r.Files {
		bold.Fprintln(w, f.Path)
		for _, h := range f.Hits {
			cyan.Fprintf(w, "  p.%d", h.Page)
			fmt.Fprintf(w, "  %s\n", h.Snippet)
		}
	}

	for _, fail := range r.Failures {
		red.Fprintf(w, "unreadable: %s: %s\n", fail.Path, fail.Error)
	}

	if !r.IsEmpty() {
		fmt.Fprintf(w, "\n%d pages in %d files (%d scanned) in %s\n",
			r.TotalHits(), len(r.Files), r.Scanned, r.Duration().Round(time.Millisecond))
	}
	return nil
}
