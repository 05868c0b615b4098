package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for bibshelf
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bibshelf",
		Short: "Search the PDF documents of a BibTeX library",
		Long: `bibshelf scans the PDF files stored next to a BibTeX library and
reports every page that mentions a search term.

Run the desktop application for interactive use; this command line is
meant for scripts and quick lookups.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewFileTypesCommand())

	return cmd
}
