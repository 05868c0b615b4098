package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/bibshelf/internal/filedialog"
	"github.com/ytget/bibshelf/internal/filetype"
	"github.com/ytget/bibshelf/internal/l10n"
)

// NewFileTypesCommand creates the filetypes subcommand listing dialog filters
func NewFileTypesCommand() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "filetypes",
		Short: "List the known file types and their dialog filter patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := l10n.NewLocalization()
			loc.SetLanguage(lang)

			builder := filedialog.NewBuilder().WithLocalization(loc)
			for _, ft := range filetype.All() {
				builder.AddFileType(ft)
			}

			bold := color.New(color.Bold)
			out := cmd.OutOrStdout()
			for _, f := range builder.Build().ExtensionFilters() {
				bold.Fprintf(out, "%-20s", f.Description)
				fmt.Fprintf(out, " %s\n", strings.Join(f.Patterns, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", l10n.LangEnglish, "language for descriptions (en, ru, pt)")
	return cmd
}
