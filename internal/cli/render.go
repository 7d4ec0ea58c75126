package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/render"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the report document",
		Long: `Render the paginated report document with charts and tables.

The file name defaults to report-{period}-{YYYY-MM-DD}.{ext} in the current
directory.

Examples:
  reportctl render --format pdf
  reportctl render --records tickets.json --format svg --out laporan.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			filter, err := opts.filter()
			if err != nil {
				return err
			}

			uc, cleanup, err := opts.buildUseCase(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := uc.Document(cmd.Context(), filter, f)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = result.Filename
			}
			if err := os.WriteFile(path, result.Body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d halaman, %d bytes\n", path, result.Pages, len(result.Body))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "pdf", "Document format: pdf | svg")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file")
	return cmd
}
