package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

func newSummaryCmd(opts *options) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the report bundle",
		Long: `Print the report bundle (KPIs, trends, risk, distributions and the
requested page of detail rows).

Output Format:
  yaml (default) | json

Examples:
  reportctl summary --records tickets.json --period week
  reportctl summary --status escalated --format json --out summary.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "json" {
				return fmt.Errorf("unsupported summary format %q (use yaml or json)", format)
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

			data, err := uc.Summary(cmd.Context(), filter)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return writeSummary(w, data, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml | json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")
	return cmd
}

func writeSummary(w io.Writer, data *domain.ReportData, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
