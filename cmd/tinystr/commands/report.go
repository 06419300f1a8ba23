package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tinystr/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [corpora...]",
		Short: "Report the compact-string footprint of token corpora",
		Long: "Reads newline-delimited token corpora (plain or .gz) and reports how " +
			"they would be stored as compact strings: inline/heap split, bytes " +
			"compared with conventional string headers, and the savings.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}

			rep, err := c.app.Report(cmd.Context(), args)
			if err != nil {
				return err
			}
			return renderReport(cmd.OutOrStdout(), rep, format)
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
	return cmd
}

func renderReport(w io.Writer, rep *domain.Report, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return zerr.Wrap(err, "failed to marshal report")
		}
		_, err = w.Write(data)
		return err
	case "text":
		for _, c := range rep.Corpora {
			writeCorpusLine(w, c.Path, c)
		}
		writeCorpusLine(w, "total", rep.Total)
		return nil
	default:
		return zerr.With(zerr.New("unknown output format"), "format", format)
	}
}

func writeCorpusLine(w io.Writer, label string, c domain.CorpusReport) {
	_, _ = fmt.Fprintf(w, "%s: %d tokens (%d distinct), %d inline / %d heap, %d B compact vs %d B string, saved %d B",
		label, c.Tokens, c.Distinct, c.Inline, c.Heap, c.CompactBytes, c.StringBytes, c.SavedBytes)
	if c.Oversize > 0 {
		_, _ = fmt.Fprintf(w, " (%d oversize skipped)", c.Oversize)
	}
	_, _ = fmt.Fprintln(w)
}
