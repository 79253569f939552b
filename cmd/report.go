package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/carbon-cli/internal/emission"
	"github.com/sells-group/carbon-cli/internal/model"
	"github.com/sells-group/carbon-cli/internal/project"
)

var (
	reportJSON   bool
	reportStrict bool
)

var reportCmd = &cobra.Command{
	Use:   "report <project.yaml>",
	Short: "Compute the carbon footprint of a project file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("report"); err != nil {
			return err
		}

		calc, err := newCalculator()
		if err != nil {
			return err
		}

		return runReport(cmd.OutOrStdout(), calc, args[0], reportJSON, reportStrict || cfg.Report.Strict)
	},
}

// reportOutput is the JSON form of a project report.
type reportOutput struct {
	ID        string                            `json:"id"`
	Label     string                            `json:"label"`
	Totals    model.Totals                      `json:"totals"`
	Details   map[model.Category][]model.Detail `json:"details"`
	Chart     []emission.Series                 `json:"chart"`
	Unmatched []model.Miss                      `json:"unmatched,omitempty"`
}

func runReport(out io.Writer, calc *emission.Calculator, path string, asJSON, strict bool) error {
	p, err := project.Load(path)
	if err != nil {
		return eris.Wrap(err, "report")
	}

	report := p.Report(calc)
	for _, m := range report.Unmatched {
		zap.L().Warn("no emission factor in catalog",
			zap.String("category", string(m.Category)),
			zap.Int("index", m.Index),
			zap.String("key", m.Key),
		)
	}

	if strict {
		if err := emission.Strict(report); err != nil {
			return eris.Wrap(err, "report")
		}
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reportOutput{
			ID:        p.ID.String(),
			Label:     p.Label,
			Totals:    report.Totals,
			Details:   report.Details,
			Chart:     emission.ChartSeries(report),
			Unmatched: report.Unmatched,
		})
	}

	formatReport(out, p.Label, report)
	return nil
}

// formatReport writes category totals followed by the detail breakdown.
func formatReport(out io.Writer, label string, report model.Report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if label != "" {
		_, _ = fmt.Fprintf(w, "Project:\t%s\n\n", label)
	}
	_, _ = fmt.Fprintln(w, "CATEGORY\tKG CO2E")
	_, _ = fmt.Fprintln(w, "--------\t-------")
	for _, cat := range model.Categories() {
		_, _ = fmt.Fprintf(w, "%s\t%.2f\n", cat, report.Totals.For(cat))
	}
	_, _ = fmt.Fprintf(w, "%s\t%.2f\n", model.TotalMarker, report.Totals.GrandTotal)

	for _, cat := range model.Categories() {
		details := report.Details[cat]
		if len(details) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "\n%s\t\n", cat)
		for _, d := range details {
			_, _ = fmt.Fprintf(w, "  %s\t%.2f\n", d.Label, d.CO2e)
		}
	}

	if n := len(report.Unmatched); n > 0 {
		_, _ = fmt.Fprintf(w, "\nUnmatched:\t%d\n", n)
		for _, m := range report.Unmatched {
			_, _ = fmt.Fprintf(w, "  %s[%d]\t%s\n", m.Category, m.Index, m.Key)
		}
	}
	_ = w.Flush()
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the report as JSON")
	reportCmd.Flags().BoolVar(&reportStrict, "strict", false, "fail when an entry has no catalog factor")
	rootCmd.AddCommand(reportCmd)
}
