package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/carbon-cli/internal/emission"
	"github.com/sells-group/carbon-cli/internal/project"
	"github.com/sells-group/carbon-cli/internal/tabular"
)

var (
	exportFormat string
	exportOut    string
	exportSheet  string
)

var exportCmd = &cobra.Command{
	Use:   "export <project.yaml>",
	Short: "Write a project's report table as XLSX or CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != "" {
			cfg.Export.Format = exportFormat
		}
		if exportSheet != "" {
			cfg.Export.SheetName = exportSheet
		}
		if err := cfg.Validate("export"); err != nil {
			return err
		}

		calc, err := newCalculator()
		if err != nil {
			return err
		}

		path, err := runExport(calc, args[0], cfg.Export.Format, cfg.Export.SheetName, exportOut)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// runExport writes the report table of the project at projectPath and returns
// the path written. An empty out uses the default report filename.
func runExport(calc *emission.Calculator, projectPath, format, sheet, out string) (string, error) {
	f, err := tabular.ParseFormat(format)
	if err != nil {
		return "", err
	}

	p, err := project.Load(projectPath)
	if err != nil {
		return "", eris.Wrap(err, "export")
	}

	data, err := tabular.NewExporter(calc).Export(p.Entries, f, tabular.XLSXOptions{SheetName: sheet})
	if err != nil {
		return "", eris.Wrap(err, "export")
	}

	if out == "" {
		out = p.Filename(f)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return "", eris.Wrapf(err, "export: write %s", out)
	}

	zap.L().Info("export complete",
		zap.String("project", p.Label),
		zap.String("format", string(f)),
		zap.String("out", out),
		zap.Int("entries", p.Entries.Len()),
	)
	return out, nil
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "table format: xlsx or csv (default from config)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default carbon_report_<label>.<format>)")
	exportCmd.Flags().StringVar(&exportSheet, "sheet", "", "worksheet name for xlsx (default from config)")
	rootCmd.AddCommand(exportCmd)
}
