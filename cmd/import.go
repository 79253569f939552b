package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/carbon-cli/internal/catalog"
	"github.com/sells-group/carbon-cli/internal/project"
	"github.com/sells-group/carbon-cli/internal/tabular"
)

var (
	importProject    string
	importLabel      string
	importFormat     string
	importSheet      string
	importSheetIndex int
)

var importCmd = &cobra.Command{
	Use:   "import <table>",
	Short: "Rebuild project entries from an exported report table",
	Long:  "Reads an XLSX or CSV report table and replaces the entries of the project file with its rows. The project file is created when it does not exist.",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := cfg.Validate("import"); err != nil {
			return err
		}

		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		return runImport(tabular.NewImporter(cat), args[0], importOptions{
			project:    importProject,
			label:      importLabel,
			format:     importFormat,
			sheet:      importSheet,
			sheetIndex: importSheetIndex,
		})
	},
}

type importOptions struct {
	project    string
	label      string
	format     string
	sheet      string
	sheetIndex int
}

func runImport(im *tabular.Importer, tablePath string, opts importOptions) error {
	if opts.project == "" {
		return eris.New("project file is required (--project)")
	}

	var (
		f   tabular.Format
		err error
	)
	if opts.format != "" {
		f, err = tabular.ParseFormat(opts.format)
	} else {
		f, err = tabular.FormatFromFilename(tablePath)
	}
	if err != nil {
		return err
	}

	data, err := os.ReadFile(tablePath)
	if err != nil {
		return eris.Wrapf(err, "import: read %s", tablePath)
	}

	p, err := loadOrCreate(opts.project, opts.label)
	if err != nil {
		return err
	}

	if err := p.Import(im, data, f, tabular.XLSXOptions{SheetName: opts.sheet, SheetIndex: opts.sheetIndex}); err != nil {
		return err
	}
	if err := p.Save(opts.project); err != nil {
		return err
	}

	zap.L().Info("import complete",
		zap.String("table", tablePath),
		zap.String("project", opts.project),
		zap.Int("entries", p.Entries.Len()),
	)
	return nil
}

// loadOrCreate loads the project at path, or starts a new one when no file
// exists there. A non-empty label replaces the stored one.
func loadOrCreate(path, label string) (*project.Project, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return project.New(label), nil
	}

	p, err := project.Load(path)
	if err != nil {
		return nil, eris.Wrap(err, "import")
	}
	if label != "" {
		p.Label = label
	}
	return p, nil
}

func init() {
	importCmd.Flags().StringVar(&importProject, "project", "", "project YAML file to write (required)")
	importCmd.Flags().StringVar(&importLabel, "label", "", "project label")
	importCmd.Flags().StringVar(&importFormat, "format", "", "table format: xlsx or csv (default from extension)")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "worksheet name for xlsx")
	importCmd.Flags().IntVar(&importSheetIndex, "sheet-index", 0, "worksheet index for xlsx when --sheet is unset")
	_ = importCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(importCmd)
}
