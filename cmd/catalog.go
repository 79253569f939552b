package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/carbon-cli/internal/catalog"
)

var (
	catalogTable string
	catalogDump  bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the emission factors of the active catalog",
	Long:  "Prints the emission factor tables. With --dump the dataset is written as YAML, suitable as a starting point for a custom --catalog file.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("catalog"); err != nil {
			return err
		}

		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		if catalogDump {
			return dumpCatalog(cmd.OutOrStdout(), cat)
		}
		return formatCatalog(cmd.OutOrStdout(), cat, catalogTable)
	},
}

// catalogTables lists the named tables in display order, with the closed
// grade lists last.
var catalogTables = []catalog.Table{
	catalog.TableMaterials,
	catalog.TableConcrete,
	catalog.TableManufacturing,
	catalog.TableEnergy,
	catalog.TableImplementation,
	catalog.TableTransport,
	catalog.TableHelicopterPayload,
}

type catalogSection struct {
	name    string
	factors []catalog.Factor
}

// formatCatalog writes one section per table. An empty filter prints every
// table including the paint and rebar grades.
func formatCatalog(out io.Writer, cat *catalog.Catalog, filter string) error {
	data := cat.Data()
	byTable := map[catalog.Table][]catalog.Factor{
		catalog.TableMaterials:         data.Materials,
		catalog.TableConcrete:          data.Concrete,
		catalog.TableManufacturing:     data.Manufacturing,
		catalog.TableEnergy:            data.Energy,
		catalog.TableImplementation:    data.Implementation,
		catalog.TableTransport:         data.Transport,
		catalog.TableHelicopterPayload: data.HelicopterPayloads,
	}

	all := make([]catalogSection, 0, len(catalogTables)+2)
	for _, t := range catalogTables {
		all = append(all, catalogSection{string(t), byTable[t]})
	}
	all = append(all,
		catalogSection{"paint", cat.PaintGrades()},
		catalogSection{"rebar", cat.RebarGrades()},
	)

	var sections []catalogSection
	for _, s := range all {
		if filter == "" || filter == s.name {
			sections = append(sections, s)
		}
	}
	if len(sections) == 0 {
		return eris.Errorf("catalog: unknown table %q", filter)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, s := range sections {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "[%s]\t\t\n", s.name)
		_, _ = fmt.Fprintln(w, "NAME\tFACTOR\tUNIT")
		for _, f := range s.factors {
			_, _ = fmt.Fprintf(w, "%s\t%g\t%s\n", f.Name, f.Value, f.Unit)
		}
	}
	return w.Flush()
}

func dumpCatalog(out io.Writer, cat *catalog.Catalog) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cat.Data()); err != nil {
		return eris.Wrap(err, "catalog: encode")
	}
	return enc.Close()
}

func init() {
	catalogCmd.Flags().StringVar(&catalogTable, "table", "", "only print one table (materials, concrete, manufacturing, energy, implementation, transport, helicopter_payloads, paint, rebar)")
	catalogCmd.Flags().BoolVar(&catalogDump, "dump", false, "write the dataset as YAML")
	rootCmd.AddCommand(catalogCmd)
}
