package tabular

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/carbon-cli/internal/catalog"
	"github.com/sells-group/carbon-cli/internal/emission"
	"github.com/sells-group/carbon-cli/internal/model"
)

func newExporter() *Exporter {
	return NewExporter(emission.NewCalculator(catalog.Default()))
}

func newImporter() *Importer {
	return NewImporter(catalog.Default())
}

// sampleEntries covers every line item variant against the default catalog.
func sampleEntries() model.Entries {
	return model.Entries{
		Materials: []model.RawMaterial{
			model.Concrete{
				Type: "CEM III/A", Volume: 10, CementMass: 300,
				Rebar:   &model.Reinforcement{RebarMass: 100, RebarFactor: 1.2},
				Comment: "slab",
			},
			model.Paint{Area: 40, Factor: 0.45},
			model.Material{Name: "Steel", Quantity: 250},
			model.Material{Name: "Unobtainium", Quantity: 3},
			model.Concrete{Type: "CEM I", Volume: 2.5, CementMass: 350},
		},
		Manufacturing: []model.ManufacturingStep{
			{Process: "Welding", Value: 4},
			{Process: "Prefabrication", Value: 1000, Comment: "beams, columns"},
		},
		Energy: []model.EnergyUse{
			{Source: "Diesel generator", Consumption: 10},
		},
		Implementation: []model.ImplementationStep{
			{Process: "Mobile crane", Value: 2},
		},
		Transport: []model.TransportLeg{
			model.Road{Mode: "Rigid truck", Distance: 120, Weight: 3},
			model.Helicopter{Payload: "Light (< 1 t)", Distance: 50, Weight: 2, Comment: "roof unit"},
		},
	}
}

// createTestXLSX builds a workbook in memory from sheet name to rows.
func createTestXLSX(t *testing.T, sheets map[string][][]string) []byte {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	return writeFile(t, f)
}

func writeFile(t *testing.T, f *xlsx.File) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}
