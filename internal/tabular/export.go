package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sells-group/carbon-cli/internal/catalog"
	"github.com/sells-group/carbon-cli/internal/emission"
	"github.com/sells-group/carbon-cli/internal/model"
)

// Exporter builds report tables from entries.
type Exporter struct {
	calc *emission.Calculator
}

// NewExporter creates an Exporter that computes rows with calc.
func NewExporter(calc *emission.Calculator) *Exporter {
	return &Exporter{calc: calc}
}

// Rows returns the full table: the header, one row per stored entry in
// category order, and the closing Total row. Entries without a discriminant
// are not written.
func (x *Exporter) Rows(entries model.Entries) [][]string {
	report := x.calc.Aggregate(entries)

	rows := [][]string{Header()}
	for _, cat := range model.Categories() {
		for _, item := range entries.Items(cat) {
			if item.Key() == "" {
				continue
			}
			rows = append(rows, x.buildRow(cat, item))
		}
	}

	total := make([]string, numColumns)
	total[ColCategory] = model.TotalMarker
	total[ColCO2e] = formatCO2e(report.Totals.GrandTotal)
	return append(rows, total)
}

// buildRow maps one line item to a table row.
func (x *Exporter) buildRow(cat model.Category, item model.LineItem) []string {
	detail := x.calc.Calculate(item)

	row := make([]string, numColumns)
	row[ColCategory] = string(cat)
	row[ColLabel] = detail.Label
	row[ColEmissionFactor] = formatNumber(x.calc.EmissionFactor(item))
	row[ColCO2e] = formatCO2e(detail.CO2e)
	row[ColComment] = item.Note()

	ref := x.calc.Catalog()
	switch it := item.(type) {
	case model.Concrete:
		row[ColUnit] = UnitVolume
		row[ColQuantity] = formatNumber(it.Volume)
		row[ColCementMass] = formatNumber(it.CementMass)
		if it.Rebar != nil {
			row[ColRebarFactor] = formatNumber(it.Rebar.RebarFactor)
			row[ColRebarMass] = formatNumber(it.Rebar.RebarMass)
		}
	case model.Paint:
		row[ColUnit] = UnitArea
		row[ColQuantity] = formatNumber(it.Area)
	case model.Material:
		row[ColUnit] = UnitMass
		row[ColQuantity] = formatNumber(it.Quantity)
	case model.ManufacturingStep:
		row[ColUnit] = processUnit(ref.IsTimeBased(catalog.TableManufacturing, it.Process))
		row[ColQuantity] = formatNumber(it.Value)
	case model.EnergyUse:
		row[ColUnit] = UnitDuration
		row[ColQuantity] = formatNumber(it.Consumption)
	case model.ImplementationStep:
		row[ColUnit] = processUnit(ref.IsTimeBased(catalog.TableImplementation, it.Process))
		row[ColQuantity] = formatNumber(it.Value)
	case model.Road:
		row[ColUnit] = UnitDistance
		row[ColQuantity] = formatNumber(it.Distance)
		row[ColWeight] = formatNumber(it.Weight)
	case model.Helicopter:
		row[ColUnit] = UnitDistance
		row[ColQuantity] = formatNumber(it.Distance)
		row[ColWeight] = formatNumber(it.Weight)
	}
	return row
}

func processUnit(timeBased bool) string {
	if timeBased {
		return UnitDuration
	}
	return UnitMass
}

// formatNumber writes v in its shortest exact decimal form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatCO2e rounds v to two decimals.
func formatCO2e(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Filename returns the download name of an export for a project label:
// "carbon_report_<label>.<ext>" with spaces replaced by underscores, or
// "carbon_report_export.<ext>" when the label is empty.
func Filename(label string, f Format) string {
	name := strings.ReplaceAll(strings.TrimSpace(label), " ", "_")
	if name == "" {
		name = "export"
	}
	return "carbon_report_" + name + "." + f.Extension()
}
