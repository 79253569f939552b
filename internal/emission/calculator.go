// Package emission computes the CO2e contribution of line items and
// aggregates them into a report.
package emission

import (
	"github.com/sells-group/carbon-cli/internal/catalog"
	"github.com/sells-group/carbon-cli/internal/model"
)

// Calculator computes contributions against a catalog.
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator creates a Calculator with the given catalog.
func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// Catalog returns the catalog the calculator looks factors up in.
func (c *Calculator) Catalog() *catalog.Catalog {
	return c.catalog
}

// resolution is the outcome of looking an item's factor up.
type resolution struct {
	factor float64
	table  catalog.Table
	key    string
	// looked is false when the factor is taken from the item itself.
	looked bool
	found  bool
}

func (c *Calculator) resolve(item model.LineItem) resolution {
	lookup := func(t catalog.Table, key string) resolution {
		f, ok := c.catalog.Lookup(t, key)
		return resolution{factor: f.Value, table: t, key: key, looked: true, found: ok}
	}

	switch it := item.(type) {
	case model.Concrete:
		return lookup(catalog.TableConcrete, it.Type)
	case model.Paint:
		return resolution{factor: it.Factor}
	case model.Material:
		return lookup(catalog.TableMaterials, it.Name)
	case model.ManufacturingStep:
		return lookup(catalog.TableManufacturing, it.Process)
	case model.EnergyUse:
		return lookup(catalog.TableEnergy, it.Source)
	case model.ImplementationStep:
		return lookup(catalog.TableImplementation, it.Process)
	case model.Road:
		return lookup(catalog.TableTransport, it.Mode)
	case model.Helicopter:
		return lookup(catalog.TableHelicopterPayload, it.Payload)
	}
	return resolution{}
}

// EmissionFactor returns the factor applied to item: the catalog factor of its
// discriminant, or the chosen grade value for paint. Misses yield 0.
func (c *Calculator) EmissionFactor(item model.LineItem) float64 {
	return c.resolve(item).factor
}

// Calculate returns the label and CO2e contribution of item. It never fails:
// unknown discriminants and missing quantities contribute 0.
func (c *Calculator) Calculate(item model.LineItem) model.Detail {
	factor := c.resolve(item).factor

	switch it := item.(type) {
	case model.Concrete:
		label := orDefault(it.Type, model.MaterialConcrete)
		co2e := it.Volume * it.CementMass * factor
		if it.Rebar != nil {
			co2e += it.Volume * it.Rebar.RebarMass * it.Rebar.RebarFactor
			label += model.ReinforcedSuffix
		}
		return model.Detail{Label: label, CO2e: co2e}
	case model.Paint:
		return model.Detail{Label: model.MaterialPaint, CO2e: it.Area * factor}
	case model.Material:
		return model.Detail{Label: orDefault(it.Name, model.UnknownLabel), CO2e: it.Quantity * factor}
	case model.ManufacturingStep:
		return model.Detail{Label: orDefault(it.Process, model.UnknownLabel), CO2e: it.Value * factor}
	case model.EnergyUse:
		return model.Detail{Label: orDefault(it.Source, model.UnknownLabel), CO2e: it.Consumption * factor}
	case model.ImplementationStep:
		return model.Detail{Label: orDefault(it.Process, model.UnknownLabel), CO2e: it.Value * factor}
	case model.Road:
		return model.Detail{Label: orDefault(it.Mode, model.UnknownLabel), CO2e: it.Distance * it.Weight * factor}
	case model.Helicopter:
		return model.Detail{Label: orDefault(it.Payload, model.ModeHelicopter), CO2e: it.Distance * it.Weight * factor}
	}
	return model.Detail{Label: model.UnknownLabel}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
