// Package tabular converts project entries to and from the flat carbon report
// table, and encodes that table as XLSX or CSV.
package tabular

import (
	"github.com/rotisserie/eris"
)

// Report table columns, in order.
const (
	ColCategory = iota
	ColLabel
	ColUnit
	ColQuantity
	ColEmissionFactor
	ColCementMass
	ColRebarFactor
	ColRebarMass
	ColWeight
	ColCO2e
	ColComment

	numColumns
)

// columns holds the exact header strings. Import matches them after trimming.
var columns = [numColumns]string{
	ColCategory:       "Category",
	ColLabel:          "Label",
	ColUnit:           "Unit",
	ColQuantity:       "Quantity",
	ColEmissionFactor: "EmissionFactor",
	ColCementMass:     "CementMass",
	ColRebarFactor:    "RebarFactor",
	ColRebarMass:      "RebarMass",
	ColWeight:         "Weight",
	ColCO2e:           "CO2e",
	ColComment:        "Comment",
}

// Header returns the header row.
func Header() []string {
	return append([]string(nil), columns[:]...)
}

// Quantity units written to the Unit column.
const (
	UnitVolume   = "m³"
	UnitArea     = "m²"
	UnitMass     = "kg"
	UnitDuration = "h"
	UnitDistance = "km"
)

// ErrMissingHeader is returned when a table has no header row or lacks a
// required column.
var ErrMissingHeader = eris.New("tabular: missing header")
