package tabular

import (
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/sells-group/carbon-cli/internal/catalog"
	"github.com/sells-group/carbon-cli/internal/model"
)

// Importer rebuilds entries from report tables.
type Importer struct {
	catalog *catalog.Catalog
}

// NewImporter creates an Importer that resolves concrete types and helicopter
// payload classes against c.
func NewImporter(c *catalog.Catalog) *Importer {
	return &Importer{catalog: c}
}

// headerIndex maps trimmed column names to their position.
type headerIndex map[string]int

func newHeaderIndex(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

// tableRow reads cells of one data row by column.
type tableRow struct {
	cells []string
	index headerIndex
}

func (r tableRow) raw(col int) string {
	i, ok := r.index[columns[col]]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

func (r tableRow) text(col int) string {
	return strings.TrimSpace(r.raw(col))
}

// number parses a numeric cell, falling back to 0 on empty, malformed or
// non-finite content.
func (r tableRow) number(col int) float64 {
	s := r.text(col)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Parse converts a table into entries. rows[0] must be the header. A row's
// Category cell sets the current section until another marker or the Total
// row; rows without a Label are skipped. Malformed numbers become 0. Parse
// only fails when the header is missing or lacks the Category or Label column,
// in which case no entries are returned.
func (im *Importer) Parse(rows [][]string) (model.Entries, error) {
	if len(rows) == 0 {
		return model.Entries{}, eris.Wrap(ErrMissingHeader, "tabular: empty table")
	}

	index := newHeaderIndex(rows[0])
	for _, col := range []int{ColCategory, ColLabel} {
		if _, ok := index[columns[col]]; !ok {
			return model.Entries{}, eris.Wrapf(ErrMissingHeader, "tabular: column %q not found", columns[col])
		}
	}

	var (
		entries model.Entries
		current string
	)
	for n, cells := range rows[1:] {
		row := tableRow{cells: cells, index: index}

		switch section := row.text(ColCategory); section {
		case "":
		case model.TotalMarker:
			current = ""
		default:
			current = section
		}

		label := norm.NFC.String(row.text(ColLabel))
		if label == "" {
			continue
		}

		cat, ok := model.ParseCategory(current)
		if !ok {
			zap.L().Debug("tabular: skipping row outside a known section",
				zap.Int("row", n+2),
				zap.String("section", current),
				zap.String("label", label),
			)
			continue
		}

		// Append cannot fail: every item built here is a known line item.
		_ = entries.Append(im.buildItem(cat, label, row))
	}

	return entries, nil
}

// buildItem reconstructs the typed line item of one row.
func (im *Importer) buildItem(cat model.Category, label string, row tableRow) model.LineItem {
	comment := row.raw(ColComment)
	quantity := row.number(ColQuantity)

	switch cat {
	case model.CategoryMaterials:
		return im.buildMaterial(label, quantity, comment, row)
	case model.CategoryManufacturing:
		return model.ManufacturingStep{Process: label, Value: quantity, Comment: comment}
	case model.CategoryEnergy:
		return model.EnergyUse{Source: label, Consumption: quantity, Comment: comment}
	case model.CategoryImplementation:
		return model.ImplementationStep{Process: label, Value: quantity, Comment: comment}
	}

	weight := row.number(ColWeight)
	if payload, ok := im.helicopterPayload(label); ok {
		return model.Helicopter{Payload: payload, Distance: quantity, Weight: weight, Comment: comment}
	}
	return model.Road{Mode: label, Distance: quantity, Weight: weight, Comment: comment}
}

func (im *Importer) buildMaterial(label string, quantity float64, comment string, row tableRow) model.RawMaterial {
	concrete := func(concreteType string) model.Concrete {
		if concreteType == model.MaterialConcrete {
			concreteType = ""
		}
		return model.Concrete{
			Type:       concreteType,
			Volume:     quantity,
			CementMass: row.number(ColCementMass),
			Comment:    comment,
		}
	}

	switch {
	case strings.HasSuffix(label, model.ReinforcedSuffix):
		c := concrete(strings.TrimSpace(strings.TrimSuffix(label, model.ReinforcedSuffix)))
		c.Rebar = &model.Reinforcement{
			RebarMass:   row.number(ColRebarMass),
			RebarFactor: row.number(ColRebarFactor),
		}
		return c
	case label == model.MaterialConcrete || im.catalog.Has(catalog.TableConcrete, label):
		return concrete(label)
	case label == model.MaterialPaint:
		return model.Paint{Area: quantity, Factor: row.number(ColEmissionFactor), Comment: comment}
	}
	return model.Material{Name: label, Quantity: quantity, Comment: comment}
}

// helicopterPayload decides whether a Transport label denotes a helicopter
// lift. The bare mode name is a helicopter without payload class; a label is a
// payload class only when it is a catalog payload name and not also a road
// mode.
func (im *Importer) helicopterPayload(label string) (string, bool) {
	if label == model.ModeHelicopter {
		return "", true
	}
	if im.catalog.Has(catalog.TableHelicopterPayload, label) && !im.catalog.Has(catalog.TableTransport, label) {
		return label, true
	}
	return "", false
}
