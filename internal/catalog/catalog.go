// Package catalog holds the reference emission factors the calculator looks
// line items up against.
package catalog

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/carbon-cli/internal/model"
)

// DurationMarker is the suffix of a declared unit whose quantity is measured
// in hours rather than kilograms.
const DurationMarker = "/hr"

// Table names one lookup table of the catalog.
type Table string

const (
	TableMaterials         Table = "materials"
	TableConcrete          Table = "concrete"
	TableManufacturing     Table = "manufacturing"
	TableEnergy            Table = "energy"
	TableImplementation    Table = "implementation"
	TableTransport         Table = "transport"
	TableHelicopterPayload Table = "helicopter_payloads"
)

// TableFor returns the table a category's discriminant is looked up in.
func TableFor(c model.Category) Table {
	switch c {
	case model.CategoryMaterials:
		return TableMaterials
	case model.CategoryManufacturing:
		return TableManufacturing
	case model.CategoryEnergy:
		return TableEnergy
	case model.CategoryImplementation:
		return TableImplementation
	case model.CategoryTransport:
		return TableTransport
	}
	return ""
}

// Factor is one named emission factor in kg CO2e per declared unit.
type Factor struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"factor" json:"factor"`
	Unit  string  `yaml:"unit" json:"unit"`
}

// TimeBased reports whether the factor is declared per hour.
func (f Factor) TimeBased() bool {
	return strings.HasSuffix(f.Unit, DurationMarker)
}

// Data is the raw dataset of a catalog. Paint and Rebar are closed grade
// lists whose value is used as chosen; they are never looked up by name.
type Data struct {
	Materials          []Factor `yaml:"materials" json:"materials"`
	Concrete           []Factor `yaml:"concrete" json:"concrete"`
	Paint              []Factor `yaml:"paint" json:"paint"`
	Rebar              []Factor `yaml:"rebar" json:"rebar"`
	Manufacturing      []Factor `yaml:"manufacturing" json:"manufacturing"`
	Energy             []Factor `yaml:"energy" json:"energy"`
	Implementation     []Factor `yaml:"implementation" json:"implementation"`
	Transport          []Factor `yaml:"transport" json:"transport"`
	HelicopterPayloads []Factor `yaml:"helicopter_payloads" json:"helicopter_payloads"`
}

func (d Data) tables() map[Table][]Factor {
	return map[Table][]Factor{
		TableMaterials:         d.Materials,
		TableConcrete:          d.Concrete,
		TableManufacturing:     d.Manufacturing,
		TableEnergy:            d.Energy,
		TableImplementation:    d.Implementation,
		TableTransport:         d.Transport,
		TableHelicopterPayload: d.HelicopterPayloads,
	}
}

func (d Data) clone() Data {
	cp := func(f []Factor) []Factor { return append([]Factor(nil), f...) }
	return Data{
		Materials:          cp(d.Materials),
		Concrete:           cp(d.Concrete),
		Paint:              cp(d.Paint),
		Rebar:              cp(d.Rebar),
		Manufacturing:      cp(d.Manufacturing),
		Energy:             cp(d.Energy),
		Implementation:     cp(d.Implementation),
		Transport:          cp(d.Transport),
		HelicopterPayloads: cp(d.HelicopterPayloads),
	}
}

// Catalog is an immutable, indexed emission factor dataset. It is safe for
// concurrent use.
type Catalog struct {
	data  Data
	index map[Table]map[string]Factor
}

// New validates d and builds a Catalog from a copy of it.
func New(d Data) (*Catalog, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}

	c := &Catalog{
		data:  d.clone(),
		index: make(map[Table]map[string]Factor),
	}
	for t, factors := range c.data.tables() {
		byName := make(map[string]Factor, len(factors))
		for _, f := range factors {
			byName[f.Name] = f
		}
		c.index[t] = byName
	}
	return c, nil
}

// Validate checks a dataset for empty or duplicate names, negative factors,
// and name collisions that would make imported labels ambiguous.
func Validate(d Data) error {
	lists := map[string][]Factor{
		"materials":           d.Materials,
		"concrete":            d.Concrete,
		"paint":               d.Paint,
		"rebar":               d.Rebar,
		"manufacturing":       d.Manufacturing,
		"energy":              d.Energy,
		"implementation":      d.Implementation,
		"transport":           d.Transport,
		"helicopter_payloads": d.HelicopterPayloads,
	}
	for name, factors := range lists {
		seen := make(map[string]bool, len(factors))
		for _, f := range factors {
			if strings.TrimSpace(f.Name) == "" {
				return eris.Errorf("catalog: %s: empty factor name", name)
			}
			if f.Value < 0 {
				return eris.Errorf("catalog: %s: negative factor for %q", name, f.Name)
			}
			if seen[f.Name] {
				return eris.Errorf("catalog: %s: duplicate factor %q", name, f.Name)
			}
			seen[f.Name] = true
		}
	}

	concrete := make(map[string]bool, len(d.Concrete))
	for _, c := range d.Concrete {
		if c.Name == model.MaterialConcrete {
			return eris.Errorf("catalog: concrete: %q is reserved", c.Name)
		}
		if strings.HasSuffix(c.Name, model.ReinforcedSuffix) {
			return eris.Errorf("catalog: concrete: %q ends with the reinforcement suffix", c.Name)
		}
		concrete[c.Name] = true
	}
	for _, m := range d.Materials {
		if m.Name == model.MaterialConcrete || m.Name == model.MaterialPaint {
			return eris.Errorf("catalog: materials: %q is reserved", m.Name)
		}
		if strings.HasSuffix(m.Name, model.ReinforcedSuffix) || concrete[m.Name] {
			return eris.Errorf("catalog: materials: %q would be read back as concrete", m.Name)
		}
	}

	modes := make(map[string]bool, len(d.Transport))
	for _, t := range d.Transport {
		if t.Name == model.ModeHelicopter {
			return eris.Errorf("catalog: transport: %q is reserved", t.Name)
		}
		modes[t.Name] = true
	}
	for _, p := range d.HelicopterPayloads {
		if p.Name == model.ModeHelicopter {
			return eris.Errorf("catalog: helicopter payload %q is reserved", p.Name)
		}
		if modes[p.Name] {
			return eris.Errorf("catalog: helicopter payload %q collides with a transport mode", p.Name)
		}
	}
	return nil
}

// Lookup returns the factor named key in table t.
func (c *Catalog) Lookup(t Table, key string) (Factor, bool) {
	f, ok := c.index[t][key]
	return f, ok
}

// FactorFor returns the numeric factor named key in table t, or 0 when no
// entry matches.
func (c *Catalog) FactorFor(t Table, key string) float64 {
	return c.index[t][key].Value
}

// UnitOf returns the declared unit of key in table t, or "" when no entry
// matches.
func (c *Catalog) UnitOf(t Table, key string) string {
	return c.index[t][key].Unit
}

// IsTimeBased reports whether key's declared unit in table t carries the
// duration marker.
func (c *Catalog) IsTimeBased(t Table, key string) bool {
	f, ok := c.Lookup(t, key)
	return ok && f.TimeBased()
}

// Has reports whether table t contains key.
func (c *Catalog) Has(t Table, key string) bool {
	_, ok := c.index[t][key]
	return ok
}

// Names returns the factor names of table t in dataset order.
func (c *Catalog) Names(t Table) []string {
	factors := c.data.tables()[t]
	names := make([]string, 0, len(factors))
	for _, f := range factors {
		names = append(names, f.Name)
	}
	return names
}

// PaintGrades returns the closed list of paint grades.
func (c *Catalog) PaintGrades() []Factor {
	return append([]Factor(nil), c.data.Paint...)
}

// RebarGrades returns the closed list of rebar grades.
func (c *Catalog) RebarGrades() []Factor {
	return append([]Factor(nil), c.data.Rebar...)
}

// Data returns a copy of the underlying dataset.
func (c *Catalog) Data() Data {
	return c.data.clone()
}

// LoadFile reads a YAML dataset from path and builds a Catalog from it.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read %s", path)
	}

	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, eris.Wrap(err, "catalog: parse")
	}
	return New(d)
}

// Load returns the catalog at path, or the built-in dataset when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
