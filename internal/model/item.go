package model

// LineItem is a single user-entered entry of a report section.
type LineItem interface {
	Category() Category
	// Key is the discriminant the item is looked up by. Empty when unset.
	Key() string
	Note() string
}

// RawMaterial is a Materials entry: a generic Material, a Concrete pour or a
// Paint coat.
type RawMaterial interface {
	LineItem
	rawMaterial()
}

// TransportLeg is a Transport entry: a Road leg or a Helicopter lift.
type TransportLeg interface {
	LineItem
	transportLeg()
}

// Material is a generic raw material looked up by name, quantity in kg.
type Material struct {
	Name     string
	Quantity float64
	Comment  string
}

// Concrete is a concrete pour. Volume is in m³ and CementMass in kg per m³.
type Concrete struct {
	Type       string
	Volume     float64
	CementMass float64
	Rebar      *Reinforcement // nil when unreinforced
	Comment    string
}

// Reinforcement holds the rebar of a reinforced concrete pour. RebarFactor is
// taken as chosen from the rebar grade list, never re-resolved by name.
type Reinforcement struct {
	RebarMass   float64 // kg per m³
	RebarFactor float64
}

// Paint is a painted surface in m². Factor is the value of the chosen paint
// grade.
type Paint struct {
	Area    float64
	Factor  float64
	Comment string
}

// ManufacturingStep is a manufacturing process with its quantity (kg or hours
// depending on the process).
type ManufacturingStep struct {
	Process string
	Value   float64
	Comment string
}

// EnergyUse is an energy source consumed for a number of hours.
type EnergyUse struct {
	Source      string
	Consumption float64
	Comment     string
}

// ImplementationStep is an on-site process with its quantity (kg or hours).
type ImplementationStep struct {
	Process string
	Value   float64
	Comment string
}

// Road is a transport leg priced by mode. Distance in km, Weight in tonnes.
type Road struct {
	Mode     string
	Distance float64
	Weight   float64
	Comment  string
}

// Helicopter is a helicopter lift priced by payload class.
type Helicopter struct {
	Payload  string
	Distance float64
	Weight   float64
	Comment  string
}

func (Material) Category() Category           { return CategoryMaterials }
func (Concrete) Category() Category           { return CategoryMaterials }
func (Paint) Category() Category              { return CategoryMaterials }
func (ManufacturingStep) Category() Category  { return CategoryManufacturing }
func (EnergyUse) Category() Category          { return CategoryEnergy }
func (ImplementationStep) Category() Category { return CategoryImplementation }
func (Road) Category() Category               { return CategoryTransport }
func (Helicopter) Category() Category         { return CategoryTransport }

func (m Material) Key() string           { return m.Name }
func (Concrete) Key() string             { return MaterialConcrete }
func (Paint) Key() string                { return MaterialPaint }
func (s ManufacturingStep) Key() string  { return s.Process }
func (e EnergyUse) Key() string          { return e.Source }
func (s ImplementationStep) Key() string { return s.Process }
func (r Road) Key() string               { return r.Mode }
func (Helicopter) Key() string           { return ModeHelicopter }

func (m Material) Note() string           { return m.Comment }
func (c Concrete) Note() string           { return c.Comment }
func (p Paint) Note() string              { return p.Comment }
func (s ManufacturingStep) Note() string  { return s.Comment }
func (e EnergyUse) Note() string          { return e.Comment }
func (s ImplementationStep) Note() string { return s.Comment }
func (r Road) Note() string               { return r.Comment }
func (h Helicopter) Note() string         { return h.Comment }

func (Material) rawMaterial() {}
func (Concrete) rawMaterial() {}
func (Paint) rawMaterial()    {}

func (Road) transportLeg()       {}
func (Helicopter) transportLeg() {}

// Reinforced reports whether the pour carries rebar.
func (c Concrete) Reinforced() bool { return c.Rebar != nil }
