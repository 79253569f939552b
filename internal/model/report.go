package model

// Detail is the computed contribution of one line item.
type Detail struct {
	Label string  `json:"label" yaml:"label"`
	CO2e  float64 `json:"co2e" yaml:"co2e"` // kg CO2e
}

// Totals holds the per-category sums and their grand total, in kg CO2e.
type Totals struct {
	Materials      float64 `json:"materials"`
	Manufacturing  float64 `json:"manufacturing"`
	Energy         float64 `json:"energy"`
	Implementation float64 `json:"implementation"`
	Transport      float64 `json:"transport"`
	GrandTotal     float64 `json:"grand_total"`
}

// For returns the total of category c.
func (t Totals) For(c Category) float64 {
	switch c {
	case CategoryMaterials:
		return t.Materials
	case CategoryManufacturing:
		return t.Manufacturing
	case CategoryEnergy:
		return t.Energy
	case CategoryImplementation:
		return t.Implementation
	case CategoryTransport:
		return t.Transport
	}
	return 0
}

// Set stores v as the total of category c. GrandTotal is left untouched.
func (t *Totals) Set(c Category, v float64) {
	switch c {
	case CategoryMaterials:
		t.Materials = v
	case CategoryManufacturing:
		t.Manufacturing = v
	case CategoryEnergy:
		t.Energy = v
	case CategoryImplementation:
		t.Implementation = v
	case CategoryTransport:
		t.Transport = v
	}
}

// Miss records a catalog lookup that matched no factor.
type Miss struct {
	Category Category `json:"category"`
	Index    int      `json:"index"` // position of the entry within its category
	Key      string   `json:"key"`
}

// Report is the result of aggregating an Entries collection.
type Report struct {
	Totals Totals `json:"totals"`
	// Details holds, per category, the positive contributions in entry order.
	Details   map[Category][]Detail `json:"details"`
	Unmatched []Miss                `json:"unmatched,omitempty"`
}
