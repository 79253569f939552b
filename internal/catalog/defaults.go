package catalog

// Declared units of the built-in dataset.
const (
	UnitPerKg     = "kgCO2e/kg"
	UnitPerHour   = "kgCO2e/hr"
	UnitPerM2     = "kgCO2e/m²"
	UnitPerTonKm  = "kgCO2e/t.km"
	UnitPerCement = "kgCO2e/kg cement"
)

var defaultCatalog = mustNew(DefaultData())

func mustNew(d Data) *Catalog {
	c, err := New(d)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// DefaultData returns the built-in emission factor dataset.
func DefaultData() Data {
	return Data{
		Materials: []Factor{
			{Name: "Steel", Value: 1.85, Unit: UnitPerKg},
			{Name: "Stainless steel", Value: 6.15, Unit: UnitPerKg},
			{Name: "Aluminium", Value: 8.6, Unit: UnitPerKg},
			{Name: "Copper", Value: 3.8, Unit: UnitPerKg},
			{Name: "Timber", Value: 0.45, Unit: UnitPerKg},
			{Name: "Glass", Value: 1.2, Unit: UnitPerKg},
			{Name: "Brick", Value: 0.24, Unit: UnitPerKg},
			{Name: "Asphalt", Value: 0.05, Unit: UnitPerKg},
			{Name: "Gravel", Value: 0.005, Unit: UnitPerKg},
			{Name: "Sand", Value: 0.0051, Unit: UnitPerKg},
			{Name: "PVC", Value: 2.41, Unit: UnitPerKg},
			{Name: "Mineral wool", Value: 1.28, Unit: UnitPerKg},
			{Name: "Plasterboard", Value: 0.39, Unit: UnitPerKg},
		},
		Concrete: []Factor{
			{Name: "CEM I", Value: 0.866, Unit: UnitPerCement},
			{Name: "CEM II/A", Value: 0.75, Unit: UnitPerCement},
			{Name: "CEM II/B", Value: 0.65, Unit: UnitPerCement},
			{Name: "CEM III/A", Value: 0.47, Unit: UnitPerCement},
			{Name: "CEM III/B", Value: 0.29, Unit: UnitPerCement},
			{Name: "CEM V/A", Value: 0.5, Unit: UnitPerCement},
		},
		Paint: []Factor{
			{Name: "Water-based acrylic", Value: 0.45, Unit: UnitPerM2},
			{Name: "Mineral silicate", Value: 0.3, Unit: UnitPerM2},
			{Name: "Alkyd solvent-based", Value: 1.1, Unit: UnitPerM2},
			{Name: "Epoxy", Value: 1.6, Unit: UnitPerM2},
		},
		Rebar: []Factor{
			{Name: "Recycled (EAF)", Value: 0.61, Unit: UnitPerKg},
			{Name: "Standard B500B", Value: 1.2, Unit: UnitPerKg},
			{Name: "Primary (BOF)", Value: 2.3, Unit: UnitPerKg},
		},
		Manufacturing: []Factor{
			{Name: "Welding", Value: 1.8, Unit: UnitPerHour},
			{Name: "Plasma cutting", Value: 0.9, Unit: UnitPerHour},
			{Name: "Machining", Value: 2.4, Unit: UnitPerHour},
			{Name: "Prefabrication", Value: 0.12, Unit: UnitPerKg},
			{Name: "Hot-dip galvanizing", Value: 0.35, Unit: UnitPerKg},
			{Name: "Powder coating", Value: 0.21, Unit: UnitPerKg},
		},
		Energy: []Factor{
			{Name: "Diesel generator", Value: 8.5, Unit: UnitPerHour},
			{Name: "Petrol generator", Value: 7.0, Unit: UnitPerHour},
			{Name: "Grid electricity", Value: 1.2, Unit: UnitPerHour},
			{Name: "Solar generator", Value: 0.1, Unit: UnitPerHour},
		},
		Implementation: []Factor{
			{Name: "Mobile crane", Value: 45, Unit: UnitPerHour},
			{Name: "Excavator", Value: 32, Unit: UnitPerHour},
			{Name: "Concrete pump", Value: 28, Unit: UnitPerHour},
			{Name: "Compactor", Value: 12, Unit: UnitPerHour},
			{Name: "Formwork", Value: 0.08, Unit: UnitPerKg},
			{Name: "Scaffolding", Value: 0.05, Unit: UnitPerKg},
		},
		Transport: []Factor{
			{Name: "Articulated truck", Value: 0.085, Unit: UnitPerTonKm},
			{Name: "Rigid truck", Value: 0.19, Unit: UnitPerTonKm},
			{Name: "Light van", Value: 0.6, Unit: UnitPerTonKm},
			{Name: "Rail freight", Value: 0.025, Unit: UnitPerTonKm},
			{Name: "Inland barge", Value: 0.035, Unit: UnitPerTonKm},
			{Name: "Sea freight", Value: 0.012, Unit: UnitPerTonKm},
		},
		HelicopterPayloads: []Factor{
			{Name: "Light (< 1 t)", Value: 5.0, Unit: UnitPerTonKm},
			{Name: "Medium (1-3 t)", Value: 3.2, Unit: UnitPerTonKm},
			{Name: "Heavy (> 3 t)", Value: 2.1, Unit: UnitPerTonKm},
		},
	}
}
