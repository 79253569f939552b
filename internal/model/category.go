package model

// Category is one of the five fixed report sections. The string value is the
// literal section marker written to and read from exported tables.
type Category string

const (
	CategoryMaterials      Category = "Materials"
	CategoryManufacturing  Category = "Manufacturing"
	CategoryEnergy         Category = "Energy"
	CategoryImplementation Category = "Implementation"
	CategoryTransport      Category = "Transport"
)

// TotalMarker is the section marker of the closing total row. It ends
// propagation of the sticky category during import.
const TotalMarker = "Total"

// Categories returns the five categories in report and export order.
func Categories() []Category {
	return []Category{
		CategoryMaterials,
		CategoryManufacturing,
		CategoryEnergy,
		CategoryImplementation,
		CategoryTransport,
	}
}

// ParseCategory returns the category whose marker equals s exactly.
// Markers are case-significant.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(s); c {
	case CategoryMaterials, CategoryManufacturing, CategoryEnergy,
		CategoryImplementation, CategoryTransport:
		return c, true
	}
	return "", false
}

// Discriminant values with special calculation rules.
const (
	MaterialConcrete = "Concrete"
	MaterialPaint    = "Paint"
	ModeHelicopter   = "Helicopter"
)

// ReinforcedSuffix is appended to a concrete label when the concrete carries
// reinforcement.
const ReinforcedSuffix = " reinforced"

// UnknownLabel is the detail label of an entry without a discriminant.
const UnknownLabel = "Unknown"
