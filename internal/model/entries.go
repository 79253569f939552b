package model

import "github.com/rotisserie/eris"

// Entries is the full collection of line items of a project, one ordered
// slice per category.
type Entries struct {
	Materials      []RawMaterial
	Manufacturing  []ManufacturingStep
	Energy         []EnergyUse
	Implementation []ImplementationStep
	Transport      []TransportLeg
}

// Append adds item at the end of its category. Items are stored by value;
// pointers to line items are rejected.
func (e *Entries) Append(item LineItem) error {
	switch it := item.(type) {
	case *Material, *Concrete, *Paint, *Road, *Helicopter:
		return eris.Errorf("model: line item %T must be passed by value", item)
	case RawMaterial:
		e.Materials = append(e.Materials, it)
	case ManufacturingStep:
		e.Manufacturing = append(e.Manufacturing, it)
	case EnergyUse:
		e.Energy = append(e.Energy, it)
	case ImplementationStep:
		e.Implementation = append(e.Implementation, it)
	case TransportLeg:
		e.Transport = append(e.Transport, it)
	case nil:
		return eris.New("model: append nil line item")
	default:
		return eris.Errorf("model: unsupported line item %T", item)
	}
	return nil
}

// Remove deletes the item at index i of category c.
func (e *Entries) Remove(c Category, i int) error {
	n := e.count(c)
	if n < 0 {
		return eris.Errorf("model: unknown category %q", c)
	}
	if i < 0 || i >= n {
		return eris.Errorf("model: %s index %d out of range (have %d)", c, i, n)
	}

	switch c {
	case CategoryMaterials:
		e.Materials = append(e.Materials[:i:i], e.Materials[i+1:]...)
	case CategoryManufacturing:
		e.Manufacturing = append(e.Manufacturing[:i:i], e.Manufacturing[i+1:]...)
	case CategoryEnergy:
		e.Energy = append(e.Energy[:i:i], e.Energy[i+1:]...)
	case CategoryImplementation:
		e.Implementation = append(e.Implementation[:i:i], e.Implementation[i+1:]...)
	case CategoryTransport:
		e.Transport = append(e.Transport[:i:i], e.Transport[i+1:]...)
	}
	return nil
}

func (e Entries) count(c Category) int {
	switch c {
	case CategoryMaterials:
		return len(e.Materials)
	case CategoryManufacturing:
		return len(e.Manufacturing)
	case CategoryEnergy:
		return len(e.Energy)
	case CategoryImplementation:
		return len(e.Implementation)
	case CategoryTransport:
		return len(e.Transport)
	}
	return -1
}

// Len returns the number of items across all categories.
func (e Entries) Len() int {
	return len(e.Materials) + len(e.Manufacturing) + len(e.Energy) +
		len(e.Implementation) + len(e.Transport)
}

// Items returns the items of category c in insertion order.
func (e Entries) Items(c Category) []LineItem {
	var out []LineItem
	switch c {
	case CategoryMaterials:
		for _, it := range e.Materials {
			out = append(out, it)
		}
	case CategoryManufacturing:
		for _, it := range e.Manufacturing {
			out = append(out, it)
		}
	case CategoryEnergy:
		for _, it := range e.Energy {
			out = append(out, it)
		}
	case CategoryImplementation:
		for _, it := range e.Implementation {
			out = append(out, it)
		}
	case CategoryTransport:
		for _, it := range e.Transport {
			out = append(out, it)
		}
	}
	return out
}

// Clone returns a copy that shares no slices or reinforcement pointers with e.
func (e Entries) Clone() Entries {
	out := Entries{
		Manufacturing:  append([]ManufacturingStep(nil), e.Manufacturing...),
		Energy:         append([]EnergyUse(nil), e.Energy...),
		Implementation: append([]ImplementationStep(nil), e.Implementation...),
		Transport:      append([]TransportLeg(nil), e.Transport...),
	}
	for _, m := range e.Materials {
		if c, ok := m.(Concrete); ok && c.Rebar != nil {
			r := *c.Rebar
			c.Rebar = &r
			m = c
		}
		out.Materials = append(out.Materials, m)
	}
	return out
}
