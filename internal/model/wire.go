package model

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// entriesDoc is the flat wire form of Entries used by JSON request bodies and
// YAML project files. Each record keeps its discriminant field; sub-variant
// fields are only read when the discriminant selects them.
type entriesDoc struct {
	Materials      []materialDoc  `json:"materials" yaml:"materials"`
	Manufacturing  []processDoc   `json:"manufacturing" yaml:"manufacturing"`
	Energy         []energyDoc    `json:"energy" yaml:"energy"`
	Implementation []processDoc   `json:"implementation" yaml:"implementation"`
	Transport      []transportDoc `json:"transport" yaml:"transport"`
}

type materialDoc struct {
	Material     string  `json:"material" yaml:"material"`
	Quantity     float64 `json:"quantity" yaml:"quantity"`
	Comment      string  `json:"comment,omitempty" yaml:"comment,omitempty"`
	ConcreteType string  `json:"concrete_type,omitempty" yaml:"concrete_type,omitempty"`
	CementMass   float64 `json:"cement_mass,omitempty" yaml:"cement_mass,omitempty"`
	IsReinforced bool    `json:"is_reinforced,omitempty" yaml:"is_reinforced,omitempty"`
	RebarMass    float64 `json:"rebar_mass,omitempty" yaml:"rebar_mass,omitempty"`
	RebarFactor  float64 `json:"rebar_factor,omitempty" yaml:"rebar_factor,omitempty"`
	PaintFactor  float64 `json:"paint_factor,omitempty" yaml:"paint_factor,omitempty"`
}

type processDoc struct {
	Process string  `json:"process" yaml:"process"`
	Value   float64 `json:"value" yaml:"value"`
	Comment string  `json:"comment,omitempty" yaml:"comment,omitempty"`
}

type energyDoc struct {
	Source      string  `json:"source" yaml:"source"`
	Consumption float64 `json:"consumption" yaml:"consumption"`
	Comment     string  `json:"comment,omitempty" yaml:"comment,omitempty"`
}

type transportDoc struct {
	Mode              string  `json:"mode" yaml:"mode"`
	Distance          float64 `json:"distance" yaml:"distance"`
	Weight            float64 `json:"weight" yaml:"weight"`
	Comment           string  `json:"comment,omitempty" yaml:"comment,omitempty"`
	HelicopterPayload string  `json:"helicopter_payload,omitempty" yaml:"helicopter_payload,omitempty"`
}

func (d materialDoc) item() RawMaterial {
	switch d.Material {
	case MaterialConcrete:
		c := Concrete{
			Type:       d.ConcreteType,
			Volume:     d.Quantity,
			CementMass: d.CementMass,
			Comment:    d.Comment,
		}
		if d.IsReinforced {
			c.Rebar = &Reinforcement{RebarMass: d.RebarMass, RebarFactor: d.RebarFactor}
		}
		return c
	case MaterialPaint:
		return Paint{Area: d.Quantity, Factor: d.PaintFactor, Comment: d.Comment}
	}
	return Material{Name: d.Material, Quantity: d.Quantity, Comment: d.Comment}
}

func materialToDoc(m RawMaterial) materialDoc {
	switch it := m.(type) {
	case Concrete:
		d := materialDoc{
			Material:     MaterialConcrete,
			Quantity:     it.Volume,
			Comment:      it.Comment,
			ConcreteType: it.Type,
			CementMass:   it.CementMass,
		}
		if it.Rebar != nil {
			d.IsReinforced = true
			d.RebarMass = it.Rebar.RebarMass
			d.RebarFactor = it.Rebar.RebarFactor
		}
		return d
	case Paint:
		return materialDoc{Material: MaterialPaint, Quantity: it.Area, PaintFactor: it.Factor, Comment: it.Comment}
	case Material:
		return materialDoc{Material: it.Name, Quantity: it.Quantity, Comment: it.Comment}
	}
	return materialDoc{}
}

func (d transportDoc) item() TransportLeg {
	if d.Mode == ModeHelicopter {
		return Helicopter{Payload: d.HelicopterPayload, Distance: d.Distance, Weight: d.Weight, Comment: d.Comment}
	}
	return Road{Mode: d.Mode, Distance: d.Distance, Weight: d.Weight, Comment: d.Comment}
}

func transportToDoc(t TransportLeg) transportDoc {
	switch it := t.(type) {
	case Helicopter:
		return transportDoc{
			Mode:              ModeHelicopter,
			Distance:          it.Distance,
			Weight:            it.Weight,
			Comment:           it.Comment,
			HelicopterPayload: it.Payload,
		}
	case Road:
		return transportDoc{Mode: it.Mode, Distance: it.Distance, Weight: it.Weight, Comment: it.Comment}
	}
	return transportDoc{}
}

func (e Entries) toDoc() entriesDoc {
	doc := entriesDoc{
		Materials:      make([]materialDoc, 0, len(e.Materials)),
		Manufacturing:  make([]processDoc, 0, len(e.Manufacturing)),
		Energy:         make([]energyDoc, 0, len(e.Energy)),
		Implementation: make([]processDoc, 0, len(e.Implementation)),
		Transport:      make([]transportDoc, 0, len(e.Transport)),
	}
	for _, m := range e.Materials {
		doc.Materials = append(doc.Materials, materialToDoc(m))
	}
	for _, s := range e.Manufacturing {
		doc.Manufacturing = append(doc.Manufacturing, processDoc{Process: s.Process, Value: s.Value, Comment: s.Comment})
	}
	for _, u := range e.Energy {
		doc.Energy = append(doc.Energy, energyDoc{Source: u.Source, Consumption: u.Consumption, Comment: u.Comment})
	}
	for _, s := range e.Implementation {
		doc.Implementation = append(doc.Implementation, processDoc{Process: s.Process, Value: s.Value, Comment: s.Comment})
	}
	for _, t := range e.Transport {
		doc.Transport = append(doc.Transport, transportToDoc(t))
	}
	return doc
}

func (doc entriesDoc) entries() Entries {
	var e Entries
	for _, d := range doc.Materials {
		e.Materials = append(e.Materials, d.item())
	}
	for _, d := range doc.Manufacturing {
		e.Manufacturing = append(e.Manufacturing, ManufacturingStep{Process: d.Process, Value: d.Value, Comment: d.Comment})
	}
	for _, d := range doc.Energy {
		e.Energy = append(e.Energy, EnergyUse{Source: d.Source, Consumption: d.Consumption, Comment: d.Comment})
	}
	for _, d := range doc.Implementation {
		e.Implementation = append(e.Implementation, ImplementationStep{Process: d.Process, Value: d.Value, Comment: d.Comment})
	}
	for _, d := range doc.Transport {
		e.Transport = append(e.Transport, d.item())
	}
	return e
}

// MarshalJSON implements json.Marshaler.
func (e Entries) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.toDoc())
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Entries) UnmarshalJSON(data []byte) error {
	var doc entriesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return eris.Wrap(err, "model: decode entries")
	}
	*e = doc.entries()
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Entries) MarshalYAML() (any, error) {
	return e.toDoc(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Entries) UnmarshalYAML(value *yaml.Node) error {
	var doc entriesDoc
	if err := value.Decode(&doc); err != nil {
		return eris.Wrap(err, "model: decode entries")
	}
	*e = doc.entries()
	return nil
}
