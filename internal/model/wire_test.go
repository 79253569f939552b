package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEntries_UnmarshalJSONDiscriminants(t *testing.T) {
	t.Parallel()

	body := `{
		"materials": [
			{"material": "Concrete", "quantity": 10, "concrete_type": "C25/30", "cement_mass": 300,
			 "is_reinforced": true, "rebar_mass": 100, "rebar_factor": 1.2},
			{"material": "Paint", "quantity": 40, "paint_factor": 2.5, "concrete_type": "ignored"},
			{"material": "Steel", "quantity": 5, "cement_mass": 999, "comment": "beams"}
		],
		"transport": [
			{"mode": "Helicopter", "distance": 50, "weight": 2, "helicopter_payload": "Medium (1-3 t)"},
			{"mode": "Truck", "distance": 10, "weight": 1, "helicopter_payload": "ignored"}
		]
	}`

	var e Entries
	require.NoError(t, json.Unmarshal([]byte(body), &e))

	require.Len(t, e.Materials, 3)
	assert.Equal(t, Concrete{
		Type: "C25/30", Volume: 10, CementMass: 300,
		Rebar: &Reinforcement{RebarMass: 100, RebarFactor: 1.2},
	}, e.Materials[0])
	assert.Equal(t, Paint{Area: 40, Factor: 2.5}, e.Materials[1])
	assert.Equal(t, Material{Name: "Steel", Quantity: 5, Comment: "beams"}, e.Materials[2])

	require.Len(t, e.Transport, 2)
	assert.Equal(t, Helicopter{Payload: "Medium (1-3 t)", Distance: 50, Weight: 2}, e.Transport[0])
	assert.Equal(t, Road{Mode: "Truck", Distance: 10, Weight: 1}, e.Transport[1])
}

func TestEntries_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	in := Entries{
		Materials: []RawMaterial{
			Concrete{Type: "C30/37", Volume: 3, CementMass: 350},
			Paint{Area: 12, Factor: 3.1, Comment: "walls"},
		},
		Manufacturing:  []ManufacturingStep{{Process: "Welding", Value: 2}},
		Energy:         []EnergyUse{{Source: "Diesel generator", Consumption: 8}},
		Implementation: []ImplementationStep{{Process: "Crane", Value: 6}},
		Transport:      []TransportLeg{Road{Mode: "Truck", Distance: 100, Weight: 4}},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Entries
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestEntries_MarshalJSONEmptyUsesArrays(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Entries{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"materials":[],"manufacturing":[],"energy":[],"implementation":[],"transport":[]}`, string(data))
}

func TestEntries_YAML(t *testing.T) {
	t.Parallel()

	doc := `
materials:
  - material: Concrete
    quantity: 2
    concrete_type: C25/30
    cement_mass: 280
energy:
  - source: Grid electricity
    consumption: 12
    comment: site cabin
`
	var e Entries
	require.NoError(t, yaml.Unmarshal([]byte(doc), &e))
	assert.Equal(t, []RawMaterial{Concrete{Type: "C25/30", Volume: 2, CementMass: 280}}, e.Materials)
	assert.Equal(t, []EnergyUse{{Source: "Grid electricity", Consumption: 12, Comment: "site cabin"}}, e.Energy)

	out, err := yaml.Marshal(e)
	require.NoError(t, err)

	var back Entries
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, e, back)
}

func TestEntries_UnmarshalJSONInvalid(t *testing.T) {
	t.Parallel()

	var e Entries
	err := json.Unmarshal([]byte(`{"materials": "nope"}`), &e)
	require.Error(t, err)
}
