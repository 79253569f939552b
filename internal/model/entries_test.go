package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries_AppendRoutesByCategory(t *testing.T) {
	t.Parallel()

	var e Entries
	require.NoError(t, e.Append(Material{Name: "Steel", Quantity: 10}))
	require.NoError(t, e.Append(Concrete{Type: "C25/30", Volume: 2}))
	require.NoError(t, e.Append(ManufacturingStep{Process: "Welding", Value: 3}))
	require.NoError(t, e.Append(EnergyUse{Source: "Diesel generator", Consumption: 4}))
	require.NoError(t, e.Append(ImplementationStep{Process: "Crane", Value: 5}))
	require.NoError(t, e.Append(Helicopter{Payload: "Light (< 1 t)", Distance: 1, Weight: 1}))

	assert.Len(t, e.Materials, 2)
	assert.Len(t, e.Manufacturing, 1)
	assert.Len(t, e.Energy, 1)
	assert.Len(t, e.Implementation, 1)
	assert.Len(t, e.Transport, 1)
	assert.Equal(t, 6, e.Len())
}

func TestEntries_AppendNil(t *testing.T) {
	t.Parallel()

	var e Entries
	err := e.Append(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil line item")
}

func TestEntries_AppendRejectsPointers(t *testing.T) {
	t.Parallel()

	items := []LineItem{
		&Material{Name: "Steel", Quantity: 10},
		&Concrete{Type: "C25/30", Volume: 2},
		&Paint{Area: 4, Factor: 1},
		&Road{Mode: "Rigid truck", Distance: 10, Weight: 1},
		&Helicopter{Payload: "Light (< 1 t)", Distance: 1, Weight: 1},
		&ManufacturingStep{Process: "Welding", Value: 3},
		&EnergyUse{Source: "Diesel generator", Consumption: 4},
		&ImplementationStep{Process: "Crane", Value: 5},
	}

	var e Entries
	for _, item := range items {
		require.Error(t, e.Append(item), "%T", item)
	}
	assert.Zero(t, e.Len())
	assert.Nil(t, e.Materials)
	assert.Nil(t, e.Transport)
}

func TestEntries_Remove(t *testing.T) {
	t.Parallel()

	e := Entries{
		Energy: []EnergyUse{{Source: "a"}, {Source: "b"}, {Source: "c"}},
	}
	orig := e.Energy

	require.NoError(t, e.Remove(CategoryEnergy, 1))
	assert.Equal(t, []EnergyUse{{Source: "a"}, {Source: "c"}}, e.Energy)
	// the caller's previous slice is left intact
	assert.Equal(t, "b", orig[1].Source)

	err := e.Remove(CategoryEnergy, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	err = e.Remove(Category("Bogus"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestEntries_ItemsPreservesOrder(t *testing.T) {
	t.Parallel()

	e := Entries{
		Transport: []TransportLeg{
			Road{Mode: "Truck"},
			Helicopter{Payload: "Heavy"},
			Road{Mode: "Train"},
		},
	}
	items := e.Items(CategoryTransport)
	require.Len(t, items, 3)
	assert.Equal(t, "Truck", items[0].Key())
	assert.Equal(t, ModeHelicopter, items[1].Key())
	assert.Equal(t, "Train", items[2].Key())
	assert.Empty(t, e.Items(CategoryEnergy))
}

func TestEntries_CloneIsDeep(t *testing.T) {
	t.Parallel()

	e := Entries{
		Materials: []RawMaterial{
			Concrete{Type: "C25/30", Rebar: &Reinforcement{RebarMass: 80, RebarFactor: 1.2}},
		},
		Manufacturing: []ManufacturingStep{{Process: "Welding"}},
	}
	c := e.Clone()
	c.Manufacturing[0].Process = "Cutting"
	c.Materials[0].(Concrete).Rebar.RebarMass = 1

	assert.Equal(t, "Welding", e.Manufacturing[0].Process)
	assert.InDelta(t, 80, e.Materials[0].(Concrete).Rebar.RebarMass, 1e-9)
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		got, ok := ParseCategory(string(c))
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}

	_, ok := ParseCategory("materials")
	assert.False(t, ok, "markers are case-significant")
	_, ok = ParseCategory(TotalMarker)
	assert.False(t, ok)
}

func TestTotals_ForAndSet(t *testing.T) {
	t.Parallel()

	var tot Totals
	for i, c := range Categories() {
		tot.Set(c, float64(i+1))
	}
	for i, c := range Categories() {
		assert.InDelta(t, float64(i+1), tot.For(c), 1e-9)
	}
	assert.Zero(t, tot.GrandTotal)
	assert.Zero(t, tot.For(Category("nope")))
}
