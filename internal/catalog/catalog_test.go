package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/carbon-cli/internal/model"
)

func TestDefault_Valid(t *testing.T) {
	t.Parallel()
	require.NoError(t, Validate(DefaultData()))
	assert.NotNil(t, Default())
}

func TestFactorFor(t *testing.T) {
	t.Parallel()
	c := Default()

	tests := []struct {
		name  string
		table Table
		key   string
		want  float64
	}{
		{"material", TableMaterials, "Steel", 1.85},
		{"concrete type", TableConcrete, "CEM I", 0.866},
		{"transport mode", TableTransport, "Rail freight", 0.025},
		{"helicopter payload", TableHelicopterPayload, "Light (< 1 t)", 5.0},
		{"miss is zero", TableMaterials, "Unobtainium", 0},
		{"wrong table is zero", TableEnergy, "Steel", 0},
		{"case-sensitive", TableMaterials, "steel", 0},
		{"unknown table", Table("bogus"), "Steel", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, c.FactorFor(tt.table, tt.key), 1e-9)
		})
	}
}

func TestUnitOfAndTimeBased(t *testing.T) {
	t.Parallel()
	c := Default()

	assert.Equal(t, UnitPerHour, c.UnitOf(TableManufacturing, "Welding"))
	assert.True(t, c.IsTimeBased(TableManufacturing, "Welding"))
	assert.False(t, c.IsTimeBased(TableManufacturing, "Prefabrication"))
	assert.True(t, c.IsTimeBased(TableImplementation, "Mobile crane"))
	assert.False(t, c.IsTimeBased(TableImplementation, "Formwork"))
	assert.False(t, c.IsTimeBased(TableImplementation, "Unknown process"))
	assert.Empty(t, c.UnitOf(TableImplementation, "Unknown process"))
}

func TestTableFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, TableMaterials, TableFor(model.CategoryMaterials))
	assert.Equal(t, TableManufacturing, TableFor(model.CategoryManufacturing))
	assert.Equal(t, TableEnergy, TableFor(model.CategoryEnergy))
	assert.Equal(t, TableImplementation, TableFor(model.CategoryImplementation))
	assert.Equal(t, TableTransport, TableFor(model.CategoryTransport))
	assert.Equal(t, Table(""), TableFor(model.Category("x")))
}

func TestCatalog_IsImmutable(t *testing.T) {
	t.Parallel()

	d := Data{Materials: []Factor{{Name: "Steel", Value: 2}}}
	c, err := New(d)
	require.NoError(t, err)

	d.Materials[0].Value = 99
	assert.InDelta(t, 2, c.FactorFor(TableMaterials, "Steel"), 1e-9)

	out := c.Data()
	out.Materials[0].Value = 42
	assert.InDelta(t, 2, c.FactorFor(TableMaterials, "Steel"), 1e-9)

	grades := c.PaintGrades()
	assert.Empty(t, grades)
}

func TestNames_DatasetOrder(t *testing.T) {
	t.Parallel()
	names := Default().Names(TableHelicopterPayload)
	assert.Equal(t, []string{"Light (< 1 t)", "Medium (1-3 t)", "Heavy (> 3 t)"}, names)
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data Data
		want string
	}{
		{"empty name", Data{Energy: []Factor{{Name: " "}}}, "empty factor name"},
		{"negative", Data{Energy: []Factor{{Name: "x", Value: -1}}}, "negative factor"},
		{"duplicate", Data{Rebar: []Factor{{Name: "x"}, {Name: "x"}}}, "duplicate factor"},
		{"reserved material", Data{Materials: []Factor{{Name: "Paint", Value: 1}}}, "reserved"},
		{"reinforced concrete name", Data{Concrete: []Factor{{Name: "CEM I reinforced"}}}, "reinforcement suffix"},
		{"reserved transport", Data{Transport: []Factor{{Name: "Helicopter"}}}, "reserved"},
		{"reserved concrete", Data{Concrete: []Factor{{Name: "Concrete"}}}, "reserved"},
		{"reserved payload", Data{HelicopterPayloads: []Factor{{Name: "Helicopter"}}}, "reserved"},
		{"material with suffix", Data{Materials: []Factor{{Name: "Steel reinforced"}}}, "read back as concrete"},
		{
			"material named like concrete type",
			Data{Concrete: []Factor{{Name: "C30/37"}}, Materials: []Factor{{Name: "C30/37"}}},
			"read back as concrete",
		},
		{
			"payload collides with mode",
			Data{
				Transport:          []Factor{{Name: "Heavy lift", Value: 1}},
				HelicopterPayloads: []Factor{{Name: "Heavy lift", Value: 2}},
			},
			"collides",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	doc := `
materials:
  - name: Hempcrete
    factor: 0.12
    unit: kgCO2e/kg
manufacturing:
  - name: Laser cutting
    factor: 1.1
    unit: kgCO2e/hr
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.12, c.FactorFor(TableMaterials, "Hempcrete"), 1e-9)
	assert.True(t, c.IsTimeBased(TableManufacturing, "Laser cutting"))
	assert.Zero(t, c.FactorFor(TableMaterials, "Steel"))
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog: read")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("materials: [unterminated"), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog: parse")
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	t.Parallel()
	c, err := Load("")
	require.NoError(t, err)
	assert.Same(t, Default(), c)
}
