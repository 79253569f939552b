package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func TestEncodeXLSX_Layout(t *testing.T) {
	t.Parallel()

	rows := newExporter().Rows(sampleEntries())
	data, err := EncodeXLSX(rows, XLSXOptions{})
	require.NoError(t, err)

	f, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	assert.Equal(t, DefaultSheetName, sheet.Name)
	require.Len(t, sheet.Rows, len(rows))

	assert.Equal(t, "Category", sheet.Rows[0].Cells[ColCategory].String())
	assert.Equal(t, "Total", sheet.Rows[len(rows)-1].Cells[ColCategory].String())
	assert.Equal(t, xlsx.CellTypeNumeric, sheet.Rows[1].Cells[ColQuantity].Type())
	assert.Equal(t, "2610.00", sheet.Rows[1].Cells[ColCO2e].String())

	require.GreaterOrEqual(t, len(sheet.Cols), len(Header()))
	require.NotNil(t, sheet.Cols[ColLabel])
	assert.Greater(t, sheet.Cols[ColLabel].Width, float64(len("Label")))
}

func TestEncodeXLSX_CustomSheetName(t *testing.T) {
	t.Parallel()

	data, err := EncodeXLSX([][]string{Header()}, XLSXOptions{SheetName: "Bridge"})
	require.NoError(t, err)

	f, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	_, ok := f.Sheet["Bridge"]
	assert.True(t, ok)
}

func TestDecodeXLSX(t *testing.T) {
	t.Parallel()

	data := createTestXLSX(t, map[string][][]string{
		"Report": {
			{"Category", "Label", "Quantity"},
			{"Energy", "Diesel generator", "3"},
		},
	})

	rows, err := DecodeXLSX(data, XLSXOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Category", "Label", "Quantity"}, rows[0])
	assert.Equal(t, []string{"Energy", "Diesel generator", "3"}, rows[1])

	rows, err = DecodeXLSX(data, XLSXOptions{SheetName: "Report"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestDecodeXLSX_NumericCellsReadRaw(t *testing.T) {
	t.Parallel()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)
	row := sheet.AddRow()
	row.AddCell().SetString("Materials")
	row.AddCell().SetFloat(0.866)
	row.AddCell().SetFloat(2.5)

	data := writeFile(t, f)
	rows, err := DecodeXLSX(data, XLSXOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Materials", "0.866", "2.5"}, rows[0])
}

func TestDecodeXLSX_Errors(t *testing.T) {
	t.Parallel()

	data := createTestXLSX(t, map[string][][]string{
		"Only": {{"Category", "Label"}},
	})

	tests := []struct {
		name    string
		data    []byte
		opts    XLSXOptions
		wantErr string
	}{
		{"invalid data", []byte("not a workbook"), XLSXOptions{}, "xlsx: open workbook"},
		{"sheet not found", data, XLSXOptions{SheetName: "Missing"}, `sheet "Missing" not found`},
		{"index out of range", data, XLSXOptions{SheetIndex: 3}, "out of range"},
		{"negative index", data, XLSXOptions{SheetIndex: -1}, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeXLSX(tt.data, tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
