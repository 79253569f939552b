package tabular

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// DefaultSheetName is the sheet exports are written to.
const DefaultSheetName = "Carbon Report"

// XLSXOptions configures the XLSX codec.
type XLSXOptions struct {
	SheetIndex int    // read: default 0
	SheetName  string // read: overrides SheetIndex; write: default DefaultSheetName
}

// highlightFill is the background of the header and Total rows.
const highlightFill = "FFD3D3D3"

// numericColumns are written as numeric cells so spreadsheets can sum them.
var numericColumns = map[int]bool{
	ColQuantity:       true,
	ColEmissionFactor: true,
}

// EncodeXLSX writes rows to a single-sheet workbook. The first and last rows
// are rendered bold on a grey fill and columns are sized to their content.
func EncodeXLSX(rows [][]string, opts XLSXOptions) ([]byte, error) {
	name := opts.SheetName
	if name == "" {
		name = DefaultSheetName
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet(name)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: add sheet")
	}

	highlight := xlsx.NewStyle()
	highlight.Font.Bold = true
	highlight.Fill = *xlsx.NewFill("solid", highlightFill, highlightFill)
	highlight.ApplyFont = true
	highlight.ApplyFill = true

	var widths []int
	for i, values := range rows {
		row := sheet.AddRow()
		for j, v := range values {
			cell := row.AddCell()
			setCell(cell, j, v, i == 0)
			if i == 0 || i == len(rows)-1 {
				cell.SetStyle(highlight)
			}

			for len(widths) <= j {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(v); n > widths[j] {
				widths[j] = n
			}
		}
	}

	for j, w := range widths {
		sheet.SetColWidth(j, j, float64(w+2))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, eris.Wrap(err, "xlsx: write workbook")
	}
	return buf.Bytes(), nil
}

func setCell(cell *xlsx.Cell, col int, v string, header bool) {
	if !header && numericColumns[col] {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			cell.SetFloat(n)
			return
		}
	}
	cell.SetString(v)
}

// DecodeXLSX reads all rows of one sheet of a workbook as strings.
func DecodeXLSX(data []byte, opts XLSXOptions) ([][]string, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open workbook")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, rowToStrings(row))
	}
	return rows, nil
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex < 0 || opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("xlsx: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

// rowToStrings returns the cell texts of row. Numeric cells yield their stored
// value rather than the display format so numbers survive a round trip.
func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		if cell == nil {
			continue
		}
		if cell.Type() == xlsx.CellTypeNumeric {
			cells[j] = cell.Value
			continue
		}
		cells[j] = cell.String()
	}
	return cells
}
