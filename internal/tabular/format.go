package tabular

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/carbon-cli/internal/model"
)

// Format is a table encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat returns the format named s (case-insensitive, optional leading dot).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))); f {
	case FormatXLSX, FormatCSV:
		return f, nil
	}
	return "", eris.Errorf("tabular: unsupported format %q", s)
}

// FormatFromFilename infers the format from a file extension.
func FormatFromFilename(name string) (Format, error) {
	return ParseFormat(filepath.Ext(name))
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	return string(f)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Encode writes rows in format f.
func Encode(rows [][]string, f Format, opts XLSXOptions) ([]byte, error) {
	switch f {
	case FormatXLSX:
		return EncodeXLSX(rows, opts)
	case FormatCSV:
		return EncodeCSV(rows)
	}
	return nil, eris.Errorf("tabular: unsupported format %q", f)
}

// Decode reads rows in format f.
func Decode(data []byte, f Format, opts XLSXOptions) ([][]string, error) {
	switch f {
	case FormatXLSX:
		return DecodeXLSX(data, opts)
	case FormatCSV:
		return DecodeCSV(data)
	}
	return nil, eris.Errorf("tabular: unsupported format %q", f)
}

// Export computes entries into a table and encodes it in format f.
func (x *Exporter) Export(entries model.Entries, f Format, opts XLSXOptions) ([]byte, error) {
	data, err := Encode(x.Rows(entries), f, opts)
	if err != nil {
		return nil, eris.Wrap(err, "tabular: export")
	}
	return data, nil
}

// Import decodes data in format f and parses it into entries. On any failure
// no entries are returned.
func (im *Importer) Import(data []byte, f Format, opts XLSXOptions) (model.Entries, error) {
	rows, err := Decode(data, f, opts)
	if err != nil {
		return model.Entries{}, eris.Wrap(err, "tabular: import")
	}
	return im.Parse(rows)
}
