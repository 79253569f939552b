package tabular

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
)

// EncodeCSV writes rows as comma-separated values.
func EncodeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, eris.Wrap(err, "csv: write rows")
	}
	return buf.Bytes(), nil
}

// DecodeCSV reads comma-separated rows. Rows may have differing field counts.
// A leading UTF-8 byte order mark is dropped.
func DecodeCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // allow variable fields
	r.LazyQuotes = true

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, eris.Wrap(err, "csv: read row")
		}
		rows = append(rows, record)
	}
}
