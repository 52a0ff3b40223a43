package donortable

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// ReadCSV parses a delimiter-separated UTF-8 stream. The first row is the
// header; header names are whitespace-trimmed. Rows may have fewer or more
// fields than the header.
func ReadCSV(r io.Reader, opts ...Option) (*Table, error) {
	o := applyOptions(opts)

	reader := csv.NewReader(r)
	reader.Comma = o.delimiter
	reader.FieldsPerRecord = -1 // allow variable fields
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("csv: empty input")
	}
	if err != nil {
		return nil, eris.Wrap(err, "csv: read header")
	}
	header = trimHeader(header)
	if len(header) == 0 {
		return nil, eris.New("csv: empty header row")
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "csv: read row")
		}
		rows = append(rows, record)
		if o.maxRows > 0 && len(rows) >= o.maxRows {
			break
		}
	}

	return fromRows(header, rows, o.maxRows), nil
}

// trimHeader trims surrounding whitespace from header names and drops
// trailing all-empty header cells.
func trimHeader(header []string) []string {
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	for len(header) > 0 && header[len(header)-1] == "" {
		header = header[:len(header)-1]
	}
	return header
}
