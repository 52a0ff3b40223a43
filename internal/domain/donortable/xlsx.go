package donortable

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadXLSX parses an XLSX workbook. The selected sheet's first row is the
// header; row shaping matches ReadCSV.
func ReadXLSX(r io.Reader, opts ...Option) (*Table, error) {
	o := applyOptions(opts)

	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: read input")
	}

	f, err := xlsx.OpenBinary(bs)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open workbook")
	}
	if o.sheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("xlsx: sheet index %d out of range (file has %d sheets)", o.sheetIndex, len(f.Sheets))
	}
	sheet := f.Sheets[o.sheetIndex]
	if len(sheet.Rows) == 0 {
		return nil, eris.New("xlsx: empty sheet")
	}

	header := trimHeader(rowToStrings(sheet.Rows[0]))
	if len(header) == 0 {
		return nil, eris.New("xlsx: empty header row")
	}

	var rows [][]string
	for _, row := range sheet.Rows[1:] {
		rows = append(rows, rowToStrings(row))
		if o.maxRows > 0 && len(rows) >= o.maxRows {
			break
		}
	}

	return fromRows(header, rows, o.maxRows), nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
