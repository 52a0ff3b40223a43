// Package donortable parses uploaded prospect spreadsheets into an ordered
// set of named columns of raw cell text. It never interprets cell contents;
// cleaning and aggregation happen downstream.
package donortable

// Table is an immutable, column-major view of one uploaded spreadsheet.
// Column order follows the header row; every column holds one raw string
// cell per data row.
type Table struct {
	headers []string
	columns [][]string
	rows    int
}

// Headers returns the column names in file order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// RowCount returns the number of data rows (excluding the header).
func (t *Table) RowCount() int {
	return t.rows
}

// Column returns the raw cells of the first column with the given name.
// The second return is false when no such column exists.
func (t *Table) Column(name string) ([]string, bool) {
	for i, h := range t.headers {
		if h == name {
			return t.ColumnAt(i), true
		}
	}
	return nil, false
}

// ColumnAt returns the raw cells of the column at the given header position,
// or nil when the position is out of range. Positional access is how callers
// reach the later occurrences of a duplicated header name.
func (t *Table) ColumnAt(i int) []string {
	if i < 0 || i >= len(t.columns) {
		return nil
	}
	cells := make([]string, len(t.columns[i]))
	copy(cells, t.columns[i])
	return cells
}

// Preview returns up to n leading rows in row-major order, for echoing back
// to the dashboard.
func (t *Table) Preview(n int) [][]string {
	if n > t.rows {
		n = t.rows
	}
	if n < 0 {
		n = 0
	}
	out := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, len(t.headers))
		for c := range t.headers {
			row[c] = t.columns[c][r]
		}
		out[r] = row
	}
	return out
}

// fromRows builds a Table from a header row plus data rows. Short rows are
// padded with empty cells, long rows truncated to the header width.
func fromRows(header []string, rows [][]string, maxRows int) *Table {
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	t := &Table{
		headers: header,
		columns: make([][]string, len(header)),
		rows:    len(rows),
	}
	for c := range t.columns {
		t.columns[c] = make([]string, len(rows))
	}
	for r, row := range rows {
		for c := range header {
			if c < len(row) {
				t.columns[c][r] = row[c]
			}
		}
	}
	return t
}
