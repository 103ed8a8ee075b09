package table

import "fmt"

// Table is a loosely specified input table: an ordered list of column names and
// one column->value map per row. Cells are always strings; absent cells read as "".
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// FromRows builds a table from positional rows. Short rows are padded with "".
func FromRows(columns []string, rows ...[]string) Table {
	t := Table{Columns: append([]string(nil), columns...)}
	for _, values := range rows {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(values) {
				row[col] = values[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Has reports whether col is one of the table's columns (exact match).
func (t Table) Has(col string) bool {
	return t.index(col) >= 0
}

// Get returns the cell at (row, col), or "" when the row or column is absent.
func (t Table) Get(row int, col string) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][col]
}

// Clone returns a deep copy so normalization never mutates caller data.
func (t Table) Clone() Table {
	c := Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]map[string]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		cp := make(map[string]string, len(row))
		for k, v := range row {
			cp[k] = v
		}
		c.Rows[i] = cp
	}
	return c
}

// AddRow appends a row. Columns listed in order that the table lacks are appended.
func (t *Table) AddRow(row map[string]string, order []string) {
	for _, col := range order {
		if !t.Has(col) {
			t.Columns = append(t.Columns, col)
		}
	}
	cp := make(map[string]string, len(row))
	for k, v := range row {
		cp[k] = v
	}
	t.Rows = append(t.Rows, cp)
}

// String implements fmt.Stringer for log fields.
func (t Table) String() string {
	return fmt.Sprintf("table(%d cols x %d rows)", len(t.Columns), len(t.Rows))
}

func (t Table) index(col string) int {
	for i, c := range t.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

func (t *Table) rename(from, to string) {
	i := t.index(from)
	if i < 0 {
		return
	}
	t.Columns[i] = to
	for _, row := range t.Rows {
		if v, ok := row[from]; ok {
			row[to] = v
			delete(row, from)
		}
	}
}

func (t *Table) addColumn(col, value string) {
	t.Columns = append(t.Columns, col)
	for _, row := range t.Rows {
		row[col] = value
	}
}
