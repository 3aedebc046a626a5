package dataset

import (
	"fmt"
)

// Table is an ordered collection of rows over named columns. Column names are
// unique within a table. Transformations in this module treat tables as
// immutable: each pipeline stage builds and returns a new table.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New creates an empty table with the given column names.
func New(columns []string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, exists := index[name]; exists {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		index[name] = i
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
	}, nil
}

// CloneEmpty creates a table with the same columns but no rows.
func (t *Table) CloneEmpty() *Table {
	clone, _ := New(t.columns)
	return clone
}

// AppendRow adds a row. Short rows are padded with missing values and long
// rows truncated so every row matches the column count.
func (t *Table) AppendRow(row []Value) {
	normalized := make([]Value, len(t.columns))
	for i := range normalized {
		if i < len(row) {
			normalized[i] = row[i]
		} else {
			normalized[i] = Missing()
		}
	}
	t.rows = append(t.rows, normalized)
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumColumns returns the column count.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Value returns the cell at the given row and column name. Unknown columns
// and out-of-range rows yield the missing value.
func (t *Table) Value(row int, column string) Value {
	col, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return Missing()
	}
	return t.rows[row][col]
}

// Row returns a copy of the row at the given position.
func (t *Table) Row(row int) []Value {
	if row < 0 || row >= len(t.rows) {
		return nil
	}
	return append([]Value(nil), t.rows[row]...)
}

// NumericColumn extracts the non-missing numeric values of a column together
// with the row position each value came from. Text cells are skipped along
// with missing ones.
func (t *Table) NumericColumn(column string) (values []float64, rows []int) {
	col, ok := t.index[column]
	if !ok {
		return nil, nil
	}
	for i, row := range t.rows {
		if f, isNum := row[col].Float(); isNum {
			values = append(values, f)
			rows = append(rows, i)
		}
	}
	return values, rows
}

// Select builds a new table containing the given rows in order. Row positions
// in the result are renumbered contiguously from zero.
func (t *Table) Select(rows []int) *Table {
	out := t.CloneEmpty()
	for _, r := range rows {
		if r >= 0 && r < len(t.rows) {
			out.AppendRow(t.rows[r])
		}
	}
	return out
}

// Equal reports whether two tables have identical columns and cell values.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.columns) != len(other.columns) || len(t.rows) != len(other.rows) {
		return false
	}
	for i, name := range t.columns {
		if other.columns[i] != name {
			return false
		}
	}
	for i, row := range t.rows {
		for j, v := range row {
			if !v.Equal(other.rows[i][j]) {
				return false
			}
		}
	}
	return true
}
