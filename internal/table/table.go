package table

import (
	"sort"
)

// Table is an ordered sequence of listing rows over a fixed set of named
// columns. Columns are added (never renamed) and rows are removed as the
// pipeline stages run; exactly one stage owns the table at a time.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// Row is a read view over one table row
type Row struct {
	table *Table
	cells []Value
}

// Get returns the cell for the named column, or the undefined marker when
// the column does not exist.
func (r Row) Get(col string) Value {
	i, ok := r.table.index[col]
	if !ok || i >= len(r.cells) {
		return Undefined()
	}
	return r.cells[i]
}

// New creates an empty table with the given column order
func New(columns []string) *Table {
	t := &Table{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, col := range columns {
		t.AddColumn(col)
	}
	return t
}

// Columns returns the column names in order
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the named column exists
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AddColumn appends a new column, padding existing rows with the undefined
// marker. Adding an existing column is a no-op.
func (t *Table) AddColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], Undefined())
	}
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// AppendRow adds a row of cells in column order. Short rows are padded with
// the undefined marker; excess cells are dropped.
func (t *Table) AppendRow(cells []Value) {
	row := make([]Value, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = Undefined()
		}
	}
	t.rows = append(t.rows, row)
}

// At returns the cell at the given row for the named column.
// A missing column yields the undefined marker.
func (t *Table) At(row int, col string) Value {
	i, ok := t.index[col]
	if !ok {
		return Undefined()
	}
	return t.rows[row][i]
}

// Set replaces the cell at the given row for the named column.
// Setting a missing column is a no-op.
func (t *Table) Set(row int, col string, v Value) {
	i, ok := t.index[col]
	if !ok {
		return
	}
	t.rows[row][i] = v
}

// RowAt returns a read view over the given row
func (t *Table) RowAt(i int) Row {
	return Row{table: t, cells: t.rows[i]}
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	out := New(t.columns)
	out.rows = make([][]Value, len(t.rows))
	for i, row := range t.rows {
		cells := make([]Value, len(row))
		copy(cells, row)
		out.rows[i] = cells
	}
	return out
}

// Filter returns a new table containing, in the original order, the rows for
// which keep returns true. Cells are copied; the receiver is not mutated.
func (t *Table) Filter(keep func(r Row) bool) *Table {
	out := New(t.columns)
	for i := range t.rows {
		if keep(t.RowAt(i)) {
			cells := make([]Value, len(t.rows[i]))
			copy(cells, t.rows[i])
			out.rows = append(out.rows, cells)
		}
	}
	return out
}

// SortStableBy reorders rows in place with a stable sort. Ties keep their
// relative order.
func (t *Table) SortStableBy(less func(a, b Row) bool) {
	sort.SliceStable(t.rows, func(i, j int) bool {
		return less(Row{table: t, cells: t.rows[i]}, Row{table: t, cells: t.rows[j]})
	})
}

// Head returns a copy of the first n rows (all rows when n exceeds Len)
func (t *Table) Head(n int) *Table {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	out := New(t.columns)
	for i := 0; i < n; i++ {
		cells := make([]Value, len(t.rows[i]))
		copy(cells, t.rows[i])
		out.rows = append(out.rows, cells)
	}
	return out
}
