package salesetl

import "fmt"

// Row is one dataset record. Cells are positioned by the owning
// Dataset's column order.
type Row []Cell

// Dataset is an ordered sequence of rows sharing one column set.
// A nil *Dataset stands for "no data" between stages.
//
// Datasets are replaced rather than edited: MapColumn and Concat return
// new datasets and leave their inputs unchanged.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// NewDataset creates an empty dataset with the given columns.
// Returns an error if a column name repeats.
func NewDataset(columns []string) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		index[c] = i
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Dataset{columns: cols, index: index}, nil
}

// Columns returns a copy of the column names in order.
func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return cols
}

// ColumnIndex returns the position of a column and whether it exists.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// HasColumn reports whether the dataset has the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Row returns the i-th row. The returned slice must not be modified.
func (d *Dataset) Row(i int) Row { return d.rows[i] }

// Cell returns the cell at row i in the named column.
// The second result is false when the column does not exist.
func (d *Dataset) Cell(i int, column string) (Cell, bool) {
	c, ok := d.index[column]
	if !ok {
		return Cell{}, false
	}
	return d.rows[i][c], true
}

// Append adds a row. The row must have exactly one cell per column.
func (d *Dataset) Append(row Row) error {
	if len(row) != len(d.columns) {
		return fmt.Errorf("row has %d cells, dataset has %d columns", len(row), len(d.columns))
	}
	d.rows = append(d.rows, row)
	return nil
}

// MapColumn returns a new dataset in which every cell of the named column
// is replaced by fn(cell). Other cells are shared with the receiver.
func (d *Dataset) MapColumn(column string, fn func(Cell) Cell) (*Dataset, error) {
	c, ok := d.index[column]
	if !ok {
		return nil, fmt.Errorf("column %q not found", column)
	}
	out := &Dataset{columns: d.columns, index: d.index, rows: make([]Row, len(d.rows))}
	for i, row := range d.rows {
		next := make(Row, len(row))
		copy(next, row)
		next[c] = fn(row[c])
		out.rows[i] = next
	}
	return out, nil
}

// Concat merges datasets in order, keeping row order within each input.
// The result's columns are the union of the inputs' columns in order of first
// appearance; rows from an input lacking a column hold a null cell there.
// Nil inputs are skipped. Returns nil when every input is nil.
func Concat(parts ...*Dataset) *Dataset {
	var columns []string
	index := make(map[string]int)
	total := 0
	found := false
	for _, p := range parts {
		if p == nil {
			continue
		}
		found = true
		total += len(p.rows)
		for _, c := range p.columns {
			if _, ok := index[c]; !ok {
				index[c] = len(columns)
				columns = append(columns, c)
			}
		}
	}
	if !found {
		return nil
	}

	out := &Dataset{columns: columns, index: index, rows: make([]Row, 0, total)}
	for _, p := range parts {
		if p == nil {
			continue
		}
		positions := make([]int, len(p.columns))
		for i, c := range p.columns {
			positions[i] = index[c]
		}
		for _, row := range p.rows {
			merged := make(Row, len(columns))
			for i, cell := range row {
				merged[positions[i]] = cell
			}
			out.rows = append(out.rows, merged)
		}
	}
	return out
}
