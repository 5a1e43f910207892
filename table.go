package whale

import (
	"sort"
	"strings"
	"text/tabwriter"
)

// Table is a list of rows sharing a fixed column schema. Every row holds
// exactly one value per column; Insert enforces the arity.
type Table struct {
	columnNames []string
	rows        [][]Value
}

// NewTable creates an empty table with the given column schema.
func NewTable(columnNames []string) *Table {
	return &Table{columnNames: columnNames}
}

func (t *Table) ColumnNames() []string { return t.columnNames }
func (t *Table) Rows() [][]Value       { return t.rows }
func (t *Table) Len() int              { return len(t.rows) }

// Insert appends a row. The row must hold exactly one value per column.
func (t *Table) Insert(row []Value) error {
	if len(row) != len(t.columnNames) {
		return errWrongColumnAmount(len(t.columnNames), len(row))
	}
	t.rows = append(t.rows, row)
	return nil
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(columnName string) (int, bool) {
	for i, name := range t.columnNames {
		if name == columnName {
			return i, true
		}
	}
	return 0, false
}

// Select projects the table onto the named columns, in the given order.
// Unknown column names are an error.
func (t *Table) Select(columnNames []string) (*Table, error) {
	indexes := make([]int, len(columnNames))
	for i, name := range columnNames {
		index, found := t.ColumnIndex(name)
		if !found {
			return nil, errCustom("no column named " + name)
		}
		indexes[i] = index
	}
	selected := NewTable(columnNames)
	for _, row := range t.rows {
		projected := make([]Value, len(indexes))
		for i, index := range indexes {
			projected[i] = row[index].Clone()
		}
		if err := selected.Insert(projected); err != nil {
			return nil, err
		}
	}
	return selected, nil
}

// Where keeps the rows whose value in the named column equals expected.
func (t *Table) Where(columnName string, expected Value) (*Table, error) {
	index, found := t.ColumnIndex(columnName)
	if !found {
		return nil, errCustom("no column named " + columnName)
	}
	filtered := NewTable(t.columnNames)
	for _, row := range t.rows {
		if row[index].Equal(expected) {
			if err := filtered.Insert(cloneRow(row)); err != nil {
				return nil, err
			}
		}
	}
	return filtered, nil
}

// Sort orders the rows by comparing them as lists.
func (t *Table) Sort() {
	sort.SliceStable(t.rows, func(i, j int) bool {
		return compareLists(t.rows[i], t.rows[j]) < 0
	})
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	copied := NewTable(append([]string(nil), t.columnNames...))
	for _, row := range t.rows {
		copied.rows = append(copied.rows, cloneRow(row))
	}
	return copied
}

func cloneRow(row []Value) []Value {
	copied := make([]Value, len(row))
	for i, v := range row {
		copied[i] = v.Clone()
	}
	return copied
}

// compare orders tables by column names first, then row contents.
func (t *Table) compare(other *Table) int {
	if c := compareStringSlices(t.columnNames, other.columnNames); c != 0 {
		return c
	}
	for i := 0; i < len(t.rows) && i < len(other.rows); i++ {
		if c := compareLists(t.rows[i], other.rows[i]); c != 0 {
			return c
		}
	}
	return compareOrdered(len(t.rows), len(other.rows))
}

func compareStringSlices(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareOrdered(len(a), len(b))
}

// String renders the table as an aligned grid.
func (t *Table) String() string {
	var builder strings.Builder
	writer := tabwriter.NewWriter(&builder, 0, 4, 2, ' ', 0)
	writeRow := func(cells []string) {
		writer.Write([]byte(strings.Join(cells, "\t") + "\n"))
	}
	writeRow(t.columnNames)
	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		writeRow(cells)
	}
	writer.Flush()
	return strings.TrimRight(builder.String(), "\n")
}
