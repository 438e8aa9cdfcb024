// Package dataset models a parsed tabular file as named columns of raw
// values. It is the boundary the classification engine consumes; it
// knows nothing about categories or scoring.
package dataset

// Column is a named, ordered sequence of raw values.
type Column struct {
	Name   string
	Values []Value
}

// NonNull returns the non-null subsequence in order. The receiver is
// never mutated.
func (c Column) NonNull() []Value {
	out := make([]Value, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.IsNull() {
			out = append(out, v)
		}
	}
	return out
}

// Numeric reports whether every non-null value in the column is a
// number. Columns with no non-null values are not numeric.
func (c Column) Numeric() bool {
	seen := false
	for _, v := range c.Values {
		switch v.Kind {
		case KindNull:
		case KindNumber:
			seen = true
		default:
			return false
		}
	}
	return seen
}

// Table is an ordered collection of columns sharing a row count.
type Table struct {
	Columns []Column
}

// ColumnNames returns the declared column names in order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column, or false when absent. The first
// matching name wins when headers repeat.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// RowCount returns the number of rows (the longest column's length).
func (t Table) RowCount() int {
	max := 0
	for _, c := range t.Columns {
		if len(c.Values) > max {
			max = len(c.Values)
		}
	}
	return max
}

// FromRows builds a Table from a header row and data rows. Short rows
// are padded with nulls; cells beyond the header width are dropped.
func FromRows(header []string, rows [][]string) Table {
	cols := make([]Column, len(header))
	for i, name := range header {
		cols[i] = Column{Name: name, Values: make([]Value, 0, len(rows))}
	}
	for _, row := range rows {
		for i := range cols {
			if i < len(row) {
				cols[i].Values = append(cols[i].Values, ParseCell(row[i]))
			} else {
				cols[i].Values = append(cols[i].Values, Null())
			}
		}
	}
	return Table{Columns: cols}
}
