package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	assert.True(t, ParseCell("").IsNull())
	assert.True(t, ParseCell("  ").IsNull())
	assert.True(t, ParseCell("null").IsNull())
	assert.True(t, ParseCell("NULL").IsNull())
	assert.True(t, ParseCell("n/a").IsNull())
	assert.True(t, ParseCell("NaN").IsNull())

	v := ParseCell("42.5")
	assert.Equal(t, KindNumber, v.Kind)
	assert.InDelta(t, 42.5, v.Number, 0.0001)

	v = ParseCell("  Joe's Coffee  ")
	assert.Equal(t, KindText, v.Kind)
	assert.Equal(t, "Joe's Coffee", v.Text)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "", Null().String())
	assert.Equal(t, "hello", Text("hello").String())
	assert.Equal(t, "4.5", Number(4.5).String())
	assert.Equal(t, "3", Number(3).String())
}

func TestColumnNonNull(t *testing.T) {
	col := Column{Name: "x", Values: []Value{Text("a"), Null(), Number(1), Null()}}
	nn := col.NonNull()
	require.Len(t, nn, 2)
	assert.Equal(t, "a", nn[0].String())
	assert.Equal(t, "1", nn[1].String())
}

func TestColumnNumeric(t *testing.T) {
	assert.True(t, Column{Values: []Value{Number(1), Null(), Number(2)}}.Numeric())
	assert.False(t, Column{Values: []Value{Number(1), Text("x")}}.Numeric())
	assert.False(t, Column{Values: []Value{Null(), Null()}}.Numeric())
	assert.False(t, Column{}.Numeric())
}

func TestFromRowsPadsShortRows(t *testing.T) {
	table := FromRows(
		[]string{"name", "phone"},
		[][]string{
			{"Acme", "555-123-4567"},
			{"Solo"},
			{"Wide", "555-987-6543", "extra-dropped"},
		},
	)

	require.Len(t, table.Columns, 2)
	assert.Equal(t, 3, table.RowCount())

	phone, ok := table.Column("phone")
	require.True(t, ok)
	assert.True(t, phone.Values[1].IsNull())
	assert.Equal(t, "555-987-6543", phone.Values[2].String())
}

func TestTableColumnLookup(t *testing.T) {
	table := FromRows([]string{"a", "b"}, [][]string{{"1", "2"}})
	_, ok := table.Column("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, table.ColumnNames())
}

func TestReadCSV(t *testing.T) {
	input := "name,email,rating\nAcme Corp,info@acme.com,4.5\nBolt LLC,sales@bolt.io,3\n"
	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, table.Columns, 3)
	assert.Equal(t, 2, table.RowCount())

	rating, ok := table.Column("rating")
	require.True(t, ok)
	assert.True(t, rating.Numeric())
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "a,b,c\n1,2\nx,y,z\n"
	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	c, ok := table.Column("c")
	require.True(t, ok)
	assert.True(t, c.Values[0].IsNull())
	assert.Equal(t, "z", c.Values[1].String())
}
