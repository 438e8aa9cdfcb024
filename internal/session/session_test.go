package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/colsense/internal/classify"
	"github.com/sells-group/colsense/internal/dataset"
	"github.com/sells-group/colsense/internal/taxonomy"
)

func testTable() dataset.Table {
	return dataset.FromRows(
		[]string{"name", "phone", "junk"},
		[][]string{
			{"Acme Inc", "555-123-4567", "x"},
			{"Zenith LLC", "555-987-6543", "y"},
		},
	)
}

func testResults() []classify.Result {
	return []classify.Result{
		{ColumnName: "name", SuggestedCategory: taxonomy.BusinessName, Confidence: 0.9},
		{ColumnName: "phone", SuggestedCategory: taxonomy.PhoneNumber, Confidence: 0.85},
		{ColumnName: "junk", SuggestedCategory: taxonomy.UnknownJunk, Confidence: 0.0},
	}
}

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager(time.Hour)

	s := m.Create("shops.csv", testTable(), testResults(), 0.1)
	require.NotEmpty(t, s.ID)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "shops.csv", got.Filename)
	assert.Equal(t, 1, m.Len())
}

func TestManagerGetUnknown(t *testing.T) {
	m := NewManager(time.Hour)
	_, err := m.Get("nope")
	assert.Error(t, err)
}

func TestManagerDelete(t *testing.T) {
	m := NewManager(time.Hour)
	s := m.Create("a.csv", testTable(), nil, 0)

	m.Delete(s.ID)
	_, err := m.Get(s.ID)
	assert.Error(t, err)
	assert.Zero(t, m.Len())
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(time.Millisecond)
	s := m.Create("a.csv", testTable(), nil, 0)
	s.CreatedAt = time.Now().Add(-time.Minute)

	_, err := m.Get(s.ID)
	assert.Error(t, err)
	assert.Zero(t, m.Len(), "expired session is removed on access")
}

func TestManagerPurgeExpired(t *testing.T) {
	m := NewManager(time.Hour)
	old := m.Create("old.csv", testTable(), nil, 0)
	old.CreatedAt = time.Now().Add(-2 * time.Hour)
	m.Create("fresh.csv", testTable(), nil, 0)

	assert.Equal(t, 1, m.PurgeExpired())
	assert.Equal(t, 1, m.Len())
}

func TestProcessMapsHeaders(t *testing.T) {
	s := &Session{Table: testTable(), Results: testResults()}

	view, err := s.Process([]string{"phone", "name"})
	require.NoError(t, err)

	// Table order wins over selection order.
	assert.Equal(t, []string{"name", "phone"}, view.Selected)
	assert.Equal(t, "Business Name", view.Headers["name"])
	assert.Equal(t, "Phone Number", view.Headers["phone"])
	assert.Same(t, view, s.Processed)
}

func TestProcessUnknownKeepsOriginalName(t *testing.T) {
	s := &Session{Table: testTable(), Results: testResults()}

	view, err := s.Process([]string{"junk"})
	require.NoError(t, err)
	assert.Equal(t, "junk", view.Headers["junk"])
}

func TestProcessEmptySelection(t *testing.T) {
	s := &Session{Table: testTable(), Results: testResults()}
	_, err := s.Process(nil)
	assert.Error(t, err)
}

func TestProcessMissingColumns(t *testing.T) {
	s := &Session{Table: testTable(), Results: testResults()}
	_, err := s.Process([]string{"absent"})
	assert.Error(t, err)
}

func TestExportCSVProcessedSelection(t *testing.T) {
	s := &Session{Table: testTable(), Results: testResults()}
	_, err := s.Process([]string{"name", "phone"})
	require.NoError(t, err)

	data, err := s.ExportCSV()
	require.NoError(t, err)

	want := "Business Name,Phone Number\n" +
		"Acme Inc,555-123-4567\n" +
		"Zenith LLC,555-987-6543\n"
	assert.Equal(t, want, string(data))
}

func TestExportCSVFullTableWithoutProcessing(t *testing.T) {
	s := &Session{Table: testTable(), Results: testResults()}

	data, err := s.ExportCSV()
	require.NoError(t, err)

	want := "name,phone,junk\n" +
		"Acme Inc,555-123-4567,x\n" +
		"Zenith LLC,555-987-6543,y\n"
	assert.Equal(t, want, string(data))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "cleaned_shops.csv", (&Session{Filename: "shops.csv"}).ExportFilename())
	assert.Equal(t, "cleaned_data.v2.csv", (&Session{Filename: "data.v2.xlsx"}).ExportFilename())
	assert.Equal(t, "cleaned_noext.csv", (&Session{Filename: "noext"}).ExportFilename())
}
