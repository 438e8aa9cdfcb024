package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/colsense/internal/classify"
	"github.com/sells-group/colsense/internal/taxonomy"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return NewPostgresWithPool(mock), mock
}

func mustResultsJSON(t *testing.T, results []classify.Result) []byte {
	t.Helper()
	data, err := json.Marshal(results)
	require.NoError(t, err)
	return data
}

func TestPostgresStore_SaveRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO classification_runs`).
		WithArgs(pgxmock.AnyArg(), "shops.csv", 2, 50, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	run := testRun("shops.csv")
	require.NoError(t, s.SaveRun(context.Background(), run))
	assert.NotEmpty(t, run.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	run := testRun("shops.csv")
	created := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, source_file, column_count, row_count, results, created_at FROM classification_runs WHERE id = \$1`).
		WithArgs("run-1").
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "source_file", "column_count", "row_count", "results", "created_at"},
		).AddRow("run-1", "shops.csv", 2, 50, mustResultsJSON(t, run.Results), created))

	got, err := s.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "shops.csv", got.SourceFile)
	require.Len(t, got.Results, 2)
	assert.Equal(t, taxonomy.Email, got.Results[0].SuggestedCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRun_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, source_file, column_count, row_count, results, created_at FROM classification_runs WHERE id = \$1`).
		WithArgs("nonexistent-run").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetRun(context.Background(), "nonexistent-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListRuns(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	run := testRun("a.csv")
	created := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, source_file, column_count, row_count, results, created_at FROM classification_runs WHERE true AND source_file = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("a.csv", 10).
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "source_file", "column_count", "row_count", "results", "created_at"},
		).
			AddRow("run-1", "a.csv", 2, 50, mustResultsJSON(t, run.Results), created).
			AddRow("run-2", "a.csv", 2, 50, mustResultsJSON(t, run.Results), created))

	runs, err := s.ListRuns(context.Background(), RunFilter{SourceFile: "a.csv", Limit: 10})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-1", runs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`DELETE FROM classification_runs WHERE id = \$1`).
		WithArgs("run-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, s.DeleteRun(context.Background(), "run-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteRun_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`DELETE FROM classification_runs WHERE id = \$1`).
		WithArgs("nope").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := s.DeleteRun(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS classification_runs`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
