// Package store persists classification runs so past analyses can be
// listed and re-inspected. Two backends are provided: SQLite for local
// single-binary use and Postgres for shared deployments.
package store

import (
	"context"
	"time"

	"github.com/sells-group/colsense/internal/classify"
)

// ClassificationRun is one persisted analysis of a source file.
type ClassificationRun struct {
	ID          string            `json:"id"`
	SourceFile  string            `json:"source_file"`
	ColumnCount int               `json:"column_count"`
	RowCount    int               `json:"row_count"`
	Results     []classify.Result `json:"results"`
	CreatedAt   time.Time         `json:"created_at"`
}

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	SourceFile string `json:"source_file,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for classification runs.
type Store interface {
	SaveRun(ctx context.Context, run *ClassificationRun) error
	GetRun(ctx context.Context, runID string) (*ClassificationRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]ClassificationRun, error)
	DeleteRun(ctx context.Context, runID string) error

	Migrate(ctx context.Context) error
	Close() error
}
