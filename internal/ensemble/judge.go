// Package ensemble blends the local fusion decision with an external
// AI judgment when local confidence is low. Judges are interchangeable
// backends behind one capability interface; every failure degrades
// silently to the unmodified local result.
package ensemble

import (
	"context"

	"github.com/sells-group/colsense/internal/taxonomy"
)

// Request carries everything a judge sees about a column: the declared
// name, a few sample values, and the engine's current suggestion.
type Request struct {
	ColumnName        string
	SampleValues      []string
	CandidateCategory taxonomy.Category
}

// Judgment is a validated external opinion. Ownership is transient: it
// is discarded after the blend.
type Judgment struct {
	Category   taxonomy.Category
	Confidence float64
	Reasoning  string
}

// Judge is the one external-judgment capability. Implementations wrap
// a specific provider; the blend logic never sees provider-specific
// request or response shapes.
type Judge interface {
	// Name identifies the backing provider for logging.
	Name() string
	// Judge returns a validated judgment or an error. Implementations
	// must respect ctx deadlines and must not retry internally.
	Judge(ctx context.Context, req Request) (*Judgment, error)
}
