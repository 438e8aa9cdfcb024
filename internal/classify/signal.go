// Package classify implements the multi-signal column classification
// engine: four independent analyzers scoring a column against the fixed
// taxonomy, and the fusion step combining them into one decision.
package classify

import "github.com/sells-group/colsense/internal/taxonomy"

// SignalScore maps categories to [0,1] scores produced by one analyzer
// for one column. Scores are analyzer-local and unweighted.
type SignalScore map[taxonomy.Category]float64

// NewSignalScore returns a score map zeroed over the scorable
// categories.
func NewSignalScore() SignalScore {
	s := make(SignalScore, len(taxonomy.Priority))
	for _, c := range taxonomy.Priority {
		s[c] = 0
	}
	return s
}

// FusionWeights are the fixed per-analyzer weights, summing to 1.0.
// Set at construction and never mutated.
type FusionWeights struct {
	Name        float64
	Content     float64
	Pattern     float64
	Statistical float64
}

// DefaultFusionWeights is the hand-tuned production weighting.
var DefaultFusionWeights = FusionWeights{
	Name:        0.4,
	Content:     0.3,
	Pattern:     0.2,
	Statistical: 0.1,
}

// AcceptanceThreshold is the minimum fused score for a category
// decision; anything below falls back to Unknown / Junk.
const AcceptanceThreshold = 0.25
