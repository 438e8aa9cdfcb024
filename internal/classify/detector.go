package classify

import (
	"github.com/sells-group/colsense/internal/dataset"
	"github.com/sells-group/colsense/internal/taxonomy"
)

// Detector evaluates one category's content evidence over a column's
// non-null values, returning a [0,1] match density. Detectors that do
// not apply to a column's value type return 0 rather than failing.
type Detector interface {
	Category() taxonomy.Category
	Score(col ColumnView) float64
}

// ColumnView is the read-only slice of a column a detector sees: the
// non-null values and whether the column is purely numeric.
type ColumnView struct {
	Values  []dataset.Value
	Numeric bool
}

// Strings renders the non-null values once for keyword/regex rules.
func (cv ColumnView) Strings() []string {
	out := make([]string, len(cv.Values))
	for i, v := range cv.Values {
		out[i] = v.String()
	}
	return out
}

// DefaultDetectors returns one detector per scorable category, in
// taxonomy priority order. Adding a category means adding a detector
// here, not editing the analyzer.
func DefaultDetectors() []Detector {
	return []Detector{
		businessNameDetector{},
		phoneDetector{},
		emailDetector{},
		categoryDetector{},
		locationDetector{},
		socialLinksDetector{},
		reviewDetector{},
		hoursDetector{},
		priceDetector{},
	}
}

// AnalyzeContent runs every detector over the column's non-null values.
func AnalyzeContent(cv ColumnView, detectors []Detector) SignalScore {
	scores := NewSignalScore()
	if len(cv.Values) == 0 {
		return scores
	}
	for _, d := range detectors {
		scores[d.Category()] = d.Score(cv)
	}
	return scores
}
