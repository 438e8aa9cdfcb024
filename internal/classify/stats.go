package classify

import (
	"math"

	"github.com/sells-group/colsense/internal/taxonomy"
)

// AnalyzeStats scores a column from aggregate properties only — value
// length distribution and uniqueness ratio — never literal content.
// These are weak priors, intentionally capped by the 0.1 fusion weight.
func AnalyzeStats(cv ColumnView) SignalScore {
	scores := NewSignalScore()
	if len(cv.Values) == 0 {
		return scores
	}

	if !cv.Numeric {
		mean, stdev := lengthStats(cv.Strings())
		if mean >= 8 && mean <= 16 && stdev < 5 {
			scores[taxonomy.PhoneNumber] += 0.3
		}
		if mean >= 10 && mean <= 40 && stdev < 15 {
			scores[taxonomy.Email] += 0.2
		}
		if mean >= 5 && mean <= 60 {
			scores[taxonomy.BusinessName] += 0.1
		}
	}

	ratio := uniquenessRatio(cv)
	if ratio > 0.8 {
		// High-cardinality columns look like identifiers.
		scores[taxonomy.BusinessName] += 0.2
		scores[taxonomy.Email] += 0.2
		scores[taxonomy.PhoneNumber] += 0.2
	}
	if ratio < 0.3 {
		// Low-cardinality columns look like enumerations.
		scores[taxonomy.BizCategory] += 0.3
	}

	for c, v := range scores {
		scores[c] = math.Min(1.0, v)
	}
	return scores
}

// lengthStats returns the mean and population standard deviation of
// the rendered value lengths.
func lengthStats(values []string) (mean, stdev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, s := range values {
		sum += float64(len(s))
	}
	mean = sum / float64(len(values))

	var variance float64
	for _, s := range values {
		d := float64(len(s)) - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

// uniquenessRatio is distinct values over total non-null values.
func uniquenessRatio(cv ColumnView) float64 {
	seen := make(map[string]struct{}, len(cv.Values))
	for _, v := range cv.Values {
		seen[v.String()] = struct{}{}
	}
	return float64(len(seen)) / float64(len(cv.Values))
}
