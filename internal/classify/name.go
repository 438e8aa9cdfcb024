package classify

import (
	"strings"

	"github.com/sells-group/colsense/internal/taxonomy"
)

// AnalyzeName scores a column name against the tiered keyword
// indicators. A category's score is the strongest tier matched, not a
// sum; categories with no hit score 0. Pure function of the name.
func AnalyzeName(columnName string) SignalScore {
	name := strings.ToLower(columnName)
	scores := NewSignalScore()

	for category, tiers := range taxonomy.NameIndicators {
		score := 0.0
		for _, kw := range tiers.Strong {
			if strings.Contains(name, kw) {
				score = max(score, taxonomy.StrongTierScore)
			}
		}
		for _, kw := range tiers.Medium {
			if strings.Contains(name, kw) {
				score = max(score, taxonomy.MediumTierScore)
			}
		}
		for _, kw := range tiers.Weak {
			if strings.Contains(name, kw) {
				score = max(score, taxonomy.WeakTierScore)
			}
		}
		scores[category] = score
	}

	return scores
}
