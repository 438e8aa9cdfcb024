package classify

import (
	"math"

	"github.com/sells-group/colsense/internal/taxonomy"
)

// Breakdown exposes each analyzer's raw per-category scores for one
// column, for explainability.
type Breakdown struct {
	Name        SignalScore `json:"column_name_score"`
	Content     SignalScore `json:"content_score"`
	Pattern     SignalScore `json:"pattern_score"`
	Statistical SignalScore `json:"statistical_score"`
}

// Result is the classification outcome for a single column. Results
// are immutable value objects; the ensemble step produces a new Result
// rather than mutating one.
type Result struct {
	ColumnName        string            `json:"column_name"`
	SuggestedCategory taxonomy.Category `json:"suggested_category"`
	Confidence        float64           `json:"confidence"`
	SampleValues      []string          `json:"sample_values"`
	TotalValues       int               `json:"total_values"`
	NonNullValues     int               `json:"non_null_values"`
	Scores            SignalScore       `json:"all_scores,omitempty"`
	Breakdown         *Breakdown        `json:"analysis_details,omitempty"`

	// Ensemble annotations, set only on blended results.
	AIEnhanced     bool              `json:"ai_enhanced"`
	AIReasoning    string            `json:"ai_reasoning,omitempty"`
	BaseCategory   taxonomy.Category `json:"base_category,omitempty"`
	BaseConfidence float64           `json:"base_confidence,omitempty"`
}

// round3 rounds to three decimal places, matching the reported
// precision of confidences and scores.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func roundScores(s SignalScore) SignalScore {
	out := make(SignalScore, len(s))
	for c, v := range s {
		out[c] = round3(v)
	}
	return out
}
