package classify

import (
	"strings"

	"github.com/sells-group/colsense/internal/taxonomy"
)

// AnalyzePattern scores strict regex membership only, for the four
// syntactically recognizable categories. It deliberately carries no
// keyword or exclusion logic: "looks like X" evidence stays separate
// from "talks about X" evidence, and the two fuse with independent
// weights.
func AnalyzePattern(cv ColumnView) SignalScore {
	scores := NewSignalScore()
	if len(cv.Values) == 0 || cv.Numeric {
		return scores
	}

	total := float64(len(cv.Values))
	var phone, email, social, business float64
	for _, s := range cv.Strings() {
		trimmed := strings.TrimSpace(s)
		if isValidPhone(trimmed) {
			phone++
		}
		if isValidEmail(strings.ToLower(trimmed)) {
			email++
		}
		if matchesAny(taxonomy.SocialPatterns, strings.ToLower(trimmed)) {
			social++
		}
		if matchesAny(taxonomy.BusinessNamePatterns, trimmed) {
			business++
		}
	}

	scores[taxonomy.PhoneNumber] = phone / total
	scores[taxonomy.Email] = email / total
	scores[taxonomy.SocialLinks] = social / total
	scores[taxonomy.BusinessName] = business / total
	return scores
}
