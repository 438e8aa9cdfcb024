package classify

import (
	"strings"

	"github.com/sells-group/colsense/internal/taxonomy"
)

// One detector per category. Every rule divides accumulated matches by
// the count of all non-null values; a column with zero non-null values
// never reaches a detector.

type businessNameDetector struct{}

func (businessNameDetector) Category() taxonomy.Category { return taxonomy.BusinessName }

func (businessNameDetector) Score(cv ColumnView) float64 {
	if cv.Numeric {
		return 0
	}
	var matched float64
	for _, s := range cv.Strings() {
		switch {
		case isLikelyBusinessName(s):
			matched++
		case looksProperNoun(s):
			// Generic proper-noun-looking strings earn partial credit.
			matched += 0.7
		}
	}
	return matched / float64(len(cv.Values))
}

type phoneDetector struct{}

func (phoneDetector) Category() taxonomy.Category { return taxonomy.PhoneNumber }

func (phoneDetector) Score(cv ColumnView) float64 {
	var matched float64
	for _, s := range cv.Strings() {
		if isValidPhone(strings.TrimSpace(s)) {
			matched++
		}
	}
	return matched / float64(len(cv.Values))
}

type emailDetector struct{}

func (emailDetector) Category() taxonomy.Category { return taxonomy.Email }

func (emailDetector) Score(cv ColumnView) float64 {
	if cv.Numeric {
		return 0
	}
	var matched float64
	for _, s := range cv.Strings() {
		addr := strings.ToLower(strings.TrimSpace(s))
		if !isValidEmail(addr) {
			continue
		}
		if hasKnownEmailDomain(addr) {
			matched += 0.9
		} else {
			matched += 0.7
		}
	}
	return min(1.0, matched/float64(len(cv.Values)))
}

type categoryDetector struct{}

func (categoryDetector) Category() taxonomy.Category { return taxonomy.BizCategory }

func (categoryDetector) Score(cv ColumnView) float64 {
	if cv.Numeric {
		return 0
	}
	var matched float64
	for _, s := range cv.Strings() {
		lower := strings.ToLower(strings.TrimSpace(s))
		// The heaviest keyword hit contributes its weight; one hit per
		// value. Taking the max keeps scores independent of map order.
		var best float64
		for kw, weight := range taxonomy.CategoryKeywords {
			if weight > best && strings.Contains(lower, kw) {
				best = weight
			}
		}
		matched += best
	}
	return min(1.0, matched/float64(len(cv.Values)))
}

type locationDetector struct{}

func (locationDetector) Category() taxonomy.Category { return taxonomy.Location }

func (locationDetector) Score(cv ColumnView) float64 {
	if cv.Numeric {
		return 0
	}
	var matched float64
	for _, s := range cv.Strings() {
		lower := strings.ToLower(strings.TrimSpace(s))
		switch {
		case containsAny(lower, taxonomy.LocationKeywords):
			matched++
		case taxonomy.PostalCodePattern.MatchString(lower):
			matched += 0.8
		case taxonomy.CoordinatePattern.MatchString(lower):
			matched += 0.7
		}
	}
	return min(1.0, matched/float64(len(cv.Values)))
}

type socialLinksDetector struct{}

func (socialLinksDetector) Category() taxonomy.Category { return taxonomy.SocialLinks }

func (socialLinksDetector) Score(cv ColumnView) float64 {
	if cv.Numeric {
		return 0
	}
	var matched float64
	for _, s := range cv.Strings() {
		if matchesAny(taxonomy.SocialPatterns, strings.TrimSpace(s)) {
			matched++
		}
	}
	return matched / float64(len(cv.Values))
}

type reviewDetector struct{}

func (reviewDetector) Category() taxonomy.Category { return taxonomy.Review }

func (reviewDetector) Score(cv ColumnView) float64 {
	if cv.Numeric {
		return reviewScaleScore(cv)
	}
	var matched float64
	for _, s := range cv.Strings() {
		lower := strings.ToLower(strings.TrimSpace(s))
		switch {
		case containsAny(lower, taxonomy.ReviewIndicators):
			matched++
		case taxonomy.StarRatingPattern.MatchString(lower),
			taxonomy.OutOfTenPattern.MatchString(lower):
			matched++
		case len(strings.Fields(lower)) > 6:
			// Long free text reads like prose feedback.
			matched += 0.8
		}
	}
	return min(1.0, matched/float64(len(cv.Values)))
}

// reviewScaleScore applies the rating-scale heuristic to numeric
// columns: 0.9 when every value fits a 0-5 scale, 0.8 for 1-10.
func reviewScaleScore(cv ColumnView) float64 {
	inFive, inTen := true, true
	for _, v := range cv.Values {
		n := v.Number
		if n < 0 || n > 5 {
			inFive = false
		}
		if n < 1 || n > 10 {
			inTen = false
		}
	}
	switch {
	case inFive:
		return 0.9
	case inTen:
		return 0.8
	default:
		return 0
	}
}

type hoursDetector struct{}

func (hoursDetector) Category() taxonomy.Category { return taxonomy.Hours }

func (hoursDetector) Score(cv ColumnView) float64 {
	if cv.Numeric {
		return 0
	}
	var matched float64
	for _, s := range cv.Strings() {
		if matchesAny(taxonomy.TimePatterns, strings.TrimSpace(s)) {
			matched++
		}
	}
	return matched / float64(len(cv.Values))
}

type priceDetector struct{}

func (priceDetector) Category() taxonomy.Category { return taxonomy.Price }

func (priceDetector) Score(cv ColumnView) float64 {
	var matched float64
	for _, s := range cv.Strings() {
		if matchesAny(taxonomy.PricePatterns, strings.TrimSpace(s)) {
			matched++
		}
	}
	return matched / float64(len(cv.Values))
}
