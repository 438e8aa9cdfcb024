package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/sells-group/colsense/internal/taxonomy"
)

// Shared value-level rules used by both the content and pattern
// analyzers. Each is a pure predicate on one value string.

var nonPhoneRunes = regexp.MustCompile(`[^\d+]`)

// isValidPhone checks digit length after stripping separators, then
// membership in the phone pattern set.
func isValidPhone(s string) bool {
	cleaned := nonPhoneRunes.ReplaceAllString(s, "")
	digits := strings.ReplaceAll(cleaned, "+", "")
	if len(digits) < 7 || len(digits) > 15 {
		return false
	}
	return matchesAny(taxonomy.PhonePatterns, s)
}

// isValidEmail checks the email shape plus local-part and domain
// sanity. Input is expected lowercased.
func isValidEmail(s string) bool {
	if !taxonomy.EmailPattern.MatchString(s) {
		return false
	}
	if strings.Count(s, "@") != 1 {
		return false
	}
	local, domain, _ := strings.Cut(s, "@")
	return len(local) > 0 && len(domain) >= 3
}

// hasKnownEmailDomain reports whether the address uses a known consumer
// provider.
func hasKnownEmailDomain(s string) bool {
	_, domain, ok := strings.Cut(s, "@")
	if !ok {
		return false
	}
	for _, d := range taxonomy.CommonEmailDomains {
		if domain == d {
			return true
		}
	}
	return false
}

// isLikelyBusinessName requires a business-name shape AND the absence
// of any category/amenity/contact keyword.
func isLikelyBusinessName(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range taxonomy.BusinessNameExclusions {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return matchesAny(taxonomy.BusinessNamePatterns, s)
}

// looksProperNoun reports whether a value is a generic multi-word
// capitalized string with no excluded keyword; such values earn partial
// business-name credit.
func looksProperNoun(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range taxonomy.BusinessNameExclusions {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	words := strings.Fields(s)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		r := []rune(w)
		if !unicode.IsUpper(r[0]) {
			return false
		}
	}
	return true
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
