package taxonomy

import "regexp"

// PhonePatterns cover national formats plus common separator-delimited
// forms. A value must also survive the digit-length check in the
// classifier before a pattern hit counts.
var PhonePatterns = compileAll(
	`^\+?1[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}$`, // US
	`^\+?91[-.\s]?[6-9][0-9]{9}$`,                               // Indian mobile
	`^\+?44[-.\s]?[0-9]{10,11}$`,                                // UK
	`^\+?49[-.\s]?[0-9]{10,12}$`,                                // German
	`^\+?33[-.\s]?[0-9]{9,10}$`,                                 // French
	`^\+?86[-.\s]?1[0-9]{10}$`,                                  // Chinese mobile
	`^[6-9][0-9]{9}$`,                                           // Indian mobile, no country code
	`^\([0-9]{3}\)\s?[0-9]{3}-[0-9]{4}$`,                        // (123) 456-7890
	`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`,                              // 123-456-7890
	`^[0-9]{3}\.[0-9]{3}\.[0-9]{4}$`,                            // 123.456.7890
	`^\+?[0-9]{1,4}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}$`, // generic international
)

// EmailPattern requires local@domain.tld with a TLD of two or more
// letters. Domain-dot and local-part checks happen in the classifier.
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SocialPatterns match known social-network URLs, generic web URLs,
// bare domains, and @handles.
var SocialPatterns = compileAll(
	`(?i)https?://(?:www\.)?facebook\.com/[a-zA-Z0-9._-]+`,
	`(?i)https?://(?:www\.)?instagram\.com/[a-zA-Z0-9._-]+`,
	`(?i)https?://(?:www\.)?twitter\.com/[a-zA-Z0-9._-]+`,
	`(?i)https?://(?:www\.)?linkedin\.com/[a-zA-Z0-9._/-]+`,
	`(?i)https?://(?:www\.)?youtube\.com/[a-zA-Z0-9._/-]+`,
	`(?i)https?://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}[/a-zA-Z0-9._-]*`,
	`(?i)www\.[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`,
	`(?i)[a-zA-Z0-9.-]+\.(com|org|net|in|co\.in|edu|gov)`,
	`^@[a-zA-Z0-9._]{2,}$`,
)

// BusinessNamePatterns match the shapes business names commonly take.
var BusinessNamePatterns = compileAll(
	`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`,          // Title Case Names
	`\b[A-Z][a-z]+'s\b`,                      // possessives
	`\b(LLC|Inc|Corp|Ltd|Company|Co\.)\b`,    // legal suffixes
	`\b(The\s+[A-Z][a-z]+)\b`,                // "The Something"
	`\b[A-Z]{2,}\s+[A-Z][a-z]+\b`,            // ACME Corp
	`\b[A-Z][a-z]+\s+(Restaurant|Cafe|Bar|Store|Shop|Hotel)\b`, // Name + type
	`\b[A-Z][a-z]+\s+(& Co|and Co|Bros|Brothers)\b`,            // partnerships
)

// TimePatterns match operating-hours values.
var TimePatterns = compileAll(
	`(?i)\b\d{1,2}:\d{2}\s*(AM|PM)\b`,
	`(?i)\b\d{1,2}(:\d{2})?\s*(AM|PM)\s*-\s*\d{1,2}(:\d{2})?\s*(AM|PM)\b`,
	`(?i)\b(Mon|Tue|Wed|Thu|Fri|Sat|Sun|Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\b`,
	`(?i)\b(Open|Closed|24/7|24 hours)\b`,
	`\b\d{1,2}-\d{1,2}\b`, // 9-5
)

// PricePatterns match currency amounts, tier symbols, and descriptors.
var PricePatterns = compileAll(
	`\$\d+(\.\d{2})?`,
	`₹\d+(\.\d{2})?`,
	`(?i)\b\d+\s*dollars?\b`,
	`(?i)\b\d+\s*rupees?\b`,
	`(?i)\b(cheap|expensive|affordable|budget|premium|luxury)\b`,
	`\$+`, // $$ price-tier symbols
)

// PostalCodePattern matches 5-6 digit ZIP/PIN codes.
var PostalCodePattern = regexp.MustCompile(`\b\d{5,6}\b`)

// CoordinatePattern matches decimal latitude/longitude fragments.
var CoordinatePattern = regexp.MustCompile(`-?\d+\.\d+`)

// StarRatingPattern matches explicit "N star" review values.
var StarRatingPattern = regexp.MustCompile(`\b[1-5]\s*star`)

// OutOfTenPattern matches "N/10" review values.
var OutOfTenPattern = regexp.MustCompile(`\b[1-9]\.?\d*/10\b`)

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}
