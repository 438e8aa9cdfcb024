// Package taxonomy holds the fixed category set and the keyword/pattern
// configuration the classifiers score against. Everything here is
// immutable after package init.
package taxonomy

// Category is one label from the fixed taxonomy assigned to a column.
type Category string

const (
	BusinessName Category = "Business Name"
	PhoneNumber  Category = "Phone Number"
	Email        Category = "Email"
	BizCategory  Category = "Category"
	Location     Category = "Location"
	SocialLinks  Category = "Social Links"
	Review       Category = "Review"
	Hours        Category = "Hours"
	Price        Category = "Price"
	UnknownJunk  Category = "Unknown / Junk"
)

// Priority is the declared tie-break order. When two categories fuse to
// exactly equal scores, the earlier entry wins.
var Priority = []Category{
	BusinessName,
	PhoneNumber,
	Email,
	BizCategory,
	Location,
	SocialLinks,
	Review,
	Hours,
	Price,
}

// Parse returns the Category matching s, or false when s names nothing
// in the taxonomy. UnknownJunk is a valid parse target.
func Parse(s string) (Category, bool) {
	for _, c := range Priority {
		if string(c) == s {
			return c, true
		}
	}
	if s == string(UnknownJunk) {
		return UnknownJunk, true
	}
	return "", false
}
