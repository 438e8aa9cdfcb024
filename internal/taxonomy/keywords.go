package taxonomy

// NameTiers buckets column-name indicators by match strength.
type NameTiers struct {
	Strong []string // score 0.9
	Medium []string // score 0.6
	Weak   []string // score 0.3
}

// Tier match scores used by the name analyzer.
const (
	StrongTierScore = 0.9
	MediumTierScore = 0.6
	WeakTierScore   = 0.3
)

// NameIndicators maps each category to its tiered column-name keywords.
// Matching is substring on the case-folded column name.
var NameIndicators = map[Category]NameTiers{
	BusinessName: {
		Strong: []string{"business_name", "company_name", "establishment_name", "shop_name"},
		Medium: []string{"name", "business", "company", "establishment", "title"},
		Weak:   []string{"store", "shop"},
	},
	PhoneNumber: {
		Strong: []string{"phone", "mobile", "contact_phone", "telephone", "phone_number"},
		Medium: []string{"tel", "cell", "contact_number", "contact"},
		Weak:   []string{"number"},
	},
	Email: {
		Strong: []string{"email", "email_address", "contact_email", "e_mail"},
		Medium: []string{"mail", "contact_mail"},
	},
	BizCategory: {
		Strong: []string{"category", "type", "business_type", "classification"},
		Medium: []string{"kind", "genre", "service_type", "amenity"},
		Weak:   []string{"tag", "tags", "feature"},
	},
	Location: {
		Strong: []string{"address", "location", "full_address", "street_address"},
		Medium: []string{"city", "state", "country", "zip", "postal", "coordinates"},
		Weak:   []string{"area", "region", "place"},
	},
	SocialLinks: {
		Strong: []string{"website", "website_url", "homepage", "social_media"},
		Medium: []string{"url", "link", "web", "site"},
		Weak:   []string{"facebook", "instagram", "twitter"},
	},
	Review: {
		Strong: []string{"review", "rating", "customer_review", "feedback"},
		Medium: []string{"comment", "score", "rating_score", "stars"},
		Weak:   []string{"satisfaction"},
	},
	Hours: {
		Strong: []string{"hours", "opening_hours", "timings", "open_hours"},
		Medium: []string{"schedule", "open_time", "close_time"},
		Weak:   []string{"time"},
	},
	Price: {
		Strong: []string{"price", "cost", "pricing", "price_range"},
		Medium: []string{"fee", "rate", "amount"},
		Weak:   []string{"budget"},
	},
}

// CategoryKeywords maps business-category terms to per-keyword
// confidence weights. The category detector credits each value with its
// heaviest matching keyword and caps the column total at 1.0.
var CategoryKeywords = map[string]float64{
	// Food & dining
	"restaurant": 0.95, "cafe": 0.95, "bar": 0.95, "bakery": 0.9,
	"pizzeria": 0.9, "bistro": 0.9, "diner": 0.9, "buffet": 0.9,
	"fast food": 0.95, "food truck": 0.9, "catering": 0.9,
	"brewery": 0.9, "winery": 0.9, "steakhouse": 0.9,

	// Cuisine types
	"sushi": 0.85, "chinese": 0.8, "italian": 0.8, "mexican": 0.8,
	"indian": 0.8, "thai": 0.8, "japanese": 0.8, "american": 0.7,

	// Retail
	"shop": 0.9, "store": 0.9, "boutique": 0.9, "mall": 0.95,
	"outlet": 0.9, "supermarket": 0.95, "grocery": 0.9,
	"convenience store": 0.95, "department store": 0.95,

	// Services
	"salon": 0.95, "spa": 0.95, "barber": 0.95, "beauty": 0.85,
	"wellness": 0.8, "massage": 0.9, "nails": 0.9,
	"dry cleaning": 0.95, "laundry": 0.9, "repair": 0.8,

	// Healthcare
	"hospital": 0.95, "clinic": 0.95, "pharmacy": 0.95,
	"dental": 0.95, "veterinary": 0.95, "medical": 0.85,
	"doctor": 0.9, "dentist": 0.95,

	// Professional services
	"bank": 0.95, "atm": 0.95, "insurance": 0.9, "legal": 0.9,
	"accounting": 0.9, "consulting": 0.85, "real estate": 0.9,

	// Entertainment & fitness
	"gym": 0.95, "fitness": 0.9, "yoga": 0.9, "theater": 0.95,
	"cinema": 0.95, "movie": 0.9, "bowling": 0.95, "golf": 0.95,

	// Automotive
	"gas station": 0.95, "petrol pump": 0.95, "auto repair": 0.95,
	"car wash": 0.95, "dealership": 0.9, "parking": 0.9,

	// Lodging
	"hotel": 0.95, "motel": 0.95, "hostel": 0.9, "resort": 0.95,
}

// LocationKeywords are city names and address-component terms. Any
// substring hit counts as a full location match.
var LocationKeywords = []string{
	// Indian cities
	"delhi", "mumbai", "bangalore", "hyderabad", "chennai", "kolkata",
	"pune", "ahmedabad", "surat", "jaipur", "lucknow", "kanpur",
	"nagpur", "indore", "thane", "bhopal", "visakhapatnam", "pimpri",
	"vadodara", "nashik", "rajkot", "varanasi", "agra", "gurgaon",
	// Global cities
	"new york", "london", "paris", "tokyo", "sydney", "toronto",
	"los angeles", "chicago", "berlin", "madrid", "rome", "moscow",
	// Address components
	"street", "road", "avenue", "boulevard", "lane", "drive", "circle",
	"plaza", "square", "court", "way", "place", "terrace", "park",
	"address", "city", "state", "country", "zipcode", "pincode",
	"zip", "postal", "area", "sector", "block", "plot", "house",
	// Indian address terms
	"nagar", "colony", "society", "apartment", "complex", "tower",
	"phase", "extension", "main road", "cross", "layout",
}

// CommonEmailDomains are known consumer mail providers. An address on
// one of these scores higher than a syntactically valid unknown domain.
var CommonEmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com",
	"icloud.com", "mail.com", "protonmail.com", "zoho.com", "yandex.com",
	"msn.com", "live.com", "comcast.net", "verizon.net", "sbcglobal.net",
	"rediffmail.com", "indiatimes.com", "sify.com",
}

// ReviewIndicators are sentiment and review-adjacent terms.
var ReviewIndicators = []string{
	"good", "bad", "excellent", "poor", "great", "terrible",
	"recommend", "satisfied", "disappointed", "amazing",
	"awful", "fantastic", "horrible", "wonderful", "disgusting",
	"stars", "rating", "review", "feedback", "comment",
}

// BusinessNameExclusions are terms whose presence disqualifies a value
// from counting as a business name: all category keywords plus
// field-descriptor words.
var BusinessNameExclusions = buildBusinessNameExclusions()

func buildBusinessNameExclusions() []string {
	extra := []string{
		"email", "phone", "address", "location", "review", "rating",
		"website", "url", "hours", "price", "cost",
	}
	out := make([]string, 0, len(CategoryKeywords)+len(extra))
	for kw := range CategoryKeywords {
		out = append(out, kw)
	}
	return append(out, extra...)
}
