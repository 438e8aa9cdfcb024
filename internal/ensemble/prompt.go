package ensemble

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/colsense/internal/taxonomy"
)

// SystemPrompt frames every judgment request.
const SystemPrompt = "You are an expert data analyst specializing in CSV column classification. Always respond with valid JSON."

// BuildPrompt renders the judgment request for a chat-style judge.
func BuildPrompt(req Request) string {
	sampleText := "No samples"
	if len(req.SampleValues) > 0 {
		sampleText = strings.Join(req.SampleValues, ", ")
	}

	var b strings.Builder
	b.WriteString("Classify this CSV column into one of these categories:\n\n")
	b.WriteString("Categories:\n")
	b.WriteString("- Business Name: Names of businesses, companies, shops, restaurants\n")
	b.WriteString("- Phone Number: Phone numbers in any format\n")
	b.WriteString("- Email: Email addresses\n")
	b.WriteString("- Category: Business types, categories, amenities, services offered\n")
	b.WriteString("- Location: Addresses, cities, states, coordinates, geographic locations\n")
	b.WriteString("- Social Links: Websites, social media URLs, online links\n")
	b.WriteString("- Review: Customer reviews, ratings, feedback, comments\n")
	b.WriteString("- Hours: Operating hours, schedules, time information\n")
	b.WriteString("- Price: Pricing information, costs, fees, price ranges\n")
	b.WriteString("- Unknown / Junk: Unclear or irrelevant data\n\n")
	fmt.Fprintf(&b, "Column Analysis:\n- Column Name: %q\n- Sample Values: %s\n- Current Classification: %s\n\n",
		req.ColumnName, sampleText, req.CandidateCategory)
	b.WriteString("Instructions:\n")
	b.WriteString("1. Analyze the column name and sample values\n")
	b.WriteString("2. Choose the MOST APPROPRIATE category\n")
	b.WriteString("3. Provide confidence score (0.0 to 1.0)\n")
	b.WriteString("4. Give brief reasoning\n\n")
	b.WriteString(`Respond in this exact JSON format:` + "\n" +
		`{"category": "Category Name", "confidence": 0.85, "reasoning": "Brief explanation"}`)
	return b.String()
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseReply extracts and validates the judgment JSON from a model
// reply. A category outside the taxonomy or a confidence outside [0,1]
// is rejected, which the caller treats the same as provider failure.
func ParseReply(text string) (*Judgment, error) {
	raw := jsonObjectPattern.FindString(text)
	if raw == "" {
		return nil, eris.New("ensemble: no JSON object in reply")
	}

	var payload struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, eris.Wrap(err, "ensemble: unmarshal reply")
	}

	category, ok := taxonomy.Parse(strings.TrimSpace(payload.Category))
	if !ok {
		return nil, eris.Errorf("ensemble: reply names unknown category %q", payload.Category)
	}
	if payload.Confidence < 0 || payload.Confidence > 1 {
		return nil, eris.Errorf("ensemble: reply confidence %v outside [0,1]", payload.Confidence)
	}

	return &Judgment{
		Category:   category,
		Confidence: payload.Confidence,
		Reasoning:  strings.TrimSpace(payload.Reasoning),
	}, nil
}
