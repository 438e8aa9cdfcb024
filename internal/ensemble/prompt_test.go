package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/colsense/internal/taxonomy"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(Request{
		ColumnName:        "contact",
		SampleValues:      []string{"555-123-4567", "555-987-6543"},
		CandidateCategory: taxonomy.PhoneNumber,
	})

	assert.Contains(t, prompt, `"contact"`)
	assert.Contains(t, prompt, "555-123-4567, 555-987-6543")
	assert.Contains(t, prompt, "Current Classification: Phone Number")
	// Every taxonomy category is offered as a choice.
	for _, c := range taxonomy.Priority {
		assert.Contains(t, prompt, string(c))
	}
	assert.Contains(t, prompt, string(taxonomy.UnknownJunk))
}

func TestBuildPromptNoSamples(t *testing.T) {
	prompt := BuildPrompt(Request{ColumnName: "blob", CandidateCategory: taxonomy.UnknownJunk})
	assert.Contains(t, prompt, "Sample Values: No samples")
}

func TestParseReply(t *testing.T) {
	j, err := ParseReply(`{"category": "Email", "confidence": 0.85, "reasoning": "looks like addresses"}`)
	require.NoError(t, err)
	assert.Equal(t, taxonomy.Email, j.Category)
	assert.InDelta(t, 0.85, j.Confidence, 0.0001)
	assert.Equal(t, "looks like addresses", j.Reasoning)
}

func TestParseReplyJSONEmbeddedInProse(t *testing.T) {
	reply := "Sure, here is my assessment:\n" +
		`{"category": "Business Name", "confidence": 0.9, "reasoning": "company names"}` +
		"\nLet me know if you need more."

	j, err := ParseReply(reply)
	require.NoError(t, err)
	assert.Equal(t, taxonomy.BusinessName, j.Category)
}

func TestParseReplyNoJSON(t *testing.T) {
	_, err := ParseReply("I think this is a phone column.")
	assert.Error(t, err)
}

func TestParseReplyUnknownCategory(t *testing.T) {
	_, err := ParseReply(`{"category": "Postal Code", "confidence": 0.9}`)
	assert.Error(t, err)
}

func TestParseReplyConfidenceOutOfRange(t *testing.T) {
	_, err := ParseReply(`{"category": "Email", "confidence": 1.4}`)
	assert.Error(t, err)

	_, err = ParseReply(`{"category": "Email", "confidence": -0.1}`)
	assert.Error(t, err)
}

func TestParseReplyMalformedJSON(t *testing.T) {
	_, err := ParseReply(`{"category": "Email", "confidence": }`)
	assert.Error(t, err)
}
