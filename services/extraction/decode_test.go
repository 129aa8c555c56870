package extraction

import (
	"testing"

	"calendai/models"

	"github.com/stretchr/testify/assert"
)

func TestDecodeExtraction(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected models.ExtractedIntent
	}{
		{
			name: "bare json",
			raw:  `{"intent":"book","date":"tomorrow","time":"3pm","summary":"standup"}`,
			expected: models.ExtractedIntent{
				Intent: models.IntentBook, Date: "tomorrow", Time: "3pm", Summary: "standup",
			},
		},
		{
			name: "json in code fences",
			raw:  "```json\n{\"intent\":\"check_availability\",\"date\":\"friday\"}\n```",
			expected: models.ExtractedIntent{
				Intent: models.IntentCheckAvail, Date: "friday",
			},
		},
		{
			name: "json buried in prose",
			raw:  "Sure, here is what I found: {\"intent\":\"greet\",\"reason\":\"Hello!\"} Let me know.",
			expected: models.ExtractedIntent{
				Intent: models.IntentGreet, Reason: "Hello!",
			},
		},
		{
			name: "plain text falls back to unknown",
			raw:  "I cannot parse that message.",
			expected: models.ExtractedIntent{
				Intent: models.IntentUnknown, Reason: "I cannot parse that message.",
			},
		},
		{
			name: "empty output gets generic fallback",
			raw:  "",
			expected: models.ExtractedIntent{
				Intent: models.IntentUnknown, Reason: FallbackReason,
			},
		},
		{
			name: "missing intent is normalised to unknown",
			raw:  `{"date":"tomorrow"}`,
			expected: models.ExtractedIntent{
				Intent: models.IntentUnknown, Date: "tomorrow",
			},
		},
		{
			name: "numeric duration survives decoding",
			raw:  `{"intent":"book","duration":45}`,
			expected: models.ExtractedIntent{
				Intent: models.IntentBook, Duration: float64(45),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeExtraction(tt.raw))
		})
	}
}

func TestDecodeExtractionBadBraces(t *testing.T) {
	// Braces that are not valid JSON still degrade to unknown.
	out := DecodeExtraction("weird {not json} trailing")
	assert.Equal(t, models.IntentUnknown, out.Intent)
	assert.Equal(t, "weird {not json} trailing", out.Reason)
}
