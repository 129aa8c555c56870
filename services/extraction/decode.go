// File: services/extraction/decode.go
package extraction

import (
	"encoding/json"
	"strings"

	"calendai/models"
)

// FallbackReason is used when the model returns nothing usable at all.
const FallbackReason = "Sorry, I could not understand your request."

// DecodeExtraction recovers a structured extraction from raw model output.
// The model is asked for bare JSON but often wraps it in code fences or
// surrounding prose; a parse failure never propagates — the worst case is
// an "unknown" intent carrying the raw text as its reason.
func DecodeExtraction(raw string) models.ExtractedIntent {
	text := stripCodeFences(raw)

	var out models.ExtractedIntent
	if err := json.Unmarshal([]byte(text), &out); err == nil {
		return normalize(out)
	}

	// Second chance: the first top-level brace-delimited substring.
	if inner, ok := braceSubstring(text); ok {
		if err := json.Unmarshal([]byte(inner), &out); err == nil {
			return normalize(out)
		}
	}

	reason := text
	if reason == "" {
		reason = FallbackReason
	}
	return models.ExtractedIntent{Intent: models.IntentUnknown, Reason: reason}
}

func normalize(e models.ExtractedIntent) models.ExtractedIntent {
	if e.Intent == "" {
		e.Intent = models.IntentUnknown
	}
	return e
}

// stripCodeFences removes leading/trailing markdown fences like ```json.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// braceSubstring returns the substring from the first '{' to the last '}'.
func braceSubstring(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
