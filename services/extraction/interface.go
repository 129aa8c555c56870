// File: services/extraction/interface.go
package extraction

import (
	"context"

	"calendai/models"
)

// IntentExtractor turns one raw user message into a structured guess at the
// user's intent and event fields. Implementations never return a parse
// error: malformed model output degrades to an "unknown" intent. A non-nil
// error means the extraction call itself failed (network, quota).
type IntentExtractor interface {
	Extract(ctx context.Context, message string) (models.ExtractedIntent, error)
}
