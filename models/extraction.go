package models

// Intents the extraction model is allowed to return.
const (
	IntentBook         = "book"
	IntentCheckAvail   = "check_availability"
	IntentReschedule   = "reschedule"
	IntentCancel       = "cancel"
	IntentGreet        = "greet"
	IntentCapabilities = "capabilities"
	IntentUnknown      = "unknown"
	IntentReject       = "reject"
)

// ExtractedIntent is the structured guess produced by one extraction call.
// Fields are best-effort: any of them may be absent or empty. Duration and
// Attendees keep the loose JSON type (number vs string, list vs string)
// because the model is not reliable about either.
type ExtractedIntent struct {
	Intent    string `json:"intent"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Duration  any    `json:"duration"`
	Summary   string `json:"summary"`
	Attendees any    `json:"attendees"`
	Reason    string `json:"reason"`
}

// Conversational returns true for intents that carry no event fields and are
// answered directly from the Reason text.
func (e ExtractedIntent) Conversational() bool {
	switch e.Intent {
	case IntentGreet, IntentCapabilities, IntentReject, IntentUnknown:
		return true
	}
	return false
}
