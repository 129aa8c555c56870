package models

// Slot names recognised by the dialogue manager.
const (
	SlotDate      = "date"
	SlotTime      = "time"
	SlotDuration  = "duration"
	SlotSummary   = "summary"
	SlotAttendees = "attendees"
)

// SlotNames lists the recognised slots in merge order.
var SlotNames = []string{SlotDate, SlotTime, SlotDuration, SlotSummary, SlotAttendees}

// Session is the accumulated slot state for one conversation. It is created
// lazily on the first message of a new session id and cleared after a
// successful booking; there is no expiry in between.
type Session struct {
	ID    string         `json:"id"`
	Slots map[string]any `json:"slots"`
}

// NewSession returns an empty session for the given id.
func NewSession(id string) *Session {
	return &Session{ID: id, Slots: make(map[string]any)}
}

// Merge copies the non-empty fields of an extraction into the session.
// Empty or absent values never overwrite a previously filled slot.
func (s *Session) Merge(e ExtractedIntent) {
	if s.Slots == nil {
		s.Slots = make(map[string]any)
	}
	fields := map[string]any{
		SlotDate:      e.Date,
		SlotTime:      e.Time,
		SlotDuration:  e.Duration,
		SlotSummary:   e.Summary,
		SlotAttendees: e.Attendees,
	}
	for _, name := range SlotNames {
		if filled(fields[name]) {
			s.Slots[name] = fields[name]
		}
	}
}

// String returns the slot as a string, or "" when unset or non-string.
func (s *Session) String(name string) string {
	v, _ := s.Slots[name].(string)
	return v
}

// filled reports whether an extracted value should overwrite a slot.
func filled(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return true
}
