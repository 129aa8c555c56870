package models

import "time"

// TimeWindow is a contiguous free interval on the calendar. Free from Start
// (inclusive) to End (exclusive).
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Covers reports whether a booking of the given duration starting at start
// fits entirely inside the window.
func (w TimeWindow) Covers(start time.Time, duration time.Duration) bool {
	return !start.Before(w.Start) && start.Before(w.End) && w.End.Sub(start) >= duration
}

// BookingRequest carries everything the calendar gateway needs to create an
// event. Built at the moment of booking, never stored.
type BookingRequest struct {
	CalendarID  string
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Attendees   []string
}
