// File: services/calendar/windows.go
package calendar

import (
	"time"

	"calendai/models"
)

// busyInterval is one committed event on the calendar, ordered by start.
type busyInterval struct {
	Start time.Time
	End   time.Time
}

// freeWindows walks the ordered busy intervals and collects every gap of at
// least minDuration between rangeStart and rangeEnd. The gap before each
// event is a candidate window; whatever remains after the last event is the
// final one.
func freeWindows(rangeStart, rangeEnd time.Time, busy []busyInterval, minDuration time.Duration) []models.TimeWindow {
	var windows []models.TimeWindow
	current := rangeStart
	for _, b := range busy {
		if b.Start.Sub(current) >= minDuration {
			windows = append(windows, models.TimeWindow{Start: current, End: b.Start})
		}
		if b.End.After(current) {
			current = b.End
		}
	}
	if rangeEnd.Sub(current) >= minDuration {
		windows = append(windows, models.TimeWindow{Start: current, End: rangeEnd})
	}
	return windows
}
