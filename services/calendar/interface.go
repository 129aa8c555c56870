// File: services/calendar/interface.go
package calendar

import (
	"context"
	"time"

	"calendai/models"
)

// Gateway is the calendar backend the dialogue manager books against.
type Gateway interface {
	// FreeWindows returns the ordered, non-overlapping free intervals of at
	// least minDuration inside [start, end).
	FreeWindows(ctx context.Context, calendarID string, start, end time.Time, minDuration time.Duration) ([]models.TimeWindow, error)

	// Book creates the event and returns a link to it.
	Book(ctx context.Context, req models.BookingRequest) (string, error)
}
