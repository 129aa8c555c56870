package calendar

import (
	"testing"
	"time"

	"calendai/models"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
}

func TestFreeWindows(t *testing.T) {
	tests := []struct {
		name     string
		busy     []busyInterval
		minDur   time.Duration
		expected []models.TimeWindow
	}{
		{
			name:   "empty day is one window",
			busy:   nil,
			minDur: 30 * time.Minute,
			expected: []models.TimeWindow{
				{Start: at(8, 0), End: at(18, 0)},
			},
		},
		{
			name: "gaps between events",
			busy: []busyInterval{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(12, 0), End: at(13, 0)},
			},
			minDur: 30 * time.Minute,
			expected: []models.TimeWindow{
				{Start: at(8, 0), End: at(9, 0)},
				{Start: at(10, 0), End: at(12, 0)},
				{Start: at(13, 0), End: at(18, 0)},
			},
		},
		{
			name: "short gaps are filtered by minimum duration",
			busy: []busyInterval{
				{Start: at(8, 45), End: at(17, 30)},
			},
			minDur: 60 * time.Minute,
			expected: []models.TimeWindow{},
		},
		{
			name: "back-to-back events leave no gap",
			busy: []busyInterval{
				{Start: at(8, 0), End: at(12, 0)},
				{Start: at(12, 0), End: at(18, 0)},
			},
			minDur:   15 * time.Minute,
			expected: []models.TimeWindow{},
		},
		{
			name: "overlapping events do not rewind the cursor",
			busy: []busyInterval{
				{Start: at(9, 0), End: at(12, 0)},
				{Start: at(10, 0), End: at(11, 0)},
			},
			minDur: 30 * time.Minute,
			expected: []models.TimeWindow{
				{Start: at(8, 0), End: at(9, 0)},
				{Start: at(12, 0), End: at(18, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := freeWindows(at(8, 0), at(18, 0), tt.busy, tt.minDur)
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimeWindowCovers(t *testing.T) {
	w := models.TimeWindow{Start: at(9, 0), End: at(10, 0)}

	assert.True(t, w.Covers(at(9, 0), 60*time.Minute))
	assert.True(t, w.Covers(at(9, 30), 30*time.Minute))
	// Requested interval runs past the window end.
	assert.False(t, w.Covers(at(9, 30), 45*time.Minute))
	// Start exactly at the window end is outside (half-open).
	assert.False(t, w.Covers(at(10, 0), 15*time.Minute))
	assert.False(t, w.Covers(at(8, 0), 30*time.Minute))
}
