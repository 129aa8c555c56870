// File: services/agent/temporal.go
package agent

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultDurationMinutes is assumed whenever no duration can be determined.
const DefaultDurationMinutes = 30

var (
	hhmmPattern    = regexp.MustCompile(`^\s*(\d+):(\d+)\s*$`)
	hoursPattern   = regexp.MustCompile(`(?i)^\s*(\d+)\s*hours?`)
	minutesPattern = regexp.MustCompile(`(?i)^\s*(\d+)\s*minutes?`)
	rangeSeparator = regexp.MustCompile(`\s*-\s*`)
)

// ResolveDuration normalizes a heterogeneous duration value to whole
// minutes. The text forms are tried most-specific first: "HH:MM", then
// "N hour(s)", then "N minute(s)", then a bare integer; everything else
// falls back to the default.
func ResolveDuration(value any) int {
	switch v := value.(type) {
	case nil:
		return DefaultDurationMinutes
	case int:
		return v
	case float64:
		// JSON numbers decode as float64.
		return int(v)
	case string:
		return resolveDurationText(v)
	}
	return DefaultDurationMinutes
}

func resolveDurationText(s string) int {
	if m := hhmmPattern.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes
	}
	if m := hoursPattern.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return hours * 60
	}
	if m := minutesPattern.FindStringSubmatch(s); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return DefaultDurationMinutes
}

// SplitTimeRange splits a range like "8:00 PM - 9:00 PM" into its start text
// and the range length in minutes. Anything that is not a single
// well-formed range comes back unchanged with ok=false; multi-separator
// input is deliberately left alone as ambiguous.
func SplitTimeRange(parser DateTimeParser, text string, base time.Time) (string, int, bool) {
	parts := rangeSeparator.Split(text, -1)
	if len(parts) != 2 {
		return text, 0, false
	}
	start, okStart := parser.Parse(parts[0], base)
	end, okEnd := parser.Parse(parts[1], base)
	if !okStart || !okEnd {
		return text, 0, false
	}
	minutes := int(end.Sub(start).Seconds()) / 60
	return parts[0], minutes, true
}
