package calendar

import (
	"fmt"
	"strings"
	"time"
)

// startLayouts are the accepted naive (offset-free) start time formats.
var startLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseStartTime parses an ISO-8601 start timestamp. The returned boolean
// reports whether the input carried a UTC offset (including "Z"); when it
// did not, the timestamp is interpreted as wall-clock time.
func ParseStartTime(value string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true, nil
	}

	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, false, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("invalid start_time %q: expected ISO-8601, e.g. 2024-12-25T10:00:00 or 2024-12-25T10:00:00-07:00", value)
}

// ListWindow computes the UTC time window for listing upcoming events:
// [now, now + daysAhead days].
func ListWindow(now time.Time, daysAhead int) (time.Time, time.Time) {
	min := now.UTC()
	return min, min.Add(time.Duration(daysAhead) * 24 * time.Hour)
}

// NoUpcomingEvents is returned when the listing window holds no events.
const NoUpcomingEvents = "No upcoming events found."

// FormatEvents renders event summaries as one "<start>: <summary>" line per
// event. An empty slice renders the NoUpcomingEvents sentinel.
func FormatEvents(events []EventSummary) string {
	if len(events) == 0 {
		return NoUpcomingEvents
	}

	lines := make([]string, 0, len(events))
	for _, event := range events {
		lines = append(lines, fmt.Sprintf("%s: %s", event.Start, event.Summary))
	}
	return strings.Join(lines, "\n")
}
