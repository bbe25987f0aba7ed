package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// DefaultTimeZone is the label attached to events whose start time carries
// no UTC offset.
const DefaultTimeZone = "America/Los_Angeles"

// naiveLayout renders a timestamp without any offset, for events tagged with
// an explicit timezone label instead.
const naiveLayout = "2006-01-02T15:04:05"

// EventInput describes an event to create.
type EventInput struct {
	Summary  string
	Start    time.Time
	Duration time.Duration

	// HasOffset records whether the original start timestamp carried a UTC
	// offset. It selects the timezone policy in BuildEvent.
	HasOffset bool
}

// End returns the derived end timestamp.
func (in EventInput) End() time.Time {
	return in.Start.Add(in.Duration)
}

// EventSummary is a flattened calendar event for listing.
type EventSummary struct {
	ID      string
	Summary string

	// Start is the provider's start value verbatim: the dateTime for timed
	// events, the date for all-day events.
	Start string
}

// BuildEvent converts an EventInput into the provider insert payload.
//
// When the start carried no offset, both start and end are rendered without
// one and tagged with DefaultTimeZone. When it did, both timestamps carry
// the offset inline and no timezone label is attached. The two branches are
// deliberate and must not be merged.
func BuildEvent(in EventInput) *calendar.Event {
	end := in.End()

	if in.HasOffset {
		return &calendar.Event{
			Summary: in.Summary,
			Start:   &calendar.EventDateTime{DateTime: in.Start.Format(time.RFC3339)},
			End:     &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
		}
	}

	return &calendar.Event{
		Summary: in.Summary,
		Start: &calendar.EventDateTime{
			DateTime: in.Start.Format(naiveLayout),
			TimeZone: DefaultTimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(naiveLayout),
			TimeZone: DefaultTimeZone,
		},
	}
}

// toEventSummary converts a Google Calendar event to an EventSummary.
func toEventSummary(event *calendar.Event) EventSummary {
	if event == nil {
		return EventSummary{}
	}

	summary := EventSummary{
		ID:      event.Id,
		Summary: event.Summary,
	}

	if event.Start != nil {
		if event.Start.DateTime != "" {
			summary.Start = event.Start.DateTime
		} else {
			summary.Start = event.Start.Date
		}
	}

	return summary
}
