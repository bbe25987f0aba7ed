package calendar

import (
	"testing"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

func TestBuildEvent_NaiveStart(t *testing.T) {
	start, hasOffset, err := ParseStartTime("2024-12-25T10:00:00")
	if err != nil {
		t.Fatalf("ParseStartTime returned error: %v", err)
	}
	if hasOffset {
		t.Fatal("expected no offset for naive timestamp")
	}

	event := BuildEvent(EventInput{
		Summary:   "Standup",
		Start:     start,
		Duration:  30 * time.Minute,
		HasOffset: hasOffset,
	})

	if event.Summary != "Standup" {
		t.Errorf("expected summary 'Standup', got %q", event.Summary)
	}
	if event.Start.DateTime != "2024-12-25T10:00:00" {
		t.Errorf("expected naive start, got %q", event.Start.DateTime)
	}
	if event.Start.TimeZone != DefaultTimeZone {
		t.Errorf("expected start timezone %q, got %q", DefaultTimeZone, event.Start.TimeZone)
	}
	if event.End.DateTime != "2024-12-25T10:30:00" {
		t.Errorf("expected end 30 minutes after start, got %q", event.End.DateTime)
	}
	if event.End.TimeZone != DefaultTimeZone {
		t.Errorf("expected end timezone %q, got %q", DefaultTimeZone, event.End.TimeZone)
	}
}

func TestBuildEvent_OffsetStart(t *testing.T) {
	start, hasOffset, err := ParseStartTime("2024-12-25T10:00:00-07:00")
	if err != nil {
		t.Fatalf("ParseStartTime returned error: %v", err)
	}
	if !hasOffset {
		t.Fatal("expected offset to be detected")
	}

	event := BuildEvent(EventInput{
		Summary:   "Review",
		Start:     start,
		Duration:  60 * time.Minute,
		HasOffset: hasOffset,
	})

	if event.Start.DateTime != "2024-12-25T10:00:00-07:00" {
		t.Errorf("expected offset preserved in start, got %q", event.Start.DateTime)
	}
	if event.End.DateTime != "2024-12-25T11:00:00-07:00" {
		t.Errorf("expected offset preserved in end, got %q", event.End.DateTime)
	}
	if event.Start.TimeZone != "" {
		t.Errorf("expected no timezone label for offset start, got %q", event.Start.TimeZone)
	}
	if event.End.TimeZone != "" {
		t.Errorf("expected no timezone label for offset end, got %q", event.End.TimeZone)
	}
}

func TestBuildEvent_UTCStart(t *testing.T) {
	start, hasOffset, err := ParseStartTime("2024-12-25T18:00:00Z")
	if err != nil {
		t.Fatalf("ParseStartTime returned error: %v", err)
	}
	if !hasOffset {
		t.Fatal("expected Z suffix to count as an offset")
	}

	event := BuildEvent(EventInput{
		Summary:   "Sync",
		Start:     start,
		Duration:  15 * time.Minute,
		HasOffset: hasOffset,
	})

	if event.Start.DateTime != "2024-12-25T18:00:00Z" {
		t.Errorf("expected Z preserved in start, got %q", event.Start.DateTime)
	}
	if event.End.DateTime != "2024-12-25T18:15:00Z" {
		t.Errorf("expected Z preserved in end, got %q", event.End.DateTime)
	}
}

func TestEventInput_End(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	in := EventInput{Start: start, Duration: 90 * time.Minute}

	want := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	if got := in.End(); !got.Equal(want) {
		t.Errorf("expected end %v, got %v", want, got)
	}
}

func TestToEventSummary(t *testing.T) {
	tests := []struct {
		name  string
		event *calendar.Event
		want  EventSummary
	}{
		{
			name:  "nil event",
			event: nil,
			want:  EventSummary{},
		},
		{
			name: "timed event uses dateTime",
			event: &calendar.Event{
				Id:      "ev1",
				Summary: "Standup",
				Start:   &calendar.EventDateTime{DateTime: "2024-12-25T10:00:00-08:00"},
			},
			want: EventSummary{ID: "ev1", Summary: "Standup", Start: "2024-12-25T10:00:00-08:00"},
		},
		{
			name: "all-day event falls back to date",
			event: &calendar.Event{
				Id:      "ev2",
				Summary: "Holiday",
				Start:   &calendar.EventDateTime{Date: "2024-12-25"},
			},
			want: EventSummary{ID: "ev2", Summary: "Holiday", Start: "2024-12-25"},
		},
		{
			name: "missing start",
			event: &calendar.Event{
				Id:      "ev3",
				Summary: "Floating",
			},
			want: EventSummary{ID: "ev3", Summary: "Floating"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toEventSummary(tt.event); got != tt.want {
				t.Errorf("toEventSummary() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
