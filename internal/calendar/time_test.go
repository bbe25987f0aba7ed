package calendar

import (
	"testing"
	"time"
)

func TestParseStartTime(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset bool
		wantErr    bool
	}{
		{
			name:       "naive with seconds",
			input:      "2024-12-25T10:00:00",
			wantOffset: false,
		},
		{
			name:       "naive without seconds",
			input:      "2024-12-25T10:00",
			wantOffset: false,
		},
		{
			name:       "negative offset",
			input:      "2024-12-25T10:00:00-07:00",
			wantOffset: true,
		},
		{
			name:       "positive offset",
			input:      "2024-12-25T10:00:00+02:00",
			wantOffset: true,
		},
		{
			name:       "zulu",
			input:      "2024-12-25T10:00:00Z",
			wantOffset: true,
		},
		{
			name:    "date only",
			input:   "2024-12-25",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not-a-time",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hasOffset, err := ParseStartTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if hasOffset != tt.wantOffset {
				t.Errorf("hasOffset = %v, want %v", hasOffset, tt.wantOffset)
			}
		})
	}
}

func TestParseStartTime_WallClock(t *testing.T) {
	got, _, err := ParseStartTime("2024-12-25T10:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 10 || got.Minute() != 30 {
		t.Errorf("expected wall clock 10:30, got %02d:%02d", got.Hour(), got.Minute())
	}
}

func TestListWindow(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	now := time.Date(2024, 12, 25, 10, 0, 0, 0, loc)

	timeMin, timeMax := ListWindow(now, 7)

	if timeMin.Location() != time.UTC {
		t.Errorf("expected UTC window start, got %v", timeMin.Location())
	}
	if !timeMin.Equal(now) {
		t.Errorf("expected window start equal to now, got %v", timeMin)
	}
	if got := timeMax.Sub(timeMin); got != 7*24*time.Hour {
		t.Errorf("expected 7-day window, got %v", got)
	}
}

func TestListWindow_SingleDay(t *testing.T) {
	now := time.Date(2024, 12, 25, 10, 0, 0, 0, time.UTC)
	timeMin, timeMax := ListWindow(now, 1)

	if got := timeMax.Sub(timeMin); got != 24*time.Hour {
		t.Errorf("expected 24h window, got %v", got)
	}
}

func TestFormatEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []EventSummary
		want   string
	}{
		{
			name:   "no events",
			events: nil,
			want:   NoUpcomingEvents,
		},
		{
			name: "single event",
			events: []EventSummary{
				{Summary: "Standup", Start: "2024-12-25T10:00:00-08:00"},
			},
			want: "2024-12-25T10:00:00-08:00: Standup",
		},
		{
			name: "multiple events",
			events: []EventSummary{
				{Summary: "Standup", Start: "2024-12-25T10:00:00-08:00"},
				{Summary: "Holiday", Start: "2024-12-26"},
			},
			want: "2024-12-25T10:00:00-08:00: Standup\n2024-12-26: Holiday",
		},
		{
			name: "event with empty summary",
			events: []EventSummary{
				{Start: "2024-12-25"},
			},
			want: "2024-12-25: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEvents(tt.events); got != tt.want {
				t.Errorf("FormatEvents() = %q, want %q", got, tt.want)
			}
		})
	}
}
