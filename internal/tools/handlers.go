package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tmwh/calbridge/internal/calendar"
	"github.com/tmwh/calbridge/internal/instrumentation"
)

// handleListEvents lists upcoming events on the primary calendar.
func (r *Registry) handleListEvents(ctx context.Context, args map[string]any) (string, error) {
	daysAhead, err := intArg(args, ToolListEvents, ArgDaysAhead, DefaultDaysAhead)
	if err != nil {
		return "", err
	}

	svc, err := r.factory(ctx)
	if err != nil {
		return "", err
	}

	start := time.Now()
	events, err := svc.ListUpcoming(ctx, daysAhead)
	r.recordAPIOperation(ctx, instrumentation.OperationList, err, time.Since(start))
	if err != nil {
		return "", err
	}

	return calendar.FormatEvents(events), nil
}

// handleCreateEvent creates an event on the primary calendar.
func (r *Registry) handleCreateEvent(ctx context.Context, args map[string]any) (string, error) {
	summary, err := requireString(args, ToolCreateEvent, ArgSummary)
	if err != nil {
		return "", err
	}

	startTime, err := requireString(args, ToolCreateEvent, ArgStartTime)
	if err != nil {
		return "", err
	}

	durationMinutes, err := intArg(args, ToolCreateEvent, ArgDurationMinutes, DefaultDurationMinutes)
	if err != nil {
		return "", err
	}

	startAt, hasOffset, err := calendar.ParseStartTime(startTime)
	if err != nil {
		return "", &ValidationError{Tool: ToolCreateEvent, Argument: ArgStartTime, Reason: err.Error()}
	}

	svc, err := r.factory(ctx)
	if err != nil {
		return "", err
	}

	input := calendar.EventInput{
		Summary:   summary,
		Start:     startAt,
		Duration:  time.Duration(durationMinutes) * time.Minute,
		HasOffset: hasOffset,
	}

	start := time.Now()
	link, err := svc.CreateEvent(ctx, input)
	r.recordAPIOperation(ctx, instrumentation.OperationCreate, err, time.Since(start))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Event created: %s", link), nil
}

func (r *Registry) recordAPIOperation(ctx context.Context, operation string, err error, duration time.Duration) {
	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	r.metrics.RecordCalendarAPIOperation(ctx, operation, status, duration)
}

// requireString extracts a required string argument.
func requireString(args map[string]any, tool, key string) (string, error) {
	value, ok := args[key]
	if !ok {
		return "", &ValidationError{Tool: tool, Argument: key}
	}

	s, ok := value.(string)
	if !ok || s == "" {
		return "", &ValidationError{Tool: tool, Argument: key, Reason: "expected a non-empty string"}
	}
	return s, nil
}

// intArg extracts an optional integer argument, tolerating the numeric types
// JSON decoding produces.
func intArg(args map[string]any, tool, key string, defaultValue int) (int, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return defaultValue, nil
	}

	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, &ValidationError{Tool: tool, Argument: key, Reason: "expected an integer"}
		}
		return int(n), nil
	default:
		return 0, &ValidationError{Tool: tool, Argument: key, Reason: "expected an integer"}
	}
}
