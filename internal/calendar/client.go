package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	// primaryCalendarID is the only calendar this service operates on.
	primaryCalendarID = "primary"

	// maxListResults caps the number of events a listing returns.
	maxListResults = 10
)

// Client wraps the Google Calendar service.
type Client struct {
	svc *calendar.Service
}

// NewClient creates a Calendar client authenticated by the given token
// source.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// ListUpcoming lists events on the primary calendar starting within the next
// daysAhead days, recurring events expanded to single instances, ordered by
// start time, capped at maxListResults.
func (c *Client) ListUpcoming(ctx context.Context, daysAhead int) ([]EventSummary, error) {
	timeMin, timeMax := ListWindow(time.Now(), daysAhead)

	events, err := c.svc.Events.List(primaryCalendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		MaxResults(maxListResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var summaries []EventSummary
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event))
	}

	return summaries, nil
}

// CreateEvent inserts an event on the primary calendar and returns the
// provider's canonical link to it.
func (c *Client) CreateEvent(ctx context.Context, in EventInput) (string, error) {
	created, err := c.svc.Events.Insert(primaryCalendarID, BuildEvent(in)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	return created.HtmlLink, nil
}
