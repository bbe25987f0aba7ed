package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names in the catalog.
const (
	ToolListEvents  = "list_events"
	ToolCreateEvent = "create_event"
)

// Argument names and defaults.
const (
	ArgDaysAhead       = "days_ahead"
	ArgSummary         = "summary"
	ArgStartTime       = "start_time"
	ArgDurationMinutes = "duration_minutes"

	DefaultDaysAhead       = 7
	DefaultDurationMinutes = 60
)

// listEventsTool declares the list_events tool and its argument schema.
func listEventsTool() mcp.Tool {
	return mcp.NewTool(ToolListEvents,
		mcp.WithDescription("List upcoming calendar events"),
		mcp.WithNumber(ArgDaysAhead,
			mcp.DefaultNumber(DefaultDaysAhead),
			mcp.Description("Number of days ahead to look for events"),
		),
	)
}

// createEventTool declares the create_event tool and its argument schema.
func createEventTool() mcp.Tool {
	return mcp.NewTool(ToolCreateEvent,
		mcp.WithDescription("Create a calendar event"),
		mcp.WithString(ArgSummary,
			mcp.Required(),
			mcp.Description("Event title/summary"),
		),
		mcp.WithString(ArgStartTime,
			mcp.Required(),
			mcp.Description("Start time in format: 2024-12-25T10:00:00 or 2024-12-25T10:00:00-07:00"),
		),
		mcp.WithNumber(ArgDurationMinutes,
			mcp.DefaultNumber(DefaultDurationMinutes),
			mcp.Description("Event duration in minutes"),
		),
	)
}
