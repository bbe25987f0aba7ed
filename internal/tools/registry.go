package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tmwh/calbridge/internal/calendar"
	"github.com/tmwh/calbridge/internal/instrumentation"
	"github.com/tmwh/calbridge/internal/logging"
)

// CalendarService is the subset of the calendar client the tool handlers
// need. It is satisfied by *calendar.Client.
type CalendarService interface {
	ListUpcoming(ctx context.Context, daysAhead int) ([]calendar.EventSummary, error)
	CreateEvent(ctx context.Context, in calendar.EventInput) (string, error)
}

// ServiceFactory produces an authenticated calendar service for a single
// call. Each dispatch resolves credentials independently.
type ServiceFactory func(ctx context.Context) (CalendarService, error)

// Handler executes one tool against its already-extracted arguments and
// returns the plain-text result.
type Handler func(ctx context.Context, args map[string]any) (string, error)

// Registry holds the static tool catalog and routes calls to handlers.
type Registry struct {
	factory  ServiceFactory
	metrics  *instrumentation.Metrics
	logger   logging.Logger
	tools    []mcp.Tool
	handlers map[string]Handler
}

// NewRegistry creates a Registry over the given service factory. A nil
// metrics recorder disables metric recording; a nil logger falls back to the
// default slog logger.
func NewRegistry(factory ServiceFactory, metrics *instrumentation.Metrics, logger logging.Logger) *Registry {
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	r := &Registry{
		factory:  factory,
		metrics:  metrics,
		logger:   logger,
		handlers: make(map[string]Handler),
	}

	r.register(listEventsTool(), r.handleListEvents)
	r.register(createEventTool(), r.handleCreateEvent)

	return r
}

func (r *Registry) register(tool mcp.Tool, handler Handler) {
	r.tools = append(r.tools, tool)
	r.handlers[tool.Name] = handler
}

// Tools returns the static catalog in registration order.
func (r *Registry) Tools() []mcp.Tool {
	return r.tools
}

// Dispatch routes a call to the named tool and wraps its result in the
// text-content envelope. An unregistered name fails with UnknownToolError
// before any credential resolution or provider call happens.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	ctx, span := instrumentation.StartToolSpan(ctx, name)
	defer span.End()

	start := time.Now()
	text, err := handler(ctx, args)
	duration := time.Since(start)

	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
		instrumentation.SetSpanError(span, err)
		r.logger.Error("tool call failed",
			logging.KeyTool, name,
			logging.KeyError, err.Error(),
			logging.KeyDuration, duration,
		)
	} else {
		instrumentation.SetSpanSuccess(span)
		r.logger.Info("tool call completed",
			logging.KeyTool, name,
			logging.KeyDuration, duration,
		)
	}
	r.metrics.RecordToolInvocation(ctx, name, status, duration)

	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}
