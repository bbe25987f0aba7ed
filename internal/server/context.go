package server

import (
	"context"
	"sync"

	"github.com/tmwh/calbridge/internal/calendar"
	"github.com/tmwh/calbridge/internal/google"
	"github.com/tmwh/calbridge/internal/instrumentation"
)

// ServerContext holds the per-process state shared by request handlers.
type ServerContext struct {
	ctx      context.Context
	cancel   context.CancelFunc
	resolver *google.Resolver
	metrics  *instrumentation.Metrics
	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context. A nil metrics recorder
// disables metric recording.
func NewServerContext(ctx context.Context, resolver *google.Resolver, metrics *instrumentation.Metrics) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)

	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		resolver: resolver,
		metrics:  metrics,
	}
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Resolver returns the credential resolver.
func (sc *ServerContext) Resolver() *google.Resolver {
	return sc.resolver
}

// Metrics returns the metrics recorder. Never nil.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// CalendarClient resolves credentials and builds a calendar client for a
// single call. Resolution happens anew on every invocation; the token file
// strategy may run the interactive consent flow as a side effect.
func (sc *ServerContext) CalendarClient(ctx context.Context) (*calendar.Client, error) {
	strategy := instrumentation.StrategyFile
	if sc.resolver.Config().HasEnvCredentials() {
		strategy = instrumentation.StrategyEnv
	}

	ts, err := sc.resolver.TokenSource(ctx)
	if err != nil {
		sc.metrics.RecordCredentialResolution(ctx, strategy, instrumentation.StatusError)
		return nil, err
	}
	sc.metrics.RecordCredentialResolution(ctx, strategy, instrumentation.StatusSuccess)

	return calendar.NewClient(ctx, ts)
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
