package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tmwh/calbridge/internal/logging"
)

// DefaultMetricsAddr is the default listen address for the metrics endpoint.
const DefaultMetricsAddr = ":9090"

// MetricsServer serves the Prometheus /metrics endpoint on a dedicated
// listener, separate from the tool-call API.
type MetricsServer struct {
	addr   string
	srv    *http.Server
	logger logging.Logger
}

// NewMetricsServer creates a metrics server listening on addr. If addr is
// empty, DefaultMetricsAddr is used.
func NewMetricsServer(addr string, logger logging.Logger) *MetricsServer {
	if addr == "" {
		addr = DefaultMetricsAddr
	}
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &MetricsServer{
		addr:   addr,
		logger: logger,
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Addr returns the configured listen address.
func (m *MetricsServer) Addr() string {
	return m.addr
}

// Start begins serving metrics. It blocks until the server stops.
func (m *MetricsServer) Start() error {
	m.logger.Info("metrics server listening", "addr", m.addr)
	if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

// StartWithReadySignal begins serving metrics and closes ready once the
// listener is bound, so callers can sequence startup. It blocks until the
// server stops.
func (m *MetricsServer) StartWithReadySignal(ready chan<- struct{}) error {
	ln, err := net.Listen("tcp", m.addr)
	if err != nil {
		return fmt.Errorf("metrics server listen on %s: %w", m.addr, err)
	}

	m.logger.Info("metrics server listening", "addr", ln.Addr().String())
	close(ready)

	if err := m.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the metrics server.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
