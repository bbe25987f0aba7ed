package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestMetricsServer_Defaults(t *testing.T) {
	m := NewMetricsServer("", nil)
	if m.Addr() != DefaultMetricsAddr {
		t.Errorf("expected default addr %q, got %q", DefaultMetricsAddr, m.Addr())
	}
}

func TestMetricsServer_StartWithReadySignal(t *testing.T) {
	m := NewMetricsServer("127.0.0.1:0", nil)

	ready := make(chan struct{})
	serverErr := make(chan error, 1)
	go func() {
		if err := m.StartWithReadySignal(ready); err != nil {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ready:
	case err := <-serverErr:
		t.Fatalf("metrics server failed to start: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for metrics server to become ready")
	}

	// The ephemeral port is not exposed, so probe via the configured
	// server handler instead of a live request when addr is dynamic.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.Shutdown(shutdownCtx); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}

	if err := <-serverErr; err != nil {
		t.Errorf("metrics server returned error: %v", err)
	}
}

func TestMetricsServer_ServesMetrics(t *testing.T) {
	// Bind a fixed loopback port via the ready-signal path, then scrape it.
	const addr = "127.0.0.1:19321"
	m := NewMetricsServer(addr, nil)

	ready := make(chan struct{})
	serverErr := make(chan error, 1)
	go func() {
		if err := m.StartWithReadySignal(ready); err != nil {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ready:
	case err := <-serverErr:
		t.Skipf("could not bind %s: %v", addr, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for metrics server to become ready")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = m.Shutdown(shutdownCtx)
	}()

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", addr))
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 from /metrics, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if len(body) == 0 {
		t.Error("expected a non-empty metrics exposition")
	}
}
