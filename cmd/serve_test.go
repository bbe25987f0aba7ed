package cmd

import (
	"testing"

	"github.com/tmwh/calbridge/internal/server"
)

func TestNewServeCmd_Defaults(t *testing.T) {
	cmd := newServeCmd()

	if got, _ := cmd.Flags().GetString("transport"); got != "http" {
		t.Errorf("expected default transport 'http', got %q", got)
	}
	if got, _ := cmd.Flags().GetString("http-addr"); got != ":"+DefaultHTTPPort {
		t.Errorf("expected default http-addr ':%s', got %q", DefaultHTTPPort, got)
	}
	if got, _ := cmd.Flags().GetString("metrics-addr"); got != server.DefaultMetricsAddr {
		t.Errorf("expected default metrics-addr %q, got %q", server.DefaultMetricsAddr, got)
	}
	if got, _ := cmd.Flags().GetBool("metrics-enabled"); !got {
		t.Error("expected metrics enabled by default")
	}
	if got, _ := cmd.Flags().GetString("token-file"); got != "token.json" {
		t.Errorf("expected default token-file 'token.json', got %q", got)
	}
	if got, _ := cmd.Flags().GetString("credentials-file"); got != "credentials.json" {
		t.Errorf("expected default credentials-file 'credentials.json', got %q", got)
	}
}

func TestLoadMetricsEnvVars(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("METRICS_ADDR", ":9191")

	cmd := newServeCmd()
	config := MetricsConfig{Enabled: true, Addr: server.DefaultMetricsAddr}
	loadMetricsEnvVars(cmd, &config)

	if config.Enabled {
		t.Error("expected METRICS_ENABLED=false to disable metrics")
	}
	if config.Addr != ":9191" {
		t.Errorf("expected METRICS_ADDR to apply, got %q", config.Addr)
	}
}

func TestLoadMetricsEnvVars_FlagWins(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("METRICS_ADDR", ":9191")

	cmd := newServeCmd()
	if err := cmd.Flags().Set("metrics-enabled", "true"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	if err := cmd.Flags().Set("metrics-addr", ":9292"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	config := MetricsConfig{Enabled: true, Addr: ":9292"}
	loadMetricsEnvVars(cmd, &config)

	if !config.Enabled {
		t.Error("expected explicit flag to beat METRICS_ENABLED env var")
	}
	if config.Addr != ":9292" {
		t.Errorf("expected explicit flag to beat METRICS_ADDR env var, got %q", config.Addr)
	}
}
