package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/tmwh/calbridge/internal/google"
	"github.com/tmwh/calbridge/internal/instrumentation"
	"github.com/tmwh/calbridge/internal/logging"
	"github.com/tmwh/calbridge/internal/server"
	"github.com/tmwh/calbridge/internal/tools"
)

// DefaultHTTPPort is the port the tool-call API listens on when neither
// --http-addr nor PORT is set.
const DefaultHTTPPort = "8000"

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode       bool
		transport       string
		httpAddr        string
		tokenFile       string
		credentialsFile string
		metricsEnabled  bool
		metricsAddr     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the calendar tool server",
		Long: `Start the calendar tool server.

Supports two transport types:
  - http: Generic HTTP tool-call API on /tools and /tools/call (default)
  - stdio: Model Context Protocol (MCP) over standard input/output

Google Credentials:
  Environment strategy (preferred for deployments):
    GOOGLE_REFRESH_TOKEN, GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET
    When all three are set, no files are read from disk.

  File strategy (local development fallback):
    A cached token file (--token-file, default token.json) is used when
    valid. Otherwise the interactive consent flow runs against the OAuth
    client in --credentials-file (default credentials.json) and caches
    the resulting token.

  Run 'calbridge token' once to mint the environment variables for
  unattended deployments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Resolve listen address: flag beats PORT env beats default
			if !cmd.Flags().Changed("http-addr") {
				if port := os.Getenv("PORT"); port != "" {
					httpAddr = ":" + port
				}
			}

			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			loadMetricsEnvVars(cmd, &metricsConfig)

			googleConfig := google.ConfigFromEnv()
			googleConfig.TokenFile = tokenFile
			googleConfig.CredentialsFile = credentialsFile

			return runServe(transport, debugMode, httpAddr, googleConfig, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "http", "Transport type: http or stdio")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":"+DefaultHTTPPort, "HTTP server address (for http transport). Can also use PORT env var.")
	cmd.Flags().StringVar(&tokenFile, "token-file", google.DefaultTokenFile, "Path to the cached OAuth token file (file strategy only)")
	cmd.Flags().StringVar(&credentialsFile, "credentials-file", google.DefaultCredentialsFile, "Path to the OAuth client secrets file (file strategy only)")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(transport string, debugMode bool, httpAddr string, googleConfig google.Config, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slogger := logging.Setup(debugMode)
	logger := logging.NewSlogAdapter(slogger)

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil && transport != "stdio" {
			logger.Error("instrumentation shutdown failed", logging.KeyError, err.Error())
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if transport != "stdio" && metricsConfig.Enabled && provider.Enabled() {
		metricsServer = server.NewMetricsServer(metricsConfig.Addr, logger)

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	resolver := google.NewResolver(googleConfig)
	serverContext := server.NewServerContext(shutdownCtx, resolver, provider.Metrics())

	registry := tools.NewRegistry(func(ctx context.Context) (tools.CalendarService, error) {
		return serverContext.CalendarClient(ctx)
	}, provider.Metrics(), logger)

	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown failed", logging.KeyError, err.Error())
			}
		}
		if err := serverContext.Shutdown(); err != nil && transport != "stdio" {
			logger.Error("server context shutdown failed", logging.KeyError, err.Error())
		}
	}()

	switch transport {
	case "stdio":
		return runStdioServer(registry)
	case "http":
		return runHTTPServer(shutdownCtx, httpAddr, serverContext, registry, logger)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: http, stdio)", transport)
	}
}

func runStdioServer(registry *tools.Registry) error {
	mcpSrv := mcpserver.NewMCPServer("calbridge", version,
		mcpserver.WithToolCapabilities(true),
	)
	tools.RegisterMCPTools(mcpSrv, registry)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	if err := <-serverDone; err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

func runHTTPServer(ctx context.Context, addr string, sc *server.ServerContext, registry *tools.Registry, logger logging.Logger) error {
	mux := http.NewServeMux()

	handlers := server.NewHandlers(sc, registry)
	handlers.RegisterRoutes(mux)

	healthChecker := server.NewHealthChecker(sc)
	healthChecker.RegisterHealthEndpoints(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("tool server listening", "addr", addr, "transport", "http")

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping HTTP server")
		healthChecker.SetReady(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
	}

	logger.Info("HTTP server gracefully stopped")
	return nil
}

// loadMetricsEnvVars loads metrics server configuration from environment
// variables. Environment variables only apply when the corresponding flag
// was not explicitly set.
func loadMetricsEnvVars(cmd *cobra.Command, config *MetricsConfig) {
	if !cmd.Flags().Changed("metrics-enabled") {
		if enabled := os.Getenv("METRICS_ENABLED"); enabled == "false" {
			config.Enabled = false
		}
	}
	if !cmd.Flags().Changed("metrics-addr") {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			config.Addr = addr
		}
	}
}
