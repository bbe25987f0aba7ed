package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tmwh/calbridge/internal/tools"
)

// ToolCallRequest is the body of POST /tools/call.
type ToolCallRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ToolsResponse is the body of GET /tools.
type ToolsResponse struct {
	Tools []mcp.Tool `json:"tools"`
}

// errorResponse carries an error message to the caller.
type errorResponse struct {
	Error string `json:"error"`
}

// Handlers serves the tool-call HTTP surface.
type Handlers struct {
	sc       *ServerContext
	registry *tools.Registry
	logger   *slog.Logger
}

// NewHandlers creates the HTTP handlers over the given server context and
// tool registry.
func NewHandlers(sc *ServerContext, registry *tools.Registry) *Handlers {
	return &Handlers{
		sc:       sc,
		registry: registry,
		logger:   slog.Default(),
	}
}

// RegisterRoutes registers the tool-call endpoints on the given mux.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/debug", h.withMetrics("/debug", http.HandlerFunc(h.handleDebug)))
	mux.Handle("/tools", h.withMetrics("/tools", http.HandlerFunc(h.handleTools)))
	mux.Handle("/tools/call", h.withMetrics("/tools/call", http.HandlerFunc(h.handleToolCall)))
}

// handleDebug reports which credential environment variables are set,
// previews included, full secrets never.
func (h *Handlers) handleDebug(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, h.sc.Resolver().Config().EnvStatus())
}

// handleTools returns the static tool catalog.
func (h *Handlers) handleTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, ToolsResponse{Tools: h.registry.Tools()})
}

// handleToolCall dispatches a generic tool call. An unknown tool name is a
// 400; every other failure, validation included, is a 500 carrying the
// underlying message.
func (h *Handlers) handleToolCall(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ToolCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("rejected malformed tool call body", "error", err.Error())
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.registry.Dispatch(r.Context(), req.Name, req.Arguments)
	if err != nil {
		if tools.IsUnknownTool(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// withMetrics records request count and duration for a route.
func (h *Handlers) withMetrics(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		h.sc.Metrics().RecordHTTPRequest(r.Context(), r.Method, path, recorder.status, time.Since(start))
	})
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func (rec *statusRecorder) WriteHeader(status int) {
	if !rec.written {
		rec.status = status
		rec.written = true
	}
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.written = true
	return rec.ResponseWriter.Write(b)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
