// Package server owns the HTTP surface of the tool server and the shared
// per-process context handed to request handlers.
//
// The main server exposes /debug, /tools and /tools/call plus health probes;
// Prometheus metrics are served on a dedicated port by MetricsServer. Each
// tool call independently resolves credentials through the ServerContext,
// there is no cached provider client.
package server
