// Package instrumentation provides OpenTelemetry metrics and tracing for
// the tool server.
//
// A Provider owns the meter and tracer providers and their exporters.
// Metrics default to the Prometheus exporter, served on a dedicated port by
// the server package; OTLP and stdout exporters are available for both
// signals. Tracing is disabled by default.
//
// The Metrics recorder covers the surfaces this service has: HTTP requests,
// tool invocations, calendar API operations, and credential resolutions.
// All recording methods are safe to call on a zero-value recorder, so code
// paths never need to guard on instrumentation being configured.
package instrumentation
