// Package logging provides structured logging helpers built on log/slog.
//
// It defines the canonical attribute keys used across the codebase, a small
// Logger interface for packages that should not depend on slog directly, and
// sanitizers for values that must never be logged verbatim (OAuth tokens).
package logging
