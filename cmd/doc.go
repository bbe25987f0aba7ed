// Package cmd implements the command-line interface for calbridge.
//
// This package provides the following commands:
//   - serve: Start the calendar tool server (HTTP tool-call API or MCP stdio)
//   - token: Run the interactive OAuth consent flow and mint an offline refresh token
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
