// Package tools defines the static tool catalog and dispatches generic
// tool-call requests to the calendar operations behind it.
//
// The catalog holds exactly two tools, list_events and create_event, each
// with a declared argument schema. Dispatch validates required arguments,
// applies defaults, resolves a calendar service for the call, and wraps the
// operation's plain-text result in the tool-call content envelope. The same
// registry backs both the HTTP surface and the MCP stdio transport.
package tools
