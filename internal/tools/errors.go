package tools

import (
	"errors"
	"fmt"
)

// UnknownToolError reports a call to a tool name missing from the catalog.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// IsUnknownTool reports whether err is an UnknownToolError.
func IsUnknownTool(err error) bool {
	var unknown *UnknownToolError
	return errors.As(err, &unknown)
}

// ValidationError reports a missing or malformed tool argument.
type ValidationError struct {
	Tool     string
	Argument string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid argument %q for tool %s: %s", e.Argument, e.Tool, e.Reason)
	}
	return fmt.Sprintf("missing required argument %q for tool %s", e.Argument, e.Tool)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}
