// Package tools implements the MCP tool handlers for the task
// interview engine.
//
// Each tool is a struct that receives its dependencies via constructor
// and exposes Definition() for registration plus Handle() matching
// mcp-go's CallToolRequest signature. Expected user-facing failures are
// returned as tool error results; internal failures propagate as Go
// errors for the dispatch layer.
package tools

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// formatAge renders an interview age compactly: "35m", "3h", "2d".
func formatAge(d time.Duration) string {
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
