// Package resources implements MCP resource handlers.
//
// Resources provide read-only data the host can consume for context,
// addressed by URI (interviews://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/loqalabs/loqa-assistant/internal/interview"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages the interview resource endpoints.
type Handler struct {
	store interview.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(store interview.Store) *Handler {
	return &Handler{store: store}
}

// ActiveResource returns the MCP resource definition for in-flight interviews.
func (h *Handler) ActiveResource() mcp.Resource {
	return mcp.NewResource(
		"interviews://active",
		"Active Task Interviews",
		mcp.WithResourceDescription("All in-flight task interviews with progress and age"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleActive returns the active interview summaries as JSON.
func (h *Handler) HandleActive(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summaries, err := h.store.ListActive()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}
	if summaries == nil {
		summaries = []interview.Summary{}
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling interview summaries: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
