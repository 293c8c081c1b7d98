package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/loqalabs/loqa-assistant/internal/thoughts"
	"github.com/mark3labs/mcp-go/mcp"
)

// CaptureThoughtTool handles the thought_capture MCP tool.
type CaptureThoughtTool struct {
	store *thoughts.Store
}

// NewCaptureThoughtTool creates a CaptureThoughtTool.
func NewCaptureThoughtTool(store *thoughts.Store) *CaptureThoughtTool {
	return &CaptureThoughtTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *CaptureThoughtTool) Definition() mcp.Tool {
	return mcp.NewTool("thought_capture",
		mcp.WithDescription(
			"Capture a development thought, idea, or observation for later. "+
				"Thoughts are persisted and searchable across sessions — use this "+
				"for ideas that aren't ready to become tasks yet.",
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The thought, verbatim"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags, e.g. 'audio, latency'"),
		),
		mcp.WithString("context",
			mcp.Description("Where the thought came up (file, discussion, repo)"),
		),
	)
}

// Handle processes the thought_capture tool call.
func (t *CaptureThoughtTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := req.GetString("content", "")
	if strings.TrimSpace(content) == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	tags := req.GetString("tags", "")
	where := req.GetString("context", "")

	id, err := t.store.Add(content, tags, where)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to capture thought: %v", err)), nil
	}

	tagInfo := ""
	if tags != "" {
		tagInfo = fmt.Sprintf(" (tags: %s)", tags)
	}
	return mcp.NewToolResultText(fmt.Sprintf("💭 Thought #%d captured%s.", id, tagInfo)), nil
}

// ─── SearchThoughtsTool ─────────────────────────────────────────────────────

// SearchThoughtsTool handles the thought_search MCP tool.
type SearchThoughtsTool struct {
	store *thoughts.Store
}

// NewSearchThoughtsTool creates a SearchThoughtsTool.
func NewSearchThoughtsTool(store *thoughts.Store) *SearchThoughtsTool {
	return &SearchThoughtsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchThoughtsTool) Definition() mcp.Tool {
	return mcp.NewTool("thought_search",
		mcp.WithDescription(
			"Search captured thoughts by keyword, or list the most recent "+
				"ones when no query is given.",
		),
		mcp.WithString("query",
			mcp.Description("Keywords to search for. Omit to list recent thoughts."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max results (default: 10)"),
		),
	)
}

// Handle processes the thought_search tool call.
func (t *SearchThoughtsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	limit := intArg(req, "limit", 10)

	var (
		results []thoughts.Thought
		err     error
	)
	if strings.TrimSpace(query) == "" {
		results, err = t.store.Recent(limit)
	} else {
		results, err = t.store.Search(query, limit)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("thought search failed: %v", err)), nil
	}

	if len(results) == 0 {
		return mcp.NewToolResultText("No thoughts found."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d thoughts:\n\n", len(results))
	for _, th := range results {
		fmt.Fprintf(&b, "[#%d] %s\n", th.ID, th.Content)
		if th.Tags != "" {
			fmt.Fprintf(&b, "      tags: %s\n", th.Tags)
		}
		fmt.Fprintf(&b, "      %s\n\n", th.CreatedAt)
	}

	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}
