package tools

import (
	"context"
	"fmt"

	"github.com/loqalabs/loqa-assistant/internal/interview"
	"github.com/mark3labs/mcp-go/mcp"
)

// InterviewCancelTool handles the task_interview_cancel MCP tool.
type InterviewCancelTool struct {
	store   interview.Store
	session *interview.SessionContext
}

// NewInterviewCancelTool creates an InterviewCancelTool.
func NewInterviewCancelTool(store interview.Store, session *interview.SessionContext) *InterviewCancelTool {
	return &InterviewCancelTool{store: store, session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *InterviewCancelTool) Definition() mcp.Tool {
	return mcp.NewTool("task_interview_cancel",
		mcp.WithDescription(
			"Cancel an interview and discard its answers. Removal is permanent — "+
				"use task_interview_list drafts if you might come back to the idea.",
		),
		mcp.WithString("interview_id",
			mcp.Description("Interview to cancel. Defaults to the interview currently in focus."),
		),
	)
}

// Handle processes the task_interview_cancel tool call.
func (t *InterviewCancelTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("interview_id", "")
	if id == "" {
		id = t.session.ActiveID()
	}
	if id == "" {
		return mcp.NewToolResultError("No interview is in focus and no 'interview_id' was given."), nil
	}

	if err := t.store.Delete(id); err != nil {
		return nil, fmt.Errorf("cancelling interview: %w", err)
	}
	if t.session.ActiveID() == id {
		t.session.Clear()
	}

	return mcp.NewToolResultText(fmt.Sprintf("Interview `%s` cancelled.", id)), nil
}
