package tools

import (
	"context"
	"fmt"

	"github.com/loqalabs/loqa-assistant/internal/interview"
	"github.com/mark3labs/mcp-go/mcp"
)

// InterviewResumeTool handles the task_interview_resume MCP tool.
// It promotes a parked draft back to an active interview.
type InterviewResumeTool struct {
	engine  *interview.Engine
	session *interview.SessionContext
}

// NewInterviewResumeTool creates an InterviewResumeTool.
func NewInterviewResumeTool(engine *interview.Engine, session *interview.SessionContext) *InterviewResumeTool {
	return &InterviewResumeTool{engine: engine, session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *InterviewResumeTool) Definition() mcp.Tool {
	return mcp.NewTool("task_interview_resume",
		mcp.WithDescription(
			"Resume a parked interview draft. The draft becomes active again, "+
				"takes the conversational focus, and its pending question is re-asked.",
		),
		mcp.WithString("interview_id",
			mcp.Required(),
			mcp.Description("The draft's interview id (see task_interview_list)"),
		),
	)
}

// Handle processes the task_interview_resume tool call.
func (t *InterviewResumeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("interview_id", "")
	if id == "" {
		return mcp.NewToolResultError("'interview_id' is required — list drafts with `task_interview_list`"), nil
	}

	state, err := t.engine.ResumeDraft(id)
	if err != nil {
		return nil, fmt.Errorf("resuming draft: %w", err)
	}
	if state == nil {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No draft found with id `%s`. List drafts with `task_interview_list`.", id,
		)), nil
	}

	t.session.SetActive(state.ID, state.CurrentQuestion)

	response := fmt.Sprintf(
		"# Interview Resumed\n\n"+
			"**ID:** `%s`\n"+
			"**Working title:** %s\n\n"+
			"## Pending Question\n\n"+
			"%s\n\n"+
			"Answer with `task_interview_answer` or a plain reply.",
		state.ID, state.Info.Title, state.CurrentQuestion,
	)

	return mcp.NewToolResultText(response), nil
}
