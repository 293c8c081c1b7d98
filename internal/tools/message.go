package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/loqalabs/loqa-assistant/internal/interview"
	"github.com/loqalabs/loqa-assistant/internal/records"
	"github.com/mark3labs/mcp-go/mcp"
)

// MessageTool handles the task_message MCP tool: conversational
// routing. A free-form chat message is treated as an answer to the
// interview in focus when the session heuristic says it looks like one.
type MessageTool struct {
	engine       *interview.Engine
	store        interview.Store
	session      *interview.SessionContext
	materializer *records.Materializer
}

// NewMessageTool creates a MessageTool.
func NewMessageTool(engine *interview.Engine, store interview.Store, session *interview.SessionContext, materializer *records.Materializer) *MessageTool {
	return &MessageTool{engine: engine, store: store, session: session, materializer: materializer}
}

// Definition returns the MCP tool definition for registration.
func (t *MessageTool) Definition() mcp.Tool {
	return mcp.NewTool("task_message",
		mcp.WithDescription(
			"Route a free-form conversational message. While an interview is "+
				"in focus, messages that look like answers are fed to its pending "+
				"question without needing an explicit interview id. The routing "+
				"is heuristic — short messages and command keywords are not "+
				"treated as answers.",
		),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The user's chat message, verbatim"),
		),
	)
}

// Handle processes the task_message tool call.
func (t *MessageTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message := req.GetString("message", "")
	if strings.TrimSpace(message) == "" {
		return mcp.NewToolResultError("'message' is required"), nil
	}

	if !t.session.IsActive() {
		return mcp.NewToolResultText(
			"No interview is in focus — nothing to route this message to. " +
				"Start one with `task_interview_start`, or resume a draft with " +
				"`task_interview_resume`.",
		), nil
	}

	if !t.session.IsLikelyInterviewResponse(message) {
		return mcp.NewToolResultText(fmt.Sprintf(
			"That doesn't look like an answer to the pending question, so it "+
				"was not recorded.\n\nPending question for interview `%s`:\n\n%s\n\n"+
				"Use `task_interview_answer` to answer explicitly.",
			t.session.ActiveID(), t.session.LastQuestion(),
		)), nil
	}

	return processInterviewAnswer(t.engine, t.store, t.session, t.materializer, t.session.ActiveID(), message)
}
