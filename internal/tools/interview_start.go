package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/loqalabs/loqa-assistant/internal/interview"
	"github.com/mark3labs/mcp-go/mcp"
)

// InterviewStartTool handles the task_interview_start MCP tool.
// It seeds a new guided interview from a one-line idea.
type InterviewStartTool struct {
	engine  *interview.Engine
	session *interview.SessionContext
}

// NewInterviewStartTool creates an InterviewStartTool.
func NewInterviewStartTool(engine *interview.Engine, session *interview.SessionContext) *InterviewStartTool {
	return &InterviewStartTool{engine: engine, session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *InterviewStartTool) Definition() mcp.Tool {
	return mcp.NewTool("task_interview_start",
		mcp.WithDescription(
			"Start a guided interview that turns a one-line idea into a fully "+
				"specified task. The interview asks five clarifying questions "+
				"(scope, acceptance criteria, technical constraints, dependencies, "+
				"complexity) and creates the task record(s) when complete. "+
				"Several interviews can be in flight at once; the newest one "+
				"becomes the conversational focus.",
		),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("The idea or problem in free text. "+
				"Example: 'Add dark mode to the dashboard'"),
		),
	)
}

// Handle processes the task_interview_start tool call.
func (t *InterviewStartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := req.GetString("input", "")
	if strings.TrimSpace(input) == "" {
		return mcp.NewToolResultError("'input' is required — describe the idea or problem in free text"), nil
	}

	state, err := t.engine.Start(input)
	if err != nil {
		return nil, fmt.Errorf("starting interview: %w", err)
	}

	t.session.SetActive(state.ID, state.CurrentQuestion)

	repos := "(none inferred yet)"
	if len(state.Info.Repositories) > 0 {
		repos = strings.Join(state.Info.Repositories, ", ")
	}

	response := fmt.Sprintf(
		"# Interview Started\n\n"+
			"**ID:** `%s`\n"+
			"**Working title:** %s\n"+
			"**Repositories:** %s\n"+
			"**Estimated complexity:** %s\n\n"+
			"## Question 1 of %d\n\n"+
			"%s\n\n"+
			"Answer with `task_interview_answer`, or just reply — plain "+
			"messages are routed to the interview while it is in focus.",
		state.ID, state.Info.Title, repos, state.Info.EstimatedComplexity,
		interview.QuestionCount(), state.CurrentQuestion,
	)

	return mcp.NewToolResultText(response), nil
}
