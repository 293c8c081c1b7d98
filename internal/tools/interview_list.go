package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/loqalabs/loqa-assistant/internal/interview"
	"github.com/mark3labs/mcp-go/mcp"
)

// InterviewListTool handles the task_interview_list MCP tool.
type InterviewListTool struct {
	store interview.Store
}

// NewInterviewListTool creates an InterviewListTool.
func NewInterviewListTool(store interview.Store) *InterviewListTool {
	return &InterviewListTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *InterviewListTool) Definition() mcp.Tool {
	return mcp.NewTool("task_interview_list",
		mcp.WithDescription(
			"List all in-flight task interviews and parked drafts, with "+
				"their age and progress through the question sequence.",
		),
	)
}

// Handle processes the task_interview_list tool call.
func (t *InterviewListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	active, err := t.store.ListActive()
	if err != nil {
		return nil, fmt.Errorf("listing active interviews: %w", err)
	}
	drafts, err := t.store.ListDrafts()
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}

	if len(active) == 0 && len(drafts) == 0 {
		return mcp.NewToolResultText(
			"No interviews in flight. Start one with `task_interview_start`.",
		), nil
	}

	var b strings.Builder

	if len(active) > 0 {
		fmt.Fprintf(&b, "# Active Interviews (%d)\n\n", len(active))
		for _, s := range active {
			fmt.Fprintf(&b, "- **%s** — question %d of %d, started %s ago\n  `%s`\n",
				s.Title, s.QuestionIndex, s.QuestionCount, formatAge(s.Age), s.ID)
		}
	}

	if len(drafts) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "# Drafts (%d)\n\n", len(drafts))
		for _, s := range drafts {
			fmt.Fprintf(&b, "- **%s** — parked %s ago, resume with `task_interview_resume`\n  `%s`\n",
				s.Title, formatAge(s.Age), s.ID)
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}
