// Package prompts implements the MCP prompt handlers.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the loqa-status MCP prompt.
// It instructs the AI to read and present the current interview state.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("loqa-status",
		mcp.WithPromptDescription(
			"Check what task interviews are in flight: active interviews, "+
				"their progress, and any parked drafts.",
		),
	)
}

// Handle processes the loqa-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Task Interview Status",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `task_interview_list` to check my in-flight task interviews.\n\n" +
						"Then:\n" +
						"1. Show active interviews with their progress in a clear format\n" +
						"2. Point out drafts that could be resumed or cancelled\n" +
						"3. Tell me which interview (if any) is currently in focus and its pending question",
				),
			},
		},
	}, nil
}
