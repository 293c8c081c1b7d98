package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/loqalabs/loqa-assistant/internal/interview"
	"github.com/loqalabs/loqa-assistant/internal/records"
	"github.com/mark3labs/mcp-go/mcp"
)

// InterviewAnswerTool handles the task_interview_answer MCP tool.
// It is the workhorse of the interview flow — records an answer,
// advances the state machine, and materializes the task record(s)
// when the interview completes.
type InterviewAnswerTool struct {
	engine       *interview.Engine
	store        interview.Store
	session      *interview.SessionContext
	materializer *records.Materializer
}

// NewInterviewAnswerTool creates an InterviewAnswerTool.
func NewInterviewAnswerTool(engine *interview.Engine, store interview.Store, session *interview.SessionContext, materializer *records.Materializer) *InterviewAnswerTool {
	return &InterviewAnswerTool{engine: engine, store: store, session: session, materializer: materializer}
}

// Definition returns the MCP tool definition for registration.
func (t *InterviewAnswerTool) Definition() mcp.Tool {
	return mcp.NewTool("task_interview_answer",
		mcp.WithDescription(
			"Answer the pending question of a guided task interview. "+
				"When the last question is answered, the task record(s) are "+
				"created and the interview is removed. If the answers are too "+
				"thin to create a record, a follow-up question is asked instead.",
		),
		mcp.WithString("answer",
			mcp.Required(),
			mcp.Description("The answer to the pending question"),
		),
		mcp.WithString("interview_id",
			mcp.Description("Interview to answer. Defaults to the interview currently in focus."),
		),
	)
}

// Handle processes the task_interview_answer tool call.
func (t *InterviewAnswerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answer := req.GetString("answer", "")
	if strings.TrimSpace(answer) == "" {
		return mcp.NewToolResultError("'answer' is required"), nil
	}

	id := req.GetString("interview_id", "")
	if id == "" {
		id = t.session.ActiveID()
	}
	if id == "" {
		return mcp.NewToolResultError(
			"No interview is in focus. Pass 'interview_id', or start one with `task_interview_start`.",
		), nil
	}

	return processInterviewAnswer(t.engine, t.store, t.session, t.materializer, id, answer)
}

// processInterviewAnswer advances an interview by one answer and renders
// the outcome. Shared by the answer tool and the conversational router.
func processInterviewAnswer(engine *interview.Engine, store interview.Store, session *interview.SessionContext, materializer *records.Materializer, id, answer string) (*mcp.CallToolResult, error) {
	state, err := engine.ProcessAnswer(id, answer)
	if err != nil {
		return nil, fmt.Errorf("processing answer: %w", err)
	}
	if state == nil {
		// Expected outcome, not an error: the id is unknown or the
		// interview was cleaned up.
		if session.ActiveID() == id {
			session.Clear()
		}
		return mcp.NewToolResultError(fmt.Sprintf(
			"Interview `%s` was not found — it may have expired. "+
				"Start a new one with `task_interview_start`.", id,
		)), nil
	}

	switch {
	case state.Complete:
		return finalizeInterview(store, session, materializer, state)

	case state.Status == interview.StatusDraft:
		if session.ActiveID() == id {
			session.Clear()
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"# Interview Parked as Draft\n\n"+
				"The answers are still too thin to create a task record, so "+
				"interview `%s` has been saved as a draft.\n\n"+
				"Resume it later with `task_interview_resume` once you know "+
				"more about the work.", state.ID,
		)), nil

	default:
		session.SetActive(state.ID, state.CurrentQuestion)
		return mcp.NewToolResultText(renderNextQuestion(state)), nil
	}
}

// finalizeInterview materializes a completed interview and deletes it
// from storage on success. Record-creation failures are reported with
// the collaborator's message passed through; siblings created before a
// failure in a breakdown batch are kept.
func finalizeInterview(store interview.Store, session *interview.SessionContext, materializer *records.Materializer, state *interview.State) (*mcp.CallToolResult, error) {
	result := materializer.Materialize(state)

	if !result.Succeeded() {
		reason := "unknown failure"
		if len(result.Failed) > 0 {
			reason = result.Failed[0].Reason
		}
		// The interview stays in storage so the creation can be retried
		// by answering it again.
		return mcp.NewToolResultError(fmt.Sprintf(
			"Task creation failed: %s\n\nThe interview is preserved — "+
				"retry with `task_interview_answer` (interview_id: %s).",
			reason, state.ID,
		)), nil
	}

	if err := store.Delete(state.ID); err != nil {
		return nil, fmt.Errorf("removing completed interview: %w", err)
	}
	if session.ActiveID() == state.ID {
		session.Clear()
	}

	var b strings.Builder
	b.WriteString("# Interview Complete\n\n")
	if len(result.Created) == 1 {
		c := result.Created[0]
		fmt.Fprintf(&b, "✅ Created **%s** in `%s`\n\n   `%s`\n", c.RecordID, c.Repository, c.FilePath)
	} else {
		fmt.Fprintf(&b, "The work was broken down into %d tasks:\n\n", len(result.Created))
		for _, c := range result.Created {
			fmt.Fprintf(&b, "  ✅ %s — `%s` (%s)\n", c.RecordID, c.Repository, c.FilePath)
		}
	}
	for _, f := range result.Failed {
		fmt.Fprintf(&b, "  ❌ %s (`%s`): %s\n", f.Title, f.Repository, f.Reason)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// renderNextQuestion formats the continuation response with progress.
func renderNextQuestion(state *interview.State) string {
	heading := fmt.Sprintf("Question %d of %d", state.QuestionIndex(), interview.QuestionCount())
	if state.CurrentID == interview.QDefinition {
		heading = "Follow-up Needed"
	}

	return fmt.Sprintf(
		"# %s\n\n"+
			"%s\n\n"+
			"_Interview `%s` — answer with `task_interview_answer` or a plain reply._",
		heading, state.CurrentQuestion, state.ID,
	)
}
