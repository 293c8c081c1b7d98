// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/prompts/resources that depend on
// abstractions. No business logic lives here — only wiring.
package server

import (
	"fmt"
	"log"

	"github.com/loqalabs/loqa-assistant/internal/config"
	"github.com/loqalabs/loqa-assistant/internal/interview"
	"github.com/loqalabs/loqa-assistant/internal/prompts"
	"github.com/loqalabs/loqa-assistant/internal/records"
	"github.com/loqalabs/loqa-assistant/internal/resources"
	"github.com/loqalabs/loqa-assistant/internal/thoughts"
	"github.com/loqalabs/loqa-assistant/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the store database connections
// and must be called on shutdown (typically via defer). It is always
// non-nil and safe to call.
func New() (*server.MCPServer, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, noop, fmt.Errorf("loading config: %w", err)
	}

	// --- Create shared dependencies ---

	storeCfg := interview.StoreConfig{
		DataDir:         cfg.DataDir,
		ActiveRetention: cfg.ActiveRetention(),
		DraftRetention:  cfg.DraftRetention(),
	}
	interviewStore, err := interview.NewSQLiteStore(storeCfg)
	if err != nil {
		return nil, noop, fmt.Errorf("opening interview store: %w", err)
	}

	rules := make([]interview.RepoRule, len(cfg.Repositories))
	for i, r := range cfg.Repositories {
		rules[i] = interview.RepoRule{Name: r.Name, Hints: r.Hints}
	}
	engine := interview.NewEngine(interviewStore, rules, cfg.DefaultRepository)

	// One session context per server lifetime — the single place
	// process-wide focus state is created.
	session := interview.NewSessionContext()

	provider := records.NewFileProvider(cfg.WorkspaceRoot)
	materializer := records.NewMaterializer(provider.ForRepo, provider)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"loqa-assistant",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register interview tools ---

	startTool := tools.NewInterviewStartTool(engine, session)
	s.AddTool(startTool.Definition(), startTool.Handle)

	answerTool := tools.NewInterviewAnswerTool(engine, interviewStore, session, materializer)
	s.AddTool(answerTool.Definition(), answerTool.Handle)

	messageTool := tools.NewMessageTool(engine, interviewStore, session, materializer)
	s.AddTool(messageTool.Definition(), messageTool.Handle)

	listTool := tools.NewInterviewListTool(interviewStore)
	s.AddTool(listTool.Definition(), listTool.Handle)

	resumeTool := tools.NewInterviewResumeTool(engine, session)
	s.AddTool(resumeTool.Definition(), resumeTool.Handle)

	cancelTool := tools.NewInterviewCancelTool(interviewStore, session)
	s.AddTool(cancelTool.Definition(), cancelTool.Handle)

	// --- Register thought tools ---
	//
	// Thought capture is an independent subsystem: if it fails to
	// initialize, the interview tools keep working. Log a warning and
	// skip registration.

	cleanup := func() {
		if err := interviewStore.Close(); err != nil {
			log.Printf("WARNING: interview store close: %v", err)
		}
	}

	thoughtStore, thoughtErr := thoughts.New(cfg.DataDir)
	if thoughtErr != nil {
		log.Printf("WARNING: thought capture disabled: %v", thoughtErr)
	} else {
		prev := cleanup
		cleanup = func() {
			if err := thoughtStore.Close(); err != nil {
				log.Printf("WARNING: thought store close: %v", err)
			}
			prev()
		}

		captureTool := tools.NewCaptureThoughtTool(thoughtStore)
		s.AddTool(captureTool.Definition(), captureTool.Handle)

		searchTool := tools.NewSearchThoughtsTool(thoughtStore)
		s.AddTool(searchTool.Definition(), searchTool.Handle)
	}

	// --- Register prompts ---

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(interviewStore)
	s.AddResource(resourceHandler.ActiveResource(), resourceHandler.HandleActive)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used before the stores are open.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use the assistant effectively.
func serverInstructions() string {
	return `You have access to loqa-assistant, a task-interview MCP server for
multi-repository development workflows.

## WHEN TO START AN INTERVIEW

Suggest task_interview_start when the user:
- Describes a bug, feature idea, or improvement in one or two sentences
- Says things like "we should...", "it would be nice if...", "I think..."
- Asks to create an issue or task from a vague idea

The interview asks five questions — scope, acceptance criteria,
technical constraints, dependencies, complexity — and creates the task
record(s) when complete. Do NOT start an interview for work that is
already fully specified; just create the task directly in that case.

## HOW THE INTERVIEW FLOWS

1. task_interview_start with the user's idea, verbatim
2. Relay each question to the user and send their answer with
   task_interview_answer (or route plain replies through task_message)
3. Answers are free text. For acceptance criteria and dependencies,
   one item per line works best
4. When the interview completes, the tool creates the task record(s)
   and reports their ids and file paths

If the interview reports that the answers are too thin, it asks one
follow-up question. If that answer is still too thin, the interview is
parked as a draft — resume it later with task_interview_resume.

## CONVERSATIONAL ROUTING

While an interview is in focus, route the user's plain chat replies
through task_message instead of asking them to repeat the interview id.
The routing is heuristic: very short messages and command keywords
("status", "cancel", ...) are not treated as answers. When in doubt,
use task_interview_answer with an explicit interview_id.

## BREAKDOWNS

The interview may split large work automatically:
- Work spanning several repositories becomes one task per repository
- High-complexity single-repository work becomes three phased tasks
  (Planning → Implementation → Testing)
Present the created tasks to the user; do not re-split them yourself.

## THOUGHTS

Use thought_capture for ideas that are not ready to become tasks —
observations, hunches, follow-ups. They persist across sessions and are
searchable with thought_search. Capture proactively when the user
thinks out loud.

## IMPORTANT RULES

- Pass the user's words verbatim — never summarize answers before
  sending them to the interview
- Several interviews can be in flight; task_interview_list shows them
- Interviews left unanswered are cleaned up after about a week; drafts
  are kept about a month
- Never invent acceptance criteria the user did not state`
}
