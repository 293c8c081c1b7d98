package interview

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Engine is the interview state machine. It enforces the fixed question
// sequence, routes each answer to its extractor, and decides completion,
// continuation, or reopening.
//
// Each transition loads the persisted state, derives a new value from
// it, and persists the result — the engine holds no per-interview state
// of its own, so any number of interviews can be in flight at once.
type Engine struct {
	store       Store
	rules       []RepoRule
	defaultRepo string
}

// NewEngine creates an Engine backed by the given store. Nil rules and
// an empty default repository fall back to the loqa workspace defaults.
func NewEngine(store Store, rules []RepoRule, defaultRepo string) *Engine {
	if rules == nil {
		rules = DefaultRepoRules()
	}
	if defaultRepo == "" {
		defaultRepo = "loqa"
	}
	return &Engine{store: store, rules: rules, defaultRepo: defaultRepo}
}

// InferRepositories runs repository inference with the engine's
// configured catalog.
func (e *Engine) InferRepositories(text string) []string {
	return InferRepositories(text, e.rules)
}

// Start creates a new interview from the free-text seed: derives a
// candidate title, infers repositories and initial complexity from the
// raw input, and persists the state with question 1 pending.
//
// Storage cleanup runs opportunistically here — it is best-effort and
// a failure never blocks the new interview.
func (e *Engine) Start(input string) (*State, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("interview: empty input")
	}

	if err := e.store.Cleanup(); err != nil {
		log.Printf("WARNING: interview cleanup: %v", err)
	}

	now := timeNow().UTC().Format(time.RFC3339)
	first := script[0]
	state := &State{
		ID:              uuid.NewString(),
		OriginalInput:   input,
		QuestionsAsked:  []string{first.prompt},
		CurrentQuestion: first.prompt,
		CurrentID:       first.id,
		Info: Info{
			Title:               DeriveTitle(input),
			Repositories:        e.InferRepositories(input),
			EstimatedComplexity: ClassifyComplexity(input),
		},
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := e.store.Save(state); err != nil {
		return nil, err
	}
	return state, nil
}

// ProcessAnswer records an answer for the pending question, extracts
// structured fields from it, and advances the interview.
//
// An unknown id is not an error: the result is (nil, nil) and the caller
// is expected to tell the user the interview expired. Storage failures
// propagate.
func (e *Engine) ProcessAnswer(id, answer string) (*State, error) {
	state, err := e.store.Load(id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, nil
	}
	if state.Complete {
		return state, nil
	}
	if state.Status == StatusDraft {
		// Drafts must be resumed explicitly before answering.
		return state, nil
	}

	q, ok := questionByID(state.CurrentID)
	if !ok {
		return nil, fmt.Errorf("interview %q: unknown question id %q", id, state.CurrentID)
	}

	state.AnswersReceived = append(state.AnswersReceived, Answer{
		Question: state.CurrentQuestion,
		Answer:   answer,
	})
	q.extract(e, &state.Info, answer)

	switch {
	case q.id == QDefinition:
		// The one corrective round-trip has been used. Either the
		// answers are viable now, or the interview is parked as a
		// draft rather than looping forever.
		if insufficient(&state.Info) {
			state.Status = StatusDraft
		} else {
			e.finalize(state)
		}
	case scriptIndex(q.id)+1 < len(script):
		next := script[scriptIndex(q.id)+1]
		state.QuestionsAsked = append(state.QuestionsAsked, next.prompt)
		state.CurrentQuestion = next.prompt
		state.CurrentID = next.id
	default:
		// Fixed script exhausted — finalize, or reopen with the
		// corrective question when minimum-viable fields are missing.
		if insufficient(&state.Info) {
			state.QuestionsAsked = append(state.QuestionsAsked, corrective.prompt)
			state.CurrentQuestion = corrective.prompt
			state.CurrentID = corrective.id
		} else {
			e.finalize(state)
		}
	}

	if err := e.store.Save(state); err != nil {
		return nil, err
	}
	return state, nil
}

// ResumeDraft promotes a draft back to active and re-asks its pending
// question. Returns (nil, nil) when the id is not a draft.
func (e *Engine) ResumeDraft(id string) (*State, error) {
	state, err := e.store.ResumeDraft(id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, nil
	}

	// The question that demoted the draft was answered insufficiently;
	// asking it again restores the one-question-pending invariant.
	state.QuestionsAsked = append(state.QuestionsAsked, state.CurrentQuestion)
	if err := e.store.Save(state); err != nil {
		return nil, err
	}
	return state, nil
}

// finalize marks the interview complete. An empty repository list is
// defaulted rather than failed, so downstream record creation always
// has a target. The breakdown decision runs last, after defaulting.
func (e *Engine) finalize(state *State) {
	if len(state.Info.Repositories) == 0 {
		state.Info.Repositories = []string{e.defaultRepo}
	}
	state.Info.SuggestedBreakdown = SuggestBreakdown(&state.Info)
	state.Complete = true
}

// insufficient reports whether the minimum-viable fields for record
// creation are still missing.
func insufficient(info *Info) bool {
	return strings.TrimSpace(info.Description) == "" || len(info.AcceptanceCriteria) == 0
}
