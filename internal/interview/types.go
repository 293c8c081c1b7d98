// Package interview implements the guided task interview engine.
//
// An interview walks the user through a fixed sequence of clarifying
// questions that turn a one-line idea into a fully specified task record:
// scope, acceptance criteria, technical constraints, dependencies, and
// complexity. Multiple interviews can be in flight at once; each is
// persisted between turns and can be paused, resumed, or abandoned.
//
// The package is split by responsibility:
// - types: data structures and enums
// - questions: the fixed question script and per-question extractors
// - infer: keyword rule tables (title, repositories, complexity)
// - engine: the state machine (start, answer, finalize)
// - breakdown: the task-splitting decision table
// - store: SQLite persistence
// - session: the in-focus interview tracker
package interview

import "fmt"

// --- Complexity enum ---

// Complexity is the estimated size/risk bucket for the work.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// validComplexities is the set of allowed complexity buckets.
var validComplexities = map[Complexity]bool{
	ComplexityLow:    true,
	ComplexityMedium: true,
	ComplexityHigh:   true,
}

// ValidateComplexity returns an error if the bucket is not recognized.
func ValidateComplexity(c Complexity) error {
	if !validComplexities[c] {
		return fmt.Errorf("invalid complexity %q: must be one of: low, medium, high", c)
	}
	return nil
}

// --- Effort enum ---

// Effort is the estimated effort bucket for a breakdown suggestion.
type Effort string

const (
	EffortHours Effort = "hours"
	EffortDays  Effort = "days"
)

// --- Status enum ---

// Status tracks the lifecycle of a persisted interview.
type Status string

const (
	// StatusActive marks an interview that is still collecting answers.
	StatusActive Status = "active"
	// StatusDraft marks an interview demoted out of active status
	// (usually because finalization found the answers insufficient).
	// Drafts are kept for later resumption.
	StatusDraft Status = "draft"
)

// --- Core data structures ---

// Answer is one recorded (question, answer) pair.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BreakdownSuggestion is a proposed sub-task derived from a completed
// interview. Created only during finalization, never mutated after.
type BreakdownSuggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Repository  string   `json:"repository"`
	Effort      Effort   `json:"estimated_effort"`
	DependsOn   []string `json:"depends_on,omitempty"`
}

// Info is the structured record built up incrementally as answers
// of specific types arrive.
type Info struct {
	Title               string                `json:"title"`
	Description         string                `json:"description,omitempty"`
	AcceptanceCriteria  []string              `json:"acceptance_criteria,omitempty"`
	Dependencies        []string              `json:"dependencies,omitempty"`
	Repositories        []string              `json:"repositories,omitempty"`
	EstimatedComplexity Complexity            `json:"estimated_complexity"`
	NeedsBreakdown      bool                  `json:"needs_breakdown,omitempty"`
	SuggestedBreakdown  []BreakdownSuggestion `json:"suggested_breakdown,omitempty"`
}

// State is one in-progress guided conversation.
//
// Invariant: len(QuestionsAsked) == len(AnswersReceived)+1 while the
// interview is incomplete (one question always pending), and the two are
// equal once Complete is true. CurrentQuestion always equals the last
// element of QuestionsAsked.
type State struct {
	ID              string   `json:"id"`
	OriginalInput   string   `json:"original_input"`
	QuestionsAsked  []string `json:"questions_asked"`
	AnswersReceived []Answer `json:"answers_received"`
	CurrentQuestion string   `json:"current_question"`
	// CurrentID is the script identifier of the pending question,
	// used to route the next answer to its extractor.
	CurrentID string `json:"current_question_id"`
	Info      Info   `json:"accumulated_info"`
	Complete  bool   `json:"interview_complete"`
	Status    Status `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// QuestionIndex returns the 1-based position of the pending question,
// capped at the script length. For a completed interview it returns the
// number of answers received.
func (s *State) QuestionIndex() int {
	if s.Complete {
		return len(s.AnswersReceived)
	}
	n := len(s.AnswersReceived) + 1
	if n > QuestionCount() {
		n = QuestionCount()
	}
	return n
}
