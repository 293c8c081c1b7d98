package interview

import "strings"

// SessionContext tracks which interview (if any) is in focus for the
// current conversational session, so free-form chat messages can be
// routed to the right interview without an explicit id.
//
// It is an ordinary injected object — tests create independent
// instances — and the server wires exactly one per process lifetime.
// It is in-memory only and holds no lock: the engine serves one
// conversational session at a time in practice, and losing the focus
// just means the user supplies the interview id explicitly next turn.
type SessionContext struct {
	activeID     string
	lastQuestion string
}

// NewSessionContext creates an empty session context.
func NewSessionContext() *SessionContext {
	return &SessionContext{}
}

// SetActive records the interview in focus and its pending question.
func (s *SessionContext) SetActive(id, question string) {
	s.activeID = id
	s.lastQuestion = question
}

// UpdateLastQuestion replaces the pending question text for the
// focused interview.
func (s *SessionContext) UpdateLastQuestion(question string) {
	s.lastQuestion = question
}

// Clear drops the focused interview.
func (s *SessionContext) Clear() {
	s.activeID = ""
	s.lastQuestion = ""
}

// IsActive reports whether an interview is currently in focus.
func (s *SessionContext) IsActive() bool {
	return s.activeID != ""
}

// ActiveID returns the focused interview id, or "".
func (s *SessionContext) ActiveID() string {
	return s.activeID
}

// LastQuestion returns the pending question text, or "".
func (s *SessionContext) LastQuestion() string {
	return s.lastQuestion
}

// commandWords are single-word messages that read as commands to the
// assistant rather than answers to the pending question.
var commandWords = map[string]bool{
	"status": true,
	"list":   true,
	"help":   true,
	"cancel": true,
	"stop":   true,
	"start":  true,
	"resume": true,
}

// IsLikelyInterviewResponse decides whether an arbitrary incoming chat
// message should be treated as an answer to the pending question.
//
// This is a coarse heuristic — good-enough routing, not a guarantee.
// A message counts as an answer when an interview is in focus, the
// message is not a slash command or a bare command keyword, and it has
// non-trivial length. Ambiguous messages may be misrouted; that costs
// the user one clarification turn.
func (s *SessionContext) IsLikelyInterviewResponse(message string) bool {
	if !s.IsActive() {
		return false
	}

	msg := strings.TrimSpace(message)
	if len(msg) < 4 {
		return false
	}
	if strings.HasPrefix(msg, "/") {
		return false
	}
	if commandWords[strings.ToLower(msg)] {
		return false
	}
	return true
}
