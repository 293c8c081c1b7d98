package interview

import "strings"

// The interview script is a fixed ordered list of questions. Each entry
// carries a stable identifier and an extractor that folds the free-text
// answer into the accumulated Info. The engine is a small interpreter
// over this list — adding a question means adding an entry here, not
// touching the state machine.

// Question identifiers. Stable — persisted in State.CurrentID.
const (
	QScope        = "scope"
	QAcceptance   = "acceptance"
	QTechnical    = "technical"
	QDependencies = "dependencies"
	QComplexity   = "complexity"
	// QDefinition is the corrective question asked when finalization
	// finds the description or acceptance criteria missing. It is not
	// part of the normal five-question script.
	QDefinition = "definition"
)

type question struct {
	id      string
	prompt  string
	extract func(e *Engine, info *Info, answer string)
}

var script = []question{
	{
		id:     QScope,
		prompt: "What specific problem does this solve, and what is in scope? Describe the work in your own words.",
		extract: func(e *Engine, info *Info, answer string) {
			info.Description = answer
		},
	},
	{
		id:     QAcceptance,
		prompt: "What does \"done\" look like? List the acceptance criteria, one per line.",
		extract: func(e *Engine, info *Info, answer string) {
			info.AcceptanceCriteria = splitLines(answer)
		},
	},
	{
		id:     QTechnical,
		prompt: "Are there technical constraints, or specific components and repositories this touches?",
		extract: func(e *Engine, info *Info, answer string) {
			info.Repositories = unionRepos(info.Repositories, e.InferRepositories(answer))
		},
	},
	{
		id:     QDependencies,
		prompt: "Does this depend on other work, or block anything? List dependencies or blockers, one per line.",
		extract: func(e *Engine, info *Info, answer string) {
			info.Dependencies = splitLines(answer)
		},
	},
	{
		id:     QComplexity,
		prompt: "How complex is this work, and how long do you expect it to take? Mention if it should be broken into smaller pieces.",
		extract: func(e *Engine, info *Info, answer string) {
			info.EstimatedComplexity = ClassifyComplexity(answer)
			info.NeedsBreakdown = info.EstimatedComplexity == ComplexityHigh ||
				containsAny(strings.ToLower(answer), breakdownTriggers)
			if info.NeedsBreakdown {
				info.SuggestedBreakdown = SuggestBreakdown(info)
			}
		},
	},
}

// corrective is the extra round-trip inserted when finalization finds
// the minimum-viable fields missing.
var corrective = question{
	id: QDefinition,
	prompt: "This task needs more definition before it can be created. " +
		"Describe what needs to be done, and what success looks like (acceptance criteria one per line).",
	extract: func(e *Engine, info *Info, answer string) {
		if strings.TrimSpace(info.Description) == "" {
			info.Description = answer
		}
		if len(info.AcceptanceCriteria) == 0 {
			info.AcceptanceCriteria = splitLines(answer)
		}
	},
}

// breakdownTriggers are answer words that force a breakdown suggestion
// regardless of the classified complexity.
var breakdownTriggers = []string{"break", "multiple", "phases"}

// QuestionCount returns the number of questions in the fixed script,
// not counting the corrective question.
func QuestionCount() int {
	return len(script)
}

// questionByID returns the script entry (or the corrective entry) for
// the given identifier, and false if the id is unknown.
func questionByID(id string) (question, bool) {
	if id == QDefinition {
		return corrective, true
	}
	for _, q := range script {
		if q.id == id {
			return q, true
		}
	}
	return question{}, false
}

// scriptIndex returns the position of id in the script, or -1.
func scriptIndex(id string) int {
	for i, q := range script {
		if q.id == id {
			return i
		}
	}
	return -1
}

// splitLines splits an answer into trimmed, non-blank lines.
func splitLines(answer string) []string {
	var out []string
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// unionRepos appends repos from b that are not already in a,
// preserving order.
func unionRepos(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	for _, r := range a {
		seen[r] = true
	}
	out := a
	for _, r := range b {
		if !seen[r] {
			out = append(out, r)
			seen[r] = true
		}
	}
	return out
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
