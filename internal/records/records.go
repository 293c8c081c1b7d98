// Package records materializes completed interviews into persisted
// task records via an external record-creation collaborator.
//
// The collaborators are interfaces so the materializer can be driven by
// any backend; the bundled FileProvider writes markdown task files into
// each repository's backlog.
package records

import (
	"fmt"
	"log"
	"strings"

	"github.com/loqalabs/loqa-assistant/internal/interview"
)

// CreateOptions is the input to record creation.
type CreateOptions struct {
	Title    string
	Template string
	Priority string
	Type     string
}

// Record identifies a created task record.
type Record struct {
	ID       string
	FilePath string
}

// Creator creates a task record in a single repository.
type Creator interface {
	CreateFromTemplate(opts CreateOptions) (*Record, error)
}

// Appender appends a markdown section to an existing record. Append
// failures are non-critical — the primary record already exists.
type Appender interface {
	AppendSection(path, heading, body string) error
}

// CreatorFor resolves a Creator for a target repository.
type CreatorFor func(repository string) Creator

// Created describes one successfully created record.
type Created struct {
	Repository string
	RecordID   string
	FilePath   string
}

// Failed describes one record that could not be created. The reason is
// the collaborator's message, passed through verbatim.
type Failed struct {
	Repository string
	Title      string
	Reason     string
}

// Result is the itemized outcome of materializing one interview.
// Partial failure is allowed for multi-record breakdowns: each creation
// is independent and siblings are never rolled back.
type Result struct {
	Created []Created
	Failed  []Failed
}

// Succeeded reports whether at least one record was created.
func (r *Result) Succeeded() bool {
	return len(r.Created) > 0
}

// Materializer turns finalized interview data into persisted records.
type Materializer struct {
	creatorFor CreatorFor
	appender   Appender
}

// NewMaterializer creates a Materializer. The appender may be nil,
// in which case secondary sections are skipped.
func NewMaterializer(creatorFor CreatorFor, appender Appender) *Materializer {
	return &Materializer{creatorFor: creatorFor, appender: appender}
}

// Materialize creates the record(s) for a completed interview. With a
// multi-entry breakdown it creates one record per suggestion, each via
// a per-repository creator; otherwise a single record is created from
// the primary repository and an "Additional Context" section is
// appended as a best-effort follow-up write.
func (m *Materializer) Materialize(state *interview.State) *Result {
	if len(state.Info.SuggestedBreakdown) > 1 {
		return m.materializeBreakdown(state)
	}
	return m.materializeSingle(state)
}

func (m *Materializer) materializeBreakdown(state *interview.State) *Result {
	result := &Result{}
	for _, s := range state.Info.SuggestedBreakdown {
		creator := m.creatorFor(s.Repository)
		rec, err := creator.CreateFromTemplate(CreateOptions{
			Title:    s.Title,
			Template: "general",
			Priority: priorityFor(state.Info.EstimatedComplexity),
			Type:     "task",
		})
		if err != nil {
			result.Failed = append(result.Failed, Failed{
				Repository: s.Repository,
				Title:      s.Title,
				Reason:     err.Error(),
			})
			continue
		}
		result.Created = append(result.Created, Created{
			Repository: s.Repository,
			RecordID:   rec.ID,
			FilePath:   rec.FilePath,
		})

		m.appendSection(rec.FilePath, "Description", breakdownBody(&s))
	}
	return result
}

func (m *Materializer) materializeSingle(state *interview.State) *Result {
	repo := state.Info.Repositories[0]
	creator := m.creatorFor(repo)
	rec, err := creator.CreateFromTemplate(CreateOptions{
		Title:    state.Info.Title,
		Template: "general",
		Priority: priorityFor(state.Info.EstimatedComplexity),
		Type:     "task",
	})
	if err != nil {
		return &Result{Failed: []Failed{{
			Repository: repo,
			Title:      state.Info.Title,
			Reason:     err.Error(),
		}}}
	}

	m.appendSection(rec.FilePath, "Additional Context", additionalContext(&state.Info))

	return &Result{Created: []Created{{
		Repository: repo,
		RecordID:   rec.ID,
		FilePath:   rec.FilePath,
	}}}
}

// appendSection is best-effort: failures are logged and swallowed,
// never escalated, since the primary record is already durable.
func (m *Materializer) appendSection(path, heading, body string) {
	if m.appender == nil || strings.TrimSpace(body) == "" {
		return
	}
	if err := m.appender.AppendSection(path, heading, body); err != nil {
		log.Printf("WARNING: appending %q to %s: %v", heading, path, err)
	}
}

// additionalContext renders the secondary section for a single record:
// acceptance criteria, dependencies, and the affected-repositories list.
func additionalContext(info *interview.Info) string {
	var b strings.Builder

	if len(info.AcceptanceCriteria) > 0 {
		b.WriteString("### Acceptance Criteria\n\n")
		for _, c := range info.AcceptanceCriteria {
			fmt.Fprintf(&b, "- [ ] %s\n", c)
		}
		b.WriteString("\n")
	}
	if len(info.Dependencies) > 0 {
		b.WriteString("### Dependencies\n\n")
		for _, d := range info.Dependencies {
			fmt.Fprintf(&b, "- %s\n", d)
		}
		b.WriteString("\n")
	}
	if len(info.Repositories) > 0 {
		b.WriteString("### Affected Repositories\n\n")
		for _, r := range info.Repositories {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// breakdownBody renders the per-suggestion description section.
func breakdownBody(s *interview.BreakdownSuggestion) string {
	var b strings.Builder
	b.WriteString(s.Description)
	if len(s.DependsOn) > 0 {
		b.WriteString("\n\n### Depends On\n\n")
		for _, d := range s.DependsOn {
			fmt.Fprintf(&b, "- %s\n", d)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// priorityFor maps the estimated complexity to a record priority.
func priorityFor(c interview.Complexity) string {
	if c == interview.ComplexityHigh {
		return "high"
	}
	return "medium"
}
