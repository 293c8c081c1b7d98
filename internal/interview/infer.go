package interview

import (
	"regexp"
	"strings"
	"unicode"
)

// Keyword heuristics for bootstrapping an interview from free text.
// These are deliberately data-driven rule tables rather than inline
// string checks, so each table is independently testable and can be
// swapped for a smarter classifier without touching call sites.

// --- Title derivation ---

const maxTitleLen = 60

// fillerPrefixes are hedging phrases stripped from the start of the
// seed text before it becomes a title. Checked longest-first so
// "we should maybe" wins over "we should".
var fillerPrefixes = []string{
	"it would be nice if ",
	"we should maybe ",
	"i think we could ",
	"i think ",
	"we could ",
	"maybe ",
	"perhaps ",
}

// DeriveTitle turns the free-text seed into a task title: takes the
// first sentence, strips filler prefixes, capitalizes the first letter,
// and truncates at a word boundary above the length threshold.
//
// Example: "I think we should fix the login timeout bug immediately"
// → "We should fix the login timeout bug immediately"
func DeriveTitle(input string) string {
	title := strings.TrimSpace(input)

	// First sentence only.
	if idx := strings.IndexAny(title, ".!?\n"); idx > 0 {
		title = strings.TrimSpace(title[:idx])
	}

	lower := strings.ToLower(title)
	for _, prefix := range fillerPrefixes {
		if strings.HasPrefix(lower, prefix) {
			title = strings.TrimSpace(title[len(prefix):])
			break
		}
	}

	if title == "" {
		return "Untitled task"
	}

	runes := []rune(title)
	runes[0] = unicode.ToUpper(runes[0])
	title = string(runes)

	if len(title) <= maxTitleLen {
		return title
	}

	// Truncate at a word boundary if one exists past the halfway point.
	truncated := title[:maxTitleLen]
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > maxTitleLen/2 {
		truncated = truncated[:lastSpace]
	}
	return strings.TrimRight(truncated, " ,;:-")
}

// --- Repository inference ---

// RepoRule maps a repository name to the technology keywords that
// imply it when the name itself is not mentioned.
type RepoRule struct {
	Name  string
	Hints []string
}

// DefaultRepoRules is the repository catalog for the loqa workspace.
// The config layer can override it.
func DefaultRepoRules() []RepoRule {
	return []RepoRule{
		{Name: "loqa", Hints: nil},
		{Name: "loqa-hub", Hints: []string{"hub", "backend", "api", "server"}},
		{Name: "loqa-commander", Hints: []string{"dashboard", "vue", "ui", "frontend"}},
		{Name: "loqa-relay", Hints: []string{"relay", "audio", "capture"}},
		{Name: "loqa-proto", Hints: []string{"proto", "grpc", "protocol"}},
		{Name: "loqa-skills", Hints: []string{"skill", "plugin"}},
		{Name: "www-loqalabs-com", Hints: []string{"website", "docs", "marketing"}},
	}
}

// InferRepositories returns the repositories implied by the text,
// in catalog order. Exact word-boundary name matches are collected
// first; technology-keyword hints apply only to names not already
// matched, so a repo never appears twice. Returns nil when nothing
// matches — the finalization default is applied by the engine, not here.
func InferRepositories(text string, rules []RepoRule) []string {
	lower := strings.ToLower(text)

	var out []string
	matched := make(map[string]bool)
	for _, rule := range rules {
		if wordBoundaryMatch(lower, strings.ToLower(rule.Name)) {
			out = append(out, rule.Name)
			matched[rule.Name] = true
		}
	}
	for _, rule := range rules {
		if matched[rule.Name] {
			continue
		}
		for _, hint := range rule.Hints {
			if wordBoundaryMatch(lower, hint) {
				out = append(out, rule.Name)
				matched[rule.Name] = true
				break
			}
		}
	}
	return out
}

// wordBoundaryMatch reports whether word occurs in text delimited by
// non-word characters, so "hub" does not match "github".
func wordBoundaryMatch(text, word string) bool {
	re, err := regexp.Compile(`(^|[^a-z0-9-])` + regexp.QuoteMeta(word) + `($|[^a-z0-9-])`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// --- Complexity classification ---

// highComplexityKeywords are checked before low ones — an answer
// mentioning both "architectural" and "simple" classifies high.
var highComplexityKeywords = []string{
	"architectural",
	"breaking change",
	"breaking changes",
	"complex",
	"major refactor",
	"multiple weeks",
	"risky",
	"migration",
}

var lowComplexityKeywords = []string{
	"simple",
	"quick",
	"trivial",
	"small",
	"minor",
	"easy",
	"straightforward",
}

// ClassifyComplexity buckets free text into low/medium/high using the
// keyword tables. Default is medium when no keyword matches.
func ClassifyComplexity(text string) Complexity {
	lower := strings.ToLower(text)
	if containsAny(lower, highComplexityKeywords) {
		return ComplexityHigh
	}
	if containsAny(lower, lowComplexityKeywords) {
		return ComplexityLow
	}
	return ComplexityMedium
}
