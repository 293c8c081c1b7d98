package interview

import "fmt"

// SuggestBreakdown decides whether the accumulated work should be split
// into several smaller tasks. It is a deterministic decision table with
// exactly one applicable branch per input shape:
//
//   - more than one target repository → one suggestion per repository
//   - single repository, high complexity → fixed three-phase split
//     (Planning → Implementation → Testing)
//   - otherwise → no breakdown
func SuggestBreakdown(info *Info) []BreakdownSuggestion {
	if len(info.Repositories) > 1 {
		out := make([]BreakdownSuggestion, 0, len(info.Repositories))
		for _, repo := range info.Repositories {
			out = append(out, BreakdownSuggestion{
				Title:       fmt.Sprintf("%s (%s)", info.Title, repo),
				Description: fmt.Sprintf("%s\n\nScoped to the %s repository.", info.Description, repo),
				Repository:  repo,
				Effort:      EffortDays,
			})
		}
		return out
	}

	if info.EstimatedComplexity == ComplexityHigh {
		repo := ""
		if len(info.Repositories) > 0 {
			repo = info.Repositories[0]
		}
		planning := fmt.Sprintf("Planning: %s", info.Title)
		implementation := fmt.Sprintf("Implementation: %s", info.Title)
		return []BreakdownSuggestion{
			{
				Title:       planning,
				Description: fmt.Sprintf("Design and planning phase.\n\n%s", info.Description),
				Repository:  repo,
				Effort:      EffortHours,
			},
			{
				Title:       implementation,
				Description: fmt.Sprintf("Implementation phase.\n\n%s", info.Description),
				Repository:  repo,
				Effort:      EffortDays,
				DependsOn:   []string{planning},
			},
			{
				Title:       fmt.Sprintf("Testing: %s", info.Title),
				Description: fmt.Sprintf("Testing and validation phase.\n\n%s", info.Description),
				Repository:  repo,
				Effort:      EffortHours,
				DependsOn:   []string{implementation},
			},
		}
	}

	return nil
}
