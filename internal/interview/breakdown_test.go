package interview

import "testing"

func TestSuggestBreakdown_MultiRepo(t *testing.T) {
	info := &Info{
		Title:               "Add voice event tracing",
		Description:         "Trace events end to end.",
		Repositories:        []string{"loqa-hub", "loqa-commander"},
		EstimatedComplexity: ComplexityMedium,
	}
	got := SuggestBreakdown(info)
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if got[0].Title != "Add voice event tracing (loqa-hub)" {
		t.Errorf("first title = %q", got[0].Title)
	}
	if got[0].Repository != "loqa-hub" || got[1].Repository != "loqa-commander" {
		t.Errorf("repositories = %q, %q", got[0].Repository, got[1].Repository)
	}
	for i, s := range got {
		if s.Effort != EffortDays {
			t.Errorf("suggestion %d effort = %s, want days", i, s.Effort)
		}
		if len(s.DependsOn) != 0 {
			t.Errorf("suggestion %d has dependencies %v, want none", i, s.DependsOn)
		}
	}
}

func TestSuggestBreakdown_HighComplexityPhases(t *testing.T) {
	info := &Info{
		Title:               "Migrate the event store",
		Description:         "Move off the legacy schema.",
		Repositories:        []string{"loqa-hub"},
		EstimatedComplexity: ComplexityHigh,
	}
	got := SuggestBreakdown(info)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(got))
	}
	wantTitles := []string{
		"Planning: Migrate the event store",
		"Implementation: Migrate the event store",
		"Testing: Migrate the event store",
	}
	for i, want := range wantTitles {
		if got[i].Title != want {
			t.Errorf("suggestion %d title = %q, want %q", i, got[i].Title, want)
		}
		if got[i].Repository != "loqa-hub" {
			t.Errorf("suggestion %d repository = %q, want loqa-hub", i, got[i].Repository)
		}
	}
	// Planning and Testing are hours, Implementation is days.
	if got[0].Effort != EffortHours || got[1].Effort != EffortDays || got[2].Effort != EffortHours {
		t.Errorf("efforts = %s/%s/%s, want hours/days/hours", got[0].Effort, got[1].Effort, got[2].Effort)
	}
	// The phases form a chain.
	if len(got[0].DependsOn) != 0 {
		t.Errorf("planning depends on %v, want nothing", got[0].DependsOn)
	}
	if len(got[1].DependsOn) != 1 || got[1].DependsOn[0] != wantTitles[0] {
		t.Errorf("implementation depends on %v, want [%q]", got[1].DependsOn, wantTitles[0])
	}
	if len(got[2].DependsOn) != 1 || got[2].DependsOn[0] != wantTitles[1] {
		t.Errorf("testing depends on %v, want [%q]", got[2].DependsOn, wantTitles[1])
	}
}

func TestSuggestBreakdown_SimpleTaskGetsNone(t *testing.T) {
	info := &Info{
		Title:               "Fix typo in README",
		Repositories:        []string{"loqa"},
		EstimatedComplexity: ComplexityLow,
	}
	if got := SuggestBreakdown(info); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestSuggestBreakdown_MultiRepoWinsOverHighComplexity(t *testing.T) {
	info := &Info{
		Title:               "Rework the protocol",
		Repositories:        []string{"loqa-proto", "loqa-hub", "loqa-relay"},
		EstimatedComplexity: ComplexityHigh,
	}
	got := SuggestBreakdown(info)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want one per repository", len(got))
	}
	for _, s := range got {
		if s.Repository == "" {
			t.Errorf("suggestion %q has no repository", s.Title)
		}
	}
}
