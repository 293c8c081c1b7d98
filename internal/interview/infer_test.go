package interview

import (
	"reflect"
	"testing"
)

// --- DeriveTitle ---

func TestDeriveTitle_StripsFillerPrefix(t *testing.T) {
	got := DeriveTitle("I think we should fix the login timeout bug immediately")
	want := "We should fix the login timeout bug immediately"
	if got != want {
		t.Errorf("DeriveTitle = %q, want %q", got, want)
	}
}

func TestDeriveTitle_FirstSentenceOnly(t *testing.T) {
	got := DeriveTitle("Fix the relay reconnect loop. It drops audio every few minutes.")
	want := "Fix the relay reconnect loop"
	if got != want {
		t.Errorf("DeriveTitle = %q, want %q", got, want)
	}
}

func TestDeriveTitle_CapitalizesFirstLetter(t *testing.T) {
	got := DeriveTitle("maybe add retry backoff to the hub client")
	want := "Add retry backoff to the hub client"
	if got != want {
		t.Errorf("DeriveTitle = %q, want %q", got, want)
	}
}

func TestDeriveTitle_TruncatesAtWordBoundary(t *testing.T) {
	got := DeriveTitle("Rework the entire event pipeline so that every message is validated twice before dispatch")
	if len(got) > maxTitleLen {
		t.Errorf("title length = %d, want <= %d", len(got), maxTitleLen)
	}
	if got[len(got)-1] == ' ' {
		t.Error("truncated title should not end with a space")
	}
	// Short titles are returned untouched.
	short := DeriveTitle("Fix the bug")
	if short != "Fix the bug" {
		t.Errorf("short title = %q, want unchanged", short)
	}
}

func TestDeriveTitle_EmptyInput(t *testing.T) {
	if got := DeriveTitle("   "); got != "Untitled task" {
		t.Errorf("DeriveTitle(blank) = %q, want Untitled task", got)
	}
}

// --- InferRepositories ---

func TestInferRepositories_TechnologyKeyword(t *testing.T) {
	got := InferRepositories("Add dark mode to the dashboard", DefaultRepoRules())
	want := []string{"loqa-commander"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InferRepositories = %v, want %v", got, want)
	}
}

func TestInferRepositories_ExactNameMatch(t *testing.T) {
	got := InferRepositories("update loqa-proto message definitions", DefaultRepoRules())
	want := []string{"loqa-proto"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InferRepositories = %v, want %v", got, want)
	}
}

func TestInferRepositories_ExactMatchSuppressesHint(t *testing.T) {
	// "loqa-commander" matches by name; the "dashboard" hint must not
	// add it a second time.
	got := InferRepositories("restyle the loqa-commander dashboard", DefaultRepoRules())
	want := []string{"loqa-commander"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InferRepositories = %v, want %v", got, want)
	}
}

func TestInferRepositories_MultipleMatches(t *testing.T) {
	got := InferRepositories("wire the dashboard to the hub api", DefaultRepoRules())
	want := []string{"loqa-hub", "loqa-commander"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InferRepositories = %v, want %v", got, want)
	}
}

func TestInferRepositories_NoMatchReturnsNil(t *testing.T) {
	if got := InferRepositories("improve error messages", DefaultRepoRules()); got != nil {
		t.Errorf("InferRepositories = %v, want nil", got)
	}
}

func TestInferRepositories_WordBoundary(t *testing.T) {
	// "github" must not match the "hub" hint.
	if got := InferRepositories("push the branch to github", DefaultRepoRules()); got != nil {
		t.Errorf("InferRepositories = %v, want nil (no word-boundary match)", got)
	}
}

// --- ClassifyComplexity ---

func TestClassifyComplexity(t *testing.T) {
	tests := []struct {
		text string
		want Complexity
	}{
		{"this is very complex, multiple weeks, architectural", ComplexityHigh},
		{"requires breaking changes to the proto", ComplexityHigh},
		{"a simple one-liner", ComplexityLow},
		{"quick fix, should be easy", ComplexityLow},
		{"Add dark mode to the dashboard", ComplexityMedium},
		{"", ComplexityMedium},
		// High-priority keywords win over low ones.
		{"architectural change, but each step is simple", ComplexityHigh},
	}
	for _, tt := range tests {
		if got := ClassifyComplexity(tt.text); got != tt.want {
			t.Errorf("ClassifyComplexity(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestValidateComplexity(t *testing.T) {
	if err := ValidateComplexity(ComplexityHigh); err != nil {
		t.Errorf("ValidateComplexity(high) = %v, want nil", err)
	}
	if err := ValidateComplexity("huge"); err == nil {
		t.Error("ValidateComplexity(huge) should fail")
	}
}
