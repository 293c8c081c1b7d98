package interview

import "testing"

func TestSessionContext_FocusLifecycle(t *testing.T) {
	s := NewSessionContext()
	if s.IsActive() {
		t.Error("new session context reports active")
	}

	s.SetActive("iv-1", "What specific problem does this solve?")
	if !s.IsActive() || s.ActiveID() != "iv-1" {
		t.Errorf("active = %v id = %q", s.IsActive(), s.ActiveID())
	}
	if s.LastQuestion() == "" {
		t.Error("pending question not recorded")
	}

	s.UpdateLastQuestion("What does done look like?")
	if s.LastQuestion() != "What does done look like?" {
		t.Errorf("last question = %q", s.LastQuestion())
	}

	s.Clear()
	if s.IsActive() || s.ActiveID() != "" || s.LastQuestion() != "" {
		t.Error("Clear left focus state behind")
	}
}

func TestSessionContext_IsLikelyInterviewResponse(t *testing.T) {
	s := NewSessionContext()

	// Nothing routes while no interview is in focus.
	if s.IsLikelyInterviewResponse("The relay should buffer audio locally") {
		t.Error("message routed with no interview in focus")
	}

	s.SetActive("iv-1", "question")
	tests := []struct {
		message string
		want    bool
	}{
		{"The relay should buffer audio locally", true},
		{"none", true},
		{"ok", false},           // too short to be an answer
		{"  hi  ", false},       // still too short after trimming
		{"/task-status", false}, // slash command
		{"status", false},       // bare command word
		{"STATUS", false},
		{"list", false},
		{"status of the migration", true}, // command word inside a sentence is fine
	}
	for _, tt := range tests {
		if got := s.IsLikelyInterviewResponse(tt.message); got != tt.want {
			t.Errorf("IsLikelyInterviewResponse(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}
