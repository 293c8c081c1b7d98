package records

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileProvider_CreateFromTemplate(t *testing.T) {
	workspace := t.TempDir()
	p := NewFileProvider(workspace)

	rec, err := p.ForRepo("loqa-hub").CreateFromTemplate(CreateOptions{
		Title:    "Fix login timeout",
		Template: "general",
		Priority: "medium",
		Type:     "task",
	})
	if err != nil {
		t.Fatalf("CreateFromTemplate: %v", err)
	}
	if rec.ID != "TASK-001" {
		t.Errorf("id = %s, want TASK-001", rec.ID)
	}

	wantPath := filepath.Join(workspace, "loqa-hub", BacklogDir, TasksDir, "TASK-001-fix-login-timeout.md")
	if rec.FilePath != wantPath {
		t.Errorf("path = %s, want %s", rec.FilePath, wantPath)
	}

	content, err := os.ReadFile(rec.FilePath)
	if err != nil {
		t.Fatalf("reading task file: %v", err)
	}
	for _, want := range []string{
		"# TASK-001: Fix login timeout",
		"**Type:** task",
		"**Priority:** medium",
		"**Repository:** loqa-hub",
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("task file missing %q:\n%s", want, content)
		}
	}
}

func TestFileProvider_SequencePerRepository(t *testing.T) {
	p := NewFileProvider(t.TempDir())
	hub := p.ForRepo("loqa-hub")

	first, err := hub.CreateFromTemplate(CreateOptions{Title: "First"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := hub.CreateFromTemplate(CreateOptions{Title: "Second"})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != "TASK-001" || second.ID != "TASK-002" {
		t.Errorf("ids = %s, %s, want TASK-001, TASK-002", first.ID, second.ID)
	}

	// A different repository starts its own sequence.
	other, err := p.ForRepo("loqa-relay").CreateFromTemplate(CreateOptions{Title: "Elsewhere"})
	if err != nil {
		t.Fatal(err)
	}
	if other.ID != "TASK-001" {
		t.Errorf("other repo id = %s, want TASK-001", other.ID)
	}
}

func TestFileProvider_AppendSection(t *testing.T) {
	p := NewFileProvider(t.TempDir())
	rec, err := p.ForRepo("loqa-hub").CreateFromTemplate(CreateOptions{Title: "Fix it"})
	if err != nil {
		t.Fatal(err)
	}

	if err := p.AppendSection(rec.FilePath, "Additional Context", "- [ ] works"); err != nil {
		t.Fatalf("AppendSection: %v", err)
	}

	content, err := os.ReadFile(rec.FilePath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "\n## Additional Context\n\n- [ ] works\n") {
		t.Errorf("appended section missing:\n%s", content)
	}
}

func TestFileProvider_AppendSectionMissingFile(t *testing.T) {
	p := NewFileProvider(t.TempDir())
	if err := p.AppendSection(filepath.Join(t.TempDir(), "nope.md"), "H", "body"); err == nil {
		t.Error("AppendSection succeeded on a missing file")
	}
}

func TestTaskSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Fix login timeout", "fix-login-timeout"},
		{"Add  spaces -- and_underscores", "add-spaces-and-underscores"},
		{"École & Café!!", "cole-caf"},
		{"???", "untitled-task"},
		{"", "untitled-task"},
	}
	for _, tt := range tests {
		if got := taskSlug(tt.title); got != tt.want {
			t.Errorf("taskSlug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
	if got := taskSlug(strings.Repeat("verylongword ", 10)); len(got) > maxTaskSlugLen {
		t.Errorf("slug length = %d, want <= %d", len(got), maxTaskSlugLen)
	}
}
