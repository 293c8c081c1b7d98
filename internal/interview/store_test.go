package interview

import (
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(DefaultStoreConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testState(id string, status Status, createdAt time.Time) *State {
	ts := createdAt.UTC().Format(time.RFC3339)
	return &State{
		ID:              id,
		OriginalInput:   "seed text for " + id,
		QuestionsAsked:  []string{"first question"},
		CurrentQuestion: "first question",
		CurrentID:       QScope,
		Info:            Info{Title: "Task " + id},
		Status:          status,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	state := testState("iv-1", StatusActive, now)
	state.Info.Repositories = []string{"loqa-hub"}
	state.AnswersReceived = []Answer{{Question: "first question", Answer: "an answer"}}

	if err := store.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load("iv-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil for a saved interview")
	}
	if got.OriginalInput != state.OriginalInput {
		t.Errorf("OriginalInput = %q, want %q", got.OriginalInput, state.OriginalInput)
	}
	if len(got.AnswersReceived) != 1 || got.AnswersReceived[0].Answer != "an answer" {
		t.Errorf("AnswersReceived = %+v", got.AnswersReceived)
	}
	if len(got.Info.Repositories) != 1 || got.Info.Repositories[0] != "loqa-hub" {
		t.Errorf("Repositories = %v", got.Info.Repositories)
	}
}

func TestStore_SaveIsUpsert(t *testing.T) {
	store := newTestStore(t)
	state := testState("iv-1", StatusActive, time.Now())

	if err := store.Save(state); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	state.Info.Title = "Renamed task"
	if err := store.Save(state); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	active, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("got %d active interviews after double save, want 1", len(active))
	}
	if active[0].Title != "Renamed task" {
		t.Errorf("title = %q, want Renamed task", active[0].Title)
	}
}

func TestStore_LoadMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)
	got, err := store.Load("no-such-id")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("Load(missing) = %+v, want nil", got)
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	state := testState("iv-1", StatusActive, time.Now())
	if err := store.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Delete("iv-1"); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := store.Delete("iv-1"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	got, err := store.Load("iv-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Error("interview still loadable after Delete")
	}
}

func TestStore_ListSeparatesStatuses(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	if err := store.Save(testState("older", StatusActive, now.Add(-2*time.Hour))); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(testState("newer", StatusActive, now.Add(-time.Hour))); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(testState("parked", StatusDraft, now)); err != nil {
		t.Fatal(err)
	}

	active, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("got %d active, want 2", len(active))
	}
	if active[0].ID != "newer" || active[1].ID != "older" {
		t.Errorf("active order = %s, %s, want newest first", active[0].ID, active[1].ID)
	}
	if active[0].Age < time.Hour || active[0].Age > 2*time.Hour {
		t.Errorf("age = %s, want about 1h", active[0].Age)
	}

	drafts, err := store.ListDrafts()
	if err != nil {
		t.Fatalf("ListDrafts: %v", err)
	}
	if len(drafts) != 1 || drafts[0].ID != "parked" {
		t.Errorf("drafts = %+v, want just parked", drafts)
	}
}

func TestStore_ResumeDraft(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(testState("parked", StatusDraft, time.Now())); err != nil {
		t.Fatal(err)
	}

	got, err := store.ResumeDraft("parked")
	if err != nil {
		t.Fatalf("ResumeDraft: %v", err)
	}
	if got == nil {
		t.Fatal("ResumeDraft returned nil for an existing draft")
	}
	if got.Status != StatusActive {
		t.Errorf("status = %s, want active", got.Status)
	}

	reloaded, err := store.Load("parked")
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Status != StatusActive {
		t.Errorf("persisted status = %s, want active", reloaded.Status)
	}
}

func TestStore_ResumeDraftRejectsNonDrafts(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(testState("running", StatusActive, time.Now())); err != nil {
		t.Fatal(err)
	}

	got, err := store.ResumeDraft("running")
	if err != nil {
		t.Fatalf("ResumeDraft(active): %v", err)
	}
	if got != nil {
		t.Error("ResumeDraft promoted an already-active interview")
	}

	got, err = store.ResumeDraft("no-such-id")
	if err != nil {
		t.Fatalf("ResumeDraft(missing): %v", err)
	}
	if got != nil {
		t.Error("ResumeDraft returned state for a missing id")
	}
}

func TestStore_CleanupRespectsRetentionWindows(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	// Ten days old: past the active window, inside the draft window.
	stale := now.Add(-10 * 24 * time.Hour)
	if err := store.Save(testState("stale-active", StatusActive, stale)); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(testState("stale-draft", StatusDraft, stale)); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(testState("fresh-active", StatusActive, now)); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(testState("ancient-draft", StatusDraft, now.Add(-40*24*time.Hour))); err != nil {
		t.Fatal(err)
	}

	if err := store.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	check := func(id string, wantKept bool) {
		t.Helper()
		got, err := store.Load(id)
		if err != nil {
			t.Fatalf("Load(%s): %v", id, err)
		}
		if (got != nil) != wantKept {
			t.Errorf("%s kept = %v, want %v", id, got != nil, wantKept)
		}
	}
	check("stale-active", false)
	check("stale-draft", true)
	check("fresh-active", true)
	check("ancient-draft", false)
}
