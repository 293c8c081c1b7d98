package interview

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Default retention windows for the age-based cleanup sweep.
const (
	DefaultActiveRetention = 7 * 24 * time.Hour
	DefaultDraftRetention  = 30 * 24 * time.Hour
)

// Store defines the persistence contract for interview state.
// Abstracted so the engine and tools depend on the interface,
// not on SQLite.
type Store interface {
	// Save upserts the state by id. A second save with the same state
	// is a full overwrite, never a duplicate.
	Save(state *State) error
	// Load returns the state, or (nil, nil) when the id is unknown.
	// A missing interview is an expected outcome, not an error.
	Load(id string) (*State, error)
	// Delete removes the state. Idempotent — no error when absent.
	Delete(id string) error
	// ListActive returns summaries of all active interviews,
	// newest first, annotated with derived age and question index.
	ListActive() ([]Summary, error)
	// ListDrafts returns summaries of all demoted interviews.
	ListDrafts() ([]Summary, error)
	// ResumeDraft promotes a draft back to active and returns the
	// resulting state, or (nil, nil) when the id is not a draft.
	ResumeDraft(id string) (*State, error)
	// Cleanup removes active interviews and drafts past their
	// retention windows. Housekeeping only — never required for
	// correctness.
	Cleanup() error
}

// Summary is a compact listing view of a persisted interview.
type Summary struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Status          Status        `json:"status"`
	CurrentQuestion string        `json:"current_question"`
	QuestionIndex   int           `json:"question_index"`
	QuestionCount   int           `json:"question_count"`
	Age             time.Duration `json:"-"`
	CreatedAt       string        `json:"created_at"`
}

// StoreConfig holds SQLite store configuration.
type StoreConfig struct {
	DataDir         string
	ActiveRetention time.Duration
	DraftRetention  time.Duration
}

// DefaultStoreConfig returns the default store configuration rooted
// at the given data directory.
func DefaultStoreConfig(dataDir string) StoreConfig {
	return StoreConfig{
		DataDir:         dataDir,
		ActiveRetention: DefaultActiveRetention,
		DraftRetention:  DefaultDraftRetention,
	}
}

// SQLiteStore implements Store using SQLite. The full state is persisted
// as a JSON document; status and timestamps are mirrored into columns so
// listings and cleanup are single queries.
type SQLiteStore struct {
	db  *sql.DB
	cfg StoreConfig
}

// NewSQLiteStore opens (creating if needed) the interview database under
// cfg.DataDir and runs migrations.
func NewSQLiteStore(cfg StoreConfig) (*SQLiteStore, error) {
	if cfg.ActiveRetention <= 0 {
		cfg.ActiveRetention = DefaultActiveRetention
	}
	if cfg.DraftRetention <= 0 {
		cfg.DraftRetention = DefaultDraftRetention
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("interview: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "interviews.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("interview: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("interview: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("interview: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS interviews (
			id         TEXT PRIMARY KEY,
			status     TEXT NOT NULL DEFAULT 'active',
			state      TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_interviews_status  ON interviews(status);
		CREATE INDEX IF NOT EXISTS idx_interviews_created ON interviews(created_at DESC);
	`)
	return err
}

// Save upserts the state by id.
func (s *SQLiteStore) Save(state *State) error {
	state.UpdatedAt = timeNow().UTC().Format(time.RFC3339)
	if state.Status == "" {
		state.Status = StatusActive
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling interview %q: %w", state.ID, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO interviews (id, status, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status     = excluded.status,
			state      = excluded.state,
			updated_at = excluded.updated_at`,
		state.ID, string(state.Status), string(data), state.CreatedAt, state.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving interview %q: %w", state.ID, err)
	}
	return nil
}

// Load reads the state by id. Returns (nil, nil) for a missing id.
func (s *SQLiteStore) Load(id string) (*State, error) {
	var data string
	err := s.db.QueryRow(`SELECT state FROM interviews WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading interview %q: %w", id, err)
	}

	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("parsing interview %q: %w", id, err)
	}
	return &state, nil
}

// Delete removes the state. No error when already absent.
func (s *SQLiteStore) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM interviews WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting interview %q: %w", id, err)
	}
	return nil
}

// ListActive returns summaries of all active interviews, newest first.
func (s *SQLiteStore) ListActive() ([]Summary, error) {
	return s.list(StatusActive)
}

// ListDrafts returns summaries of all demoted interviews, newest first.
func (s *SQLiteStore) ListDrafts() ([]Summary, error) {
	return s.list(StatusDraft)
}

func (s *SQLiteStore) list(status Status) ([]Summary, error) {
	rows, err := s.db.Query(
		`SELECT state FROM interviews WHERE status = ? ORDER BY created_at DESC`,
		string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s interviews: %w", status, err)
	}
	defer func() { _ = rows.Close() }()

	now := timeNow().UTC()
	var out []Summary
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var state State
		if err := json.Unmarshal([]byte(data), &state); err != nil {
			continue // skip unreadable records
		}

		summary := Summary{
			ID:              state.ID,
			Title:           state.Info.Title,
			Status:          state.Status,
			CurrentQuestion: state.CurrentQuestion,
			QuestionIndex:   state.QuestionIndex(),
			QuestionCount:   QuestionCount(),
			CreatedAt:       state.CreatedAt,
		}
		if created, err := time.Parse(time.RFC3339, state.CreatedAt); err == nil {
			summary.Age = now.Sub(created)
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

// ResumeDraft promotes a draft back to active. Returns (nil, nil) when
// no draft with the id exists.
func (s *SQLiteStore) ResumeDraft(id string) (*State, error) {
	state, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	if state == nil || state.Status != StatusDraft {
		return nil, nil
	}

	state.Status = StatusActive
	if err := s.Save(state); err != nil {
		return nil, err
	}
	return state, nil
}

// Cleanup removes interviews past their retention windows. Timestamps
// are UTC RFC3339, so cutoff comparison is lexicographic.
func (s *SQLiteStore) Cleanup() error {
	now := timeNow().UTC()
	activeCutoff := now.Add(-s.cfg.ActiveRetention).Format(time.RFC3339)
	draftCutoff := now.Add(-s.cfg.DraftRetention).Format(time.RFC3339)

	if _, err := s.db.Exec(
		`DELETE FROM interviews WHERE status = ? AND created_at < ?`,
		string(StatusActive), activeCutoff,
	); err != nil {
		return fmt.Errorf("cleaning up active interviews: %w", err)
	}
	if _, err := s.db.Exec(
		`DELETE FROM interviews WHERE status = ? AND created_at < ?`,
		string(StatusDraft), draftCutoff,
	); err != nil {
		return fmt.Errorf("cleaning up drafts: %w", err)
	}
	return nil
}
