// Package thoughts persists free-text thoughts captured during
// development conversations, with full-text search over content
// and tags.
package thoughts

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Thought is a single captured note.
type Thought struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Tags      string `json:"tags,omitempty"`
	Context   string `json:"context,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Store is the thought persistence engine backed by SQLite + FTS5.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the thought database under dataDir
// and runs migrations.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("thoughts: create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "thoughts.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("thoughts: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("thoughts: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("thoughts: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS thoughts (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			content    TEXT NOT NULL,
			tags       TEXT,
			context    TEXT,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_thoughts_created ON thoughts(created_at DESC);

		CREATE VIRTUAL TABLE IF NOT EXISTS thoughts_fts USING fts5(
			content,
			tags,
			content='thoughts',
			content_rowid='id'
		);
	`); err != nil {
		return err
	}

	// FTS triggers (idempotent).
	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='trigger' AND name='thoughts_fts_insert'",
	).Scan(&name)
	if err == sql.ErrNoRows {
		_, err = s.db.Exec(`
			CREATE TRIGGER thoughts_fts_insert AFTER INSERT ON thoughts BEGIN
				INSERT INTO thoughts_fts(rowid, content, tags)
				VALUES (new.id, new.content, new.tags);
			END;

			CREATE TRIGGER thoughts_fts_delete AFTER DELETE ON thoughts BEGIN
				INSERT INTO thoughts_fts(thoughts_fts, rowid, content, tags)
				VALUES ('delete', old.id, old.content, old.tags);
			END;
		`)
	}
	return err
}

// Add saves a thought and returns its id.
func (s *Store) Add(content, tags, context string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO thoughts (content, tags, context) VALUES (?, ?, ?)`,
		content, tags, context,
	)
	if err != nil {
		return 0, fmt.Errorf("thoughts: add: %w", err)
	}
	return res.LastInsertId()
}

// Search runs an FTS5 match over content and tags, best matches first.
func (s *Store) Search(query string, limit int) ([]Thought, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT t.id, t.content, ifnull(t.tags, ''), ifnull(t.context, ''), t.created_at
		FROM thoughts_fts f
		JOIN thoughts t ON t.id = f.rowid
		WHERE thoughts_fts MATCH ?
		ORDER BY rank
		LIMIT ?`,
		ftsQuery(query), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("thoughts: search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanThoughts(rows)
}

// Recent returns the most recently captured thoughts.
func (s *Store) Recent(limit int) ([]Thought, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT id, content, ifnull(tags, ''), ifnull(context, ''), created_at
		FROM thoughts
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("thoughts: recent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanThoughts(rows)
}

func scanThoughts(rows *sql.Rows) ([]Thought, error) {
	var out []Thought
	for rows.Next() {
		var t Thought
		if err := rows.Scan(&t.ID, &t.Content, &t.Tags, &t.Context, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ftsQuery quotes each term so user input with FTS5 operators
// (AND, OR, quotes) cannot break the query.
func ftsQuery(query string) string {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return `""`
	}
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}
