package tape

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Store is a SQLite-backed Recorder. Each Store instance owns one
// session row; entries recorded through it are scoped to that session,
// and Entries reads back only the current session's tape.
type Store struct {
	db      *sql.DB
	session string
}

// Open opens (creating if needed) the tape database at path and starts
// a new session.
func Open(path string) (*Store, error) {
	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("tape: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("tape: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, session: uuid.NewString()}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("tape: migration: %w", err)
	}
	if _, err := db.Exec(
		`INSERT INTO sessions (id) VALUES (?)`, s.session,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("tape: create session: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id         TEXT PRIMARY KEY,
			started_at TEXT NOT NULL DEFAULT (datetime('now')),
			ended_at   TEXT
		);

		CREATE TABLE IF NOT EXISTS entries (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			kind       TEXT NOT NULL,
			text       TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			FOREIGN KEY (session_id) REFERENCES sessions(id)
		);

		CREATE INDEX IF NOT EXISTS idx_entries_session ON entries(session_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// Session reports the current session id.
func (s *Store) Session() string { return s.session }

func (s *Store) Record(kind, text string) error {
	if _, err := s.db.Exec(
		`INSERT INTO entries (session_id, kind, text) VALUES (?, ?, ?)`,
		s.session, kind, text,
	); err != nil {
		return fmt.Errorf("tape: record: %w", err)
	}
	return nil
}

func (s *Store) Entries() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT kind, text FROM entries WHERE session_id = ? ORDER BY id`,
		s.session,
	)
	if err != nil {
		return nil, fmt.Errorf("tape: entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		entry := Entry{Seq: len(out) + 1}
		if err := rows.Scan(&entry.Kind, &entry.Text); err != nil {
			return nil, fmt.Errorf("tape: scan entry: %w", err)
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tape: entries: %w", err)
	}
	return out, nil
}

// Close marks the session ended and closes the database.
func (s *Store) Close() error {
	_, err := s.db.Exec(
		`UPDATE sessions SET ended_at = datetime('now') WHERE id = ?`, s.session,
	)
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}
