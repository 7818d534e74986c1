// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records issued arXiv queries in a local SQLite database.
// Only query metadata is stored: the query string, what kind of call it
// was, how many papers came back, and when. Retrieved paper records are
// never persisted.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded query.
type Entry struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Query       string    `json:"query"`
	ResultCount int       `json:"result_count"`
	Failed      bool      `json:"failed"`
	At          time.Time `json:"at"`
}

// Store manages the history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS queries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		query TEXT NOT NULL,
		result_count INTEGER NOT NULL,
		failed INTEGER NOT NULL DEFAULT 0,
		at TEXT NOT NULL
	)`)
	return err
}

// Record appends one query to the log.
func (s *Store) Record(kind, query string, resultCount int, failed bool) error {
	_, err := s.db.Exec(
		`INSERT INTO queries (kind, query, result_count, failed, at) VALUES (?, ?, ?, ?, ?)`,
		kind, query, resultCount, failed, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording query: %w", err)
	}
	return nil
}

// Recent returns the newest n entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	if n <= 0 {
		n = 20
	}
	rows, err := s.db.Query(
		`SELECT id, kind, query, result_count, failed, at FROM queries ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &e.Kind, &e.Query, &e.ResultCount, &e.Failed, &at); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, at); parseErr == nil {
			e.At = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
