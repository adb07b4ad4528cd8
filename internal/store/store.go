// Package store owns the durable task set: a single SQLite table with
// soft-delete semantics. Every mutation is synchronous; callers refresh
// their snapshot with LoadAll after each one.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"taskdeck/internal/task"
)

//go:embed schema.sql
var schemaSQL string

// Store handles SQLite operations for tasks.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath and ensures the
// schema exists. The returned Store owns the connection until Close.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadAll returns every row, soft-deleted ones included. No ORDER BY:
// row order is whatever SQLite yields, insertion order in practice.
func (s *Store) LoadAll() ([]task.Task, error) {
	rows, err := s.db.Query(`SELECT id, title, description, done, deleted FROM tasks`)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		var desc sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &desc, &t.Done, &t.Deleted); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if desc.Valid {
			t.Description = desc.String
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Add inserts a new task with done=false, deleted=false. Both fields
// are trimmed; a whitespace-only description is stored as NULL. An
// empty trimmed title makes Add a silent no-op.
func (s *Store) Add(title, description string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	_, err := s.db.Exec(
		`INSERT INTO tasks (title, description, done, deleted) VALUES (?, ?, 0, 0)`,
		title, nullIfEmpty(description),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// ToggleDone inverts the done flag for id atomically at the database,
// so a stale in-memory copy can never flip a row twice. Unknown ids
// affect zero rows.
func (s *Store) ToggleDone(id int64) error {
	if _, err := s.db.Exec(`UPDATE tasks SET done = NOT done WHERE id = ?`, id); err != nil {
		return fmt.Errorf("toggle task %d: %w", id, err)
	}
	return nil
}

// SoftDelete marks the task as deleted. The row is never physically
// removed; idempotent on already-deleted tasks.
func (s *Store) SoftDelete(id int64) error {
	if _, err := s.db.Exec(`UPDATE tasks SET deleted = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// Restore clears the deleted flag. Idempotent on non-deleted tasks.
func (s *Store) Restore(id int64) error {
	if _, err := s.db.Exec(`UPDATE tasks SET deleted = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("restore task %d: %w", id, err)
	}
	return nil
}

// Update replaces title and description for id, leaving done and
// deleted untouched. Same trimming rules as Add; an empty trimmed
// title makes Update a silent no-op.
func (s *Store) Update(id int64, title, description string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	_, err := s.db.Exec(
		`UPDATE tasks SET title = ?, description = ? WHERE id = ?`,
		title, nullIfEmpty(description), id,
	)
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

func nullIfEmpty(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
