// Package registry stores free-form properties of CMS records in SQLite,
// keyed by record id and property name.
package registry

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a property is not set.
var ErrNotFound = errors.New("registry: not found")

// Entry is a property value of a record.
type Entry struct {
	TargetID int64
	Name     string
	Value    string
}

// Store wraps a SQLite database holding registry entries.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS registry (
    target_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    value TEXT NOT NULL,
    PRIMARY KEY (target_id, name)
);
`)
	return err
}

// Set stores value as the name property of targetID.
func (s *Store) Set(ctx context.Context, targetID int64, name, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO registry (target_id, name, value) VALUES (?, ?, ?)`,
		targetID, name, value)
	return err
}

// Get returns the name property of targetID.
func (s *Store) Get(ctx context.Context, targetID int64, name string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM registry WHERE target_id = ? AND name = ?`, targetID, name).
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return value, err
}

// Delete removes the name property of targetID.
func (s *Store) Delete(ctx context.Context, targetID int64, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM registry WHERE target_id = ? AND name = ?`, targetID, name)
	return err
}

// maxFindIDs bounds the ids bound by a single Find query, well below
// SQLite's bound variable limit.
const maxFindIDs = 500

// Find returns the entries whose target is one of targetIDs and whose name
// is one of names, ordered by target then name.
func (s *Store) Find(ctx context.Context, targetIDs []int64, names []string) ([]Entry, error) {
	if len(targetIDs) == 0 || len(names) == 0 {
		return nil, nil
	}

	ids := slices.Clone(targetIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	var entries []Entry
	for len(ids) > 0 {
		n := min(len(ids), maxFindIDs)
		chunk, err := s.find(ctx, ids[:n], names)
		if err != nil {
			return nil, err
		}
		entries = append(entries, chunk...)
		ids = ids[n:]
	}
	return entries, nil
}

func (s *Store) find(ctx context.Context, targetIDs []int64, names []string) ([]Entry, error) {
	args := make([]any, 0, len(targetIDs)+len(names))
	for _, id := range targetIDs {
		args = append(args, id)
	}
	for _, n := range names {
		args = append(args, n)
	}
	query := `SELECT target_id, name, value FROM registry WHERE target_id IN (` + placeholders(len(targetIDs)) +
		`) AND name IN (` + placeholders(len(names)) + `) ORDER BY target_id, name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.TargetID, &e.Name, &e.Value); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
