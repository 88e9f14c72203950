// Package history keeps a log of preference writes in the shared SQLite
// database so users can see what changed and when.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"soundingkit/sndprefs/internal/database"
	"soundingkit/sndprefs/internal/retry"
)

// Repository defines the persistence interface for history entries.
type Repository interface {
	Save(entry *Entry) error
	List(limit int) ([]Entry, error)
	ListByField(field string, limit int) ([]Entry, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the history repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
        CREATE TABLE IF NOT EXISTS pref_history (
            id        INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp TEXT NOT NULL,
            action    TEXT NOT NULL DEFAULT '',
            section   TEXT NOT NULL DEFAULT '',
            field     TEXT NOT NULL,
            value     TEXT NOT NULL DEFAULT '',
            outcome   TEXT NOT NULL DEFAULT '',
            detail    TEXT NOT NULL DEFAULT ''
        );
        CREATE INDEX IF NOT EXISTS idx_pref_history_timestamp ON pref_history(timestamp);
        CREATE INDEX IF NOT EXISTS idx_pref_history_field ON pref_history(field);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("history: migration failed: %w", err)
	}
	return nil
}

// Save inserts a new entry, assigning its ID and, if unset, its timestamp.
func (r *SQLiteRepository) Save(entry *Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	var result sql.Result
	err := retry.Do(context.Background(), retry.DefaultPolicy(), database.IsBusy, func() error {
		var err error
		result, err = r.db.Exec(`
            INSERT INTO pref_history (timestamp, action, section, field, value, outcome, detail)
            VALUES (?, ?, ?, ?, ?, ?, ?)`,
			formatTimestamp(entry.Timestamp), entry.Action, entry.Section,
			entry.Field, entry.Value, entry.Outcome, entry.Detail,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("history: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("history: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns the most recent n entries, newest first.
func (r *SQLiteRepository) List(limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, action, section, field, value, outcome, detail
        FROM pref_history ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ListByField returns the most recent n entries for one field.
func (r *SQLiteRepository) ListByField(field string, limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, action, section, field, value, outcome, detail
        FROM pref_history WHERE field = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, field, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes entries older than the given duration.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	return r.pruneBefore(time.Now().Add(-olderThan))
}

func (r *SQLiteRepository) pruneBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM pref_history WHERE timestamp < ?`, formatTimestamp(cutoff))
	if err != nil {
		return 0, fmt.Errorf("history: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// timestampLayout is fixed-width so stored timestamps sort and compare
// chronologically as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func scanRows(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		var timestampStr string
		err := rows.Scan(
			&entry.ID, &timestampStr, &entry.Action, &entry.Section,
			&entry.Field, &entry.Value, &entry.Outcome, &entry.Detail,
		)
		if err != nil {
			return nil, fmt.Errorf("history: scan failed: %w", err)
		}
		entry.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
