package configstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"soundingkit/sndprefs/internal/database"
	"soundingkit/sndprefs/internal/retry"
)

// SQLiteStore is a Store backed by the config_entries table of a local
// SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens the database at path and ensures the
// config_entries table exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("configstore: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS config_entries (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			section    TEXT NOT NULL,
			field      TEXT NOT NULL,
			value      TEXT NOT NULL DEFAULT '',
			updated_at TEXT NOT NULL DEFAULT (datetime('now')),
			UNIQUE(section, field)
		);
	`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("configstore: migration failed: %w", err)
	}
	return nil
}

// Get returns the value for (section, field) and whether a row exists.
func (s *SQLiteStore) Get(section, field string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM config_entries WHERE section = ? AND field = ?`,
		section, field).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("configstore: query failed: %w", err)
	}
	return value, true, nil
}

// Set upserts one value. Writes rejected because another process holds the
// database are retried with backoff.
func (s *SQLiteStore) Set(section, field, value string) error {
	err := retry.Do(context.Background(), retry.DefaultPolicy(), database.IsBusy, func() error {
		_, err := s.db.Exec(`
			INSERT INTO config_entries (section, field, value, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(section, field) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
			section, field, value, time.Now().UTC().Format(time.RFC3339Nano),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("configstore: upsert failed: %w", err)
	}
	return nil
}

// InitializeDefaults inserts the missing defaults in a single transaction,
// retrying the whole transaction while the database is busy.
func (s *SQLiteStore) InitializeDefaults(defaults map[Key]string) error {
	return retry.Do(context.Background(), retry.DefaultPolicy(), database.IsBusy, func() error {
		return s.insertDefaults(defaults)
	})
}

func (s *SQLiteStore) insertDefaults(defaults map[Key]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("configstore: begin failed: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for k, v := range defaults {
		_, err := tx.Exec(`
			INSERT INTO config_entries (section, field, value, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(section, field) DO NOTHING`,
			k.Section, k.Field, v, now,
		)
		if err != nil {
			return fmt.Errorf("configstore: insert default %s.%s failed: %w", k.Section, k.Field, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("configstore: commit failed: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
