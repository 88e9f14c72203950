// Package configstore provides the key/value stores that hold user
// preferences. Values are strings addressed by a (section, field) pair.
//
// Open selects between a JSON document on disk and a table in the shared
// SQLite database. MemoryStore backs tests.
package configstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"soundingkit/sndprefs/internal/util"
)

const appDir = "sndprefs"

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Key addresses a single value.
type Key struct {
	Section string
	Field   string
}

// Store is a key/value configuration store.
type Store interface {
	// Get returns the value for (section, field). The boolean is false when
	// the key has never been written.
	Get(section, field string) (string, bool, error)

	// Set writes a single value, replacing any previous one.
	Set(section, field, value string) error

	// InitializeDefaults writes each default whose key is not already
	// present. Existing values are left untouched.
	InitializeDefaults(defaults map[Key]string) error

	// Close releases backend resources.
	Close() error
}

// Backends returns the backend names accepted by Open.
func Backends() []string {
	return []string{BackendFile, BackendSQLite}
}

// DefaultPath returns the default location for a backend's data file.
func DefaultPath(backend string) (string, error) {
	var name string
	switch util.NormalizeKey(backend) {
	case BackendFile:
		name = "preferences.json"
	case BackendSQLite:
		name = "sndprefs.db"
	default:
		return "", fmt.Errorf("configstore: %q: %w", backend, ErrUnknownBackend)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("configstore: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, name), nil
}

// Open opens the named backend. An empty path selects DefaultPath(backend).
func Open(backend, path string) (Store, error) {
	backend = util.NormalizeKey(backend)
	if path == "" {
		var err error
		path, err = DefaultPath(backend)
		if err != nil {
			return nil, err
		}
	}

	switch backend {
	case BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("configstore: %q: %w", backend, ErrUnknownBackend)
	}
}
