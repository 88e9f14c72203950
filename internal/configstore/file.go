package configstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// document is the on-disk shape: {"section": {"field": "value"}}.
type document map[string]map[string]string

// FileStore is a Store persisted as a JSON document. Every write saves the
// whole document back to disk.
type FileStore struct {
	path string
	doc  document
}

// OpenFile loads the JSON store at path. A missing file yields an empty
// store; the file and its directory are created on the first write.
func OpenFile(path string) (*FileStore, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path, doc: doc}, nil
}

func loadDocument(path string) (document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return document{}, nil
		}
		return nil, fmt.Errorf("configstore: failed to read %s: %w", path, err)
	}

	doc := document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("configstore: failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Path returns the file backing the store.
func (f *FileStore) Path() string {
	return f.path
}

// Get returns the value for (section, field) from the loaded document.
func (f *FileStore) Get(section, field string) (string, bool, error) {
	v, ok := f.doc[section][field]
	return v, ok, nil
}

// Set writes one value and saves the document. If the save fails the
// in-memory document is restored, so Get never reports an unsaved value.
func (f *FileStore) Set(section, field, value string) error {
	prev, had := f.doc[section][field]
	f.put(section, field, value)
	if err := f.save(); err != nil {
		if had {
			f.put(section, field, prev)
		} else {
			f.remove(section, field)
		}
		return err
	}
	return nil
}

// InitializeDefaults adds the missing defaults and saves once. Nothing is
// added when the save fails.
func (f *FileStore) InitializeDefaults(defaults map[Key]string) error {
	var added []Key
	for k, v := range defaults {
		if _, ok := f.doc[k.Section][k.Field]; ok {
			continue
		}
		f.put(k.Section, k.Field, v)
		added = append(added, k)
	}
	if len(added) == 0 {
		return nil
	}
	if err := f.save(); err != nil {
		for _, k := range added {
			f.remove(k.Section, k.Field)
		}
		return err
	}
	return nil
}

// Close is a no-op; every write is already on disk.
func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) put(section, field, value string) {
	fields, ok := f.doc[section]
	if !ok {
		fields = make(map[string]string)
		f.doc[section] = fields
	}
	fields[field] = value
}

func (f *FileStore) remove(section, field string) {
	delete(f.doc[section], field)
	if len(f.doc[section]) == 0 {
		delete(f.doc, section)
	}
}

func (f *FileStore) save() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("configstore: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(f.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("configstore: failed to marshal store: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("configstore: failed to write %s: %w", f.path, err)
	}
	return nil
}
