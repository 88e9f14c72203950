package configstore

// MemoryStore is an in-memory Store. It is used in tests and as a scratch
// backend; nothing is persisted.
type MemoryStore struct {
	values map[Key]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[Key]string)}
}

// Get returns the value for (section, field) and whether it was set.
func (m *MemoryStore) Get(section, field string) (string, bool, error) {
	v, ok := m.values[Key{section, field}]
	return v, ok, nil
}

// Set stores value, replacing any previous one.
func (m *MemoryStore) Set(section, field, value string) error {
	m.values[Key{section, field}] = value
	return nil
}

// InitializeDefaults stores each default whose key is absent.
func (m *MemoryStore) InitializeDefaults(defaults map[Key]string) error {
	for k, v := range defaults {
		if _, ok := m.values[k]; !ok {
			m.values[k] = v
		}
	}
	return nil
}

// Len returns the number of stored values.
func (m *MemoryStore) Len() int {
	return len(m.values)
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
