package prefs

import "sync"

// MemoryKV is an in-process KV, used by tests and dry runs.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryKV returns an empty store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get returns the value for key.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// CopyKV copies every persisted key of src into a new MemoryKV, so dry
// runs can read real preferences without writing them back.
func CopyKV(src KV) (*MemoryKV, error) {
	out := NewMemoryKV()
	for _, key := range []string{KeyFilters, KeyFavorites, KeyDarkMode} {
		v, ok, err := src.Get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			out.data[key] = v
		}
	}
	return out, nil
}
