package draft

import (
	"errors"
	"sync"
)

// DraftKey is the well-known key the in-progress draft is stored under.
const DraftKey = "draft.text"

// ErrNotFound is returned by Storage.Get when no value exists for the key.
var ErrNotFound = errors.New("draft: not found")

// ErrDraftUnreadable is reported when a stored draft exists but could not be
// read. The stored value is left untouched.
var ErrDraftUnreadable = errors.New("draft: stored draft could not be read")

// Storage is a single-slot key value store for draft text. Implementations
// must be safe for concurrent use.
type Storage interface {
	// Get returns ErrNotFound when the key has no value.
	Get(key string) (string, error)
	Set(key, value string) error
	// Remove deletes the key. Removing a missing key is not an error.
	Remove(key string) error
}

// MemoryStorage keeps drafts in process memory.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Has reports whether a value is stored for key.
func (m *MemoryStorage) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.values[key]
	return ok
}
