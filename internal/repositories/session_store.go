package repositories

import (
	"sync"
)

// SessionStore is a per-session key-value store. Each session persists two
// logical records, the serialized cart and the serialized logged-in user,
// under distinct keys. Values are opaque bytes; there is no versioning or
// migration scheme.
type SessionStore interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// MemorySessionStore is an in-memory implementation of SessionStore.
type MemorySessionStore struct {
	values map[string][]byte
	mu     sync.RWMutex
}

// NewMemorySessionStore creates a new instance of MemorySessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		values: make(map[string][]byte),
	}
}

// Get returns the value stored under key, if any.
func (s *MemorySessionStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

// Put stores value under key, replacing any prior value.
func (s *MemorySessionStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.values[key] = copied
	return nil
}

// Delete removes the value stored under key. Deleting an absent key is not
// an error.
func (s *MemorySessionStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
