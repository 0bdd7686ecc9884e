package persistence

import (
	"context"
	"strings"
	"sync"
)

// InMemoryKVStore implements KVStore using an in-memory map. Suitable
// for single-instance deployments and testing.
type InMemoryKVStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewInMemoryKVStore creates a new in-memory key-value store
func NewInMemoryKVStore() *InMemoryKVStore {
	return &InMemoryKVStore{
		entries: make(map[string][]byte),
	}
}

// Get returns the value stored under key, or ErrKeyNotFound
func (s *InMemoryKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.entries[key]
	if !exists {
		return nil, ErrKeyNotFound
	}

	// Copy so callers cannot mutate the stored record.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set replaces the value stored under key
func (s *InMemoryKVStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = stored
	return nil
}

// Remove deletes the key; removing an absent key is not an error
func (s *InMemoryKVStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Keys returns all keys with the given prefix
func (s *InMemoryKVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
