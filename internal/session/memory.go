package session

import (
	"context"
	"sync"
)

// MemoryStore keeps session state in process memory. Used in tests and
// when no Redis address is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID, field string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[storeKey(sessionID, field)]
	if !ok {
		return nil, ErrNoValue
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID, field string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[storeKey(sessionID, field)] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, storeKey(sessionID, field))
	return nil
}
