package sink

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

// MemoryStore keeps matches in process. It is used when no database is
// configured.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]model.PrivateKeyItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]model.PrivateKeyItem)}
}

func (s *MemoryStore) AlreadySaved(_ context.Context, item model.PrivateKeyItem) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[item.Hex]
	return ok, nil
}

func (s *MemoryStore) SaveMatch(_ context.Context, item model.PrivateKeyItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.Hex]; !ok {
		s.items[item.Hex] = item
	}
	return nil
}

// Len returns the number of stored matches.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
