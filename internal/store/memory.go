// internal/store/memory.go
package store

import (
	"context"
	"sync"

	"github.com/tidraft/tidraft/internal/models"
)

// MemoryStore keeps rooms in a process-local map. It is the default backend
// for tests and single-node deployments.
type MemoryStore struct {
	mu    sync.Mutex // Protects access to the rooms map.
	rooms map[string]*models.Room
}

// NewMemoryStore initializes and returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: make(map[string]*models.Room),
	}
}

// Get returns a deep copy of the stored room, so callers can stage changes
// without mutating shared state before Put.
func (s *MemoryStore) Get(ctx context.Context, code string) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[code]
	if !ok {
		return nil, ErrNotFound
	}
	return r.Clone(), nil
}

// Put stores a deep copy of room under code, replacing any previous value.
func (s *MemoryStore) Put(ctx context.Context, code string, room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[code] = room.Clone()
	return nil
}

// Exists reports whether code is taken.
func (s *MemoryStore) Exists(ctx context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rooms[code]
	return ok, nil
}
