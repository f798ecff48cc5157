package storage

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps diagrams in a map. When Limit is reached the oldest
// entry is evicted first.
type MemoryStore struct {
	mu    sync.RWMutex
	byID  map[string]Diagram
	order []string
	limit int
	now   func() time.Time
}

// NewMemoryStore creates a store holding at most limit diagrams; limit <= 0
// means unbounded.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{
		byID:  make(map[string]Diagram),
		limit: limit,
		now:   time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, d Diagram) (Diagram, error) {
	d = stamp(d, s.now())
	d.Data = slices.Clone(d.Data)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[d.ID]; !exists {
		s.order = append(s.order, d.ID)
	}
	s.byID[d.ID] = d
	for s.limit > 0 && len(s.order) > s.limit {
		delete(s.byID, s.order[0])
		s.order = s.order[1:]
	}
	return d, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Diagram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.byID[id]
	if !ok {
		return Diagram{}, ErrNotFound
	}
	d.Data = slices.Clone(d.Data)
	return d, nil
}

// Len returns the number of stored diagrams.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func (s *MemoryStore) Close(context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
