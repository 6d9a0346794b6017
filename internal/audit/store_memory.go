package audit

import (
	"context"
	"sync"

	id "credlens/pkg/domain"
)

// MemoryStore keeps events in process memory for tests and local runs.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[id.UserID][]Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: make(map[id.UserID][]Event)}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.UserID] = append(s.events[event.UserID], event)
	return nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID id.UserID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events[userID]...), nil
}
