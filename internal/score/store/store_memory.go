package store

import (
	"context"
	"sort"
	"sync"

	"credlens/internal/score"
	id "credlens/pkg/domain"
)

// MemoryStore keeps results in process memory. Used in tests and local
// development runs without PostgreSQL.
type MemoryStore struct {
	mu      sync.RWMutex
	latest  map[id.UserID]score.CreditScoreResult
	history map[id.UserID][]score.HistoryEntry
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		latest:  make(map[id.UserID]score.CreditScoreResult),
		history: make(map[id.UserID][]score.HistoryEntry),
	}
}

func (s *MemoryStore) SaveResult(_ context.Context, userID id.UserID, result *score.CreditScoreResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[userID] = *result
	return nil
}

func (s *MemoryStore) FindLatest(_ context.Context, userID id.UserID) (*score.CreditScoreResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.latest[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &result, nil
}

func (s *MemoryStore) AppendHistory(_ context.Context, userID id.UserID, entry score.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[userID] = append(s.history[userID], entry)
	return nil
}

func (s *MemoryStore) ListHistory(_ context.Context, userID id.UserID) ([]score.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := append([]score.HistoryEntry{}, s.history[userID]...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}
