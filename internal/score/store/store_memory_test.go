package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credlens/internal/score"
	id "credlens/pkg/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	userID := id.NewUserID()

	t.Run("missing user", func(t *testing.T) {
		_, err := s.FindLatest(ctx, userID)
		assert.ErrorIs(t, err, ErrNotFound)

		history, err := s.ListHistory(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	result := &score.CreditScoreResult{
		Score:        712,
		AccountType:  id.AccountTypeIndividual,
		LastUpdated:  time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		FraudReasons: []string{},
	}
	require.NoError(t, s.SaveResult(ctx, userID, result))

	t.Run("latest result", func(t *testing.T) {
		found, err := s.FindLatest(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, result, found)
	})

	t.Run("upsert replaces", func(t *testing.T) {
		updated := &score.CreditScoreResult{Score: 698, AccountType: id.AccountTypeIndividual}
		require.NoError(t, s.SaveResult(ctx, userID, updated))

		found, err := s.FindLatest(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 698, found.Score)
	})

	t.Run("returned result is a copy", func(t *testing.T) {
		found, err := s.FindLatest(ctx, userID)
		require.NoError(t, err)
		found.Score = 0

		again, err := s.FindLatest(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 698, again.Score)
	})
}

func TestMemoryStoreHistoryOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	userID := id.NewUserID()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	// Append out of chronological order.
	require.NoError(t, s.AppendHistory(ctx, userID, score.HistoryEntry{Score: 720, CreatedAt: base.Add(2 * time.Hour)}))
	require.NoError(t, s.AppendHistory(ctx, userID, score.HistoryEntry{Score: 700, CreatedAt: base}))
	require.NoError(t, s.AppendHistory(ctx, userID, score.HistoryEntry{Score: 710, CreatedAt: base.Add(time.Hour)}))

	history, err := s.ListHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []int{700, 710, 720}, []int{history[0].Score, history[1].Score, history[2].Score})
}

func TestMemoryStoreIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	first, second := id.NewUserID(), id.NewUserID()

	require.NoError(t, s.SaveResult(ctx, first, &score.CreditScoreResult{Score: 750}))

	_, err := s.FindLatest(ctx, second)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	userID := id.NewUserID()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.SaveResult(ctx, userID, &score.CreditScoreResult{Score: 300 + n})
			_ = s.AppendHistory(ctx, userID, score.HistoryEntry{Score: 300 + n})
			_, _ = s.FindLatest(ctx, userID)
			_, _ = s.ListHistory(ctx, userID)
		}(i)
	}
	wg.Wait()

	history, err := s.ListHistory(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, history, 50)
}
