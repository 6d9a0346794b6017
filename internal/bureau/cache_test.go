package bureau

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "credlens/pkg/domain"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.entries[key]; ok {
		return v, nil
	}
	return nil, ErrCacheMiss
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

type countingClient struct {
	calls int
}

func (c *countingClient) FetchCreditReport(_ context.Context, _ id.BVN) (*RawReport, error) {
	c.calls++
	return mockCleanReport(), nil
}

func TestCachedClient(t *testing.T) {
	ctx := context.Background()

	t.Run("second fetch hits the cache", func(t *testing.T) {
		next := &countingClient{}
		cached := NewCachedClient(next, newFakeCache(), time.Hour, nil)

		first, err := cached.FetchCreditReport(ctx, testBVN)
		require.NoError(t, err)
		second, err := cached.FetchCreditReport(ctx, testBVN)
		require.NoError(t, err)

		assert.Equal(t, 1, next.calls, "vendor should be called once")
		assert.Equal(t, first, second)
	})

	t.Run("distinct BVNs use distinct keys", func(t *testing.T) {
		next := &countingClient{}
		cached := NewCachedClient(next, newFakeCache(), time.Hour, nil)

		_, err := cached.FetchCreditReport(ctx, "22233344455")
		require.NoError(t, err)
		_, err = cached.FetchCreditReport(ctx, "99988877766")
		require.NoError(t, err)

		assert.Equal(t, 2, next.calls)
	})

	t.Run("cache keys never contain the raw BVN", func(t *testing.T) {
		key := cacheKey("22233344455")
		assert.NotContains(t, key, "22233344455")
	})
}
