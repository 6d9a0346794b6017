package bureau

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/crypto/sha3"

	"credlens/internal/bureau/metrics"
	id "credlens/pkg/domain"
)

// ErrCacheMiss is returned by ReportCache implementations when no fresh
// entry exists for the key.
var ErrCacheMiss = errors.New("bureau: report not in cache")

// ReportCache stores serialized raw reports with a TTL.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedClient decorates a Client with a report cache. Bureau pulls are
// billed per call, so a fresh cached report short-circuits the vendor.
type CachedClient struct {
	next    Client
	cache   ReportCache
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewCachedClient wraps next with the given cache.
func NewCachedClient(next Client, cache ReportCache, ttl time.Duration, m *metrics.Metrics) *CachedClient {
	return &CachedClient{next: next, cache: cache, ttl: ttl, metrics: m}
}

// cacheKey digests the BVN so raw national identifiers never appear as
// cache keys.
func cacheKey(bvn id.BVN) string {
	sum := sha3.Sum256([]byte(bvn.String()))
	return "bureau:report:" + hex.EncodeToString(sum[:])
}

// FetchCreditReport serves from cache when possible, otherwise delegates and
// stores the result. Cache write failures are swallowed: the report is
// already in hand.
func (c *CachedClient) FetchCreditReport(ctx context.Context, bvn id.BVN) (*RawReport, error) {
	key := cacheKey(bvn)

	if raw, err := c.cache.Get(ctx, key); err == nil {
		var report RawReport
		if err := json.Unmarshal(raw, &report); err == nil {
			c.metrics.RecordCacheHit("redis")
			return &report, nil
		}
		// Corrupt entry: fall through to the vendor and overwrite.
	} else if !errors.Is(err, ErrCacheMiss) {
		// Cache outage must not block scoring; fall through.
	}
	c.metrics.RecordCacheMiss("redis")

	report, err := c.next.FetchCreditReport(ctx, bvn)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(report); err == nil {
		_ = c.cache.Set(ctx, key, raw, c.ttl)
	}
	return report, nil
}
