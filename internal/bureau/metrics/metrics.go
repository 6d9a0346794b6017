package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for bureau report fetching.
type Metrics struct {
	CacheHits      *prometheus.CounterVec
	CacheMisses    *prometheus.CounterVec
	LookupDuration *prometheus.HistogramVec
	LookupErrors   *prometheus.CounterVec
}

// New creates a Metrics instance with all bureau metrics registered.
func New() *Metrics {
	return &Metrics{
		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credlens_bureau_cache_hits_total",
			Help: "Total bureau report cache hits",
		}, []string{"store"}),

		CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credlens_bureau_cache_misses_total",
			Help: "Total bureau report cache misses",
		}, []string{"store"}),

		LookupDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "credlens_bureau_lookup_duration_seconds",
			Help:    "Duration of bureau report lookups by client",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"client"}),

		LookupErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credlens_bureau_lookup_errors_total",
			Help: "Total bureau lookup failures by error category",
		}, []string{"category"}),
	}
}

// RecordCacheHit increments the cache hit counter.
func (m *Metrics) RecordCacheHit(store string) {
	if m != nil {
		m.CacheHits.WithLabelValues(store).Inc()
	}
}

// RecordCacheMiss increments the cache miss counter.
func (m *Metrics) RecordCacheMiss(store string) {
	if m != nil {
		m.CacheMisses.WithLabelValues(store).Inc()
	}
}

// ObserveLookupDuration records the time spent fetching a report.
func (m *Metrics) ObserveLookupDuration(client string, seconds float64) {
	if m != nil {
		m.LookupDuration.WithLabelValues(client).Observe(seconds)
	}
}

// RecordLookupError counts a lookup failure.
func (m *Metrics) RecordLookupError(category string) {
	if m != nil {
		m.LookupErrors.WithLabelValues(category).Inc()
	}
}
