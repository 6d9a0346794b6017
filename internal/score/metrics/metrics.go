package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for score calculations.
type Metrics struct {
	CalculationsTotal *prometheus.CounterVec
	CalculateLatency  *prometheus.HistogramVec
	ScoreDistribution prometheus.Histogram
	FraudFlagsTotal   *prometheus.CounterVec
}

// New creates a Metrics instance with all scoring metrics registered.
func New() *Metrics {
	return &Metrics{
		CalculationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credlens_score_calculations_total",
			Help: "Total score calculations by outcome",
		}, []string{"outcome"}),

		CalculateLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "credlens_score_calculate_duration_seconds",
			Help:    "End-to-end duration of score calculations",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"account_type"}),

		ScoreDistribution: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "credlens_score_published_value",
			Help:    "Distribution of published credit scores",
			Buckets: []float64{300, 400, 500, 580, 650, 700, 750, 800, 850},
		}),

		FraudFlagsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credlens_score_fraud_flags_total",
			Help: "Total fraud reasons raised by rule",
		}, []string{"reason"}),
	}
}

// RecordCalculation counts one calculation by outcome (success or error).
func (m *Metrics) RecordCalculation(outcome string) {
	if m != nil {
		m.CalculationsTotal.WithLabelValues(outcome).Inc()
	}
}

// ObserveCalculateLatency records the time spent on one calculation.
func (m *Metrics) ObserveCalculateLatency(accountType string, seconds float64) {
	if m != nil {
		m.CalculateLatency.WithLabelValues(accountType).Observe(seconds)
	}
}

// ObserveScore records a published score in the distribution histogram.
func (m *Metrics) ObserveScore(score int) {
	if m != nil {
		m.ScoreDistribution.Observe(float64(score))
	}
}

// RecordFraudFlag counts one raised fraud reason.
func (m *Metrics) RecordFraudFlag(reason string) {
	if m != nil {
		m.FraudFlagsTotal.WithLabelValues(reason).Inc()
	}
}
