package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	adminRequestsTotal  *prometheus.CounterVec
	adminLatencySeconds *prometheus.HistogramVec
	adminErrorsTotal    *prometheus.CounterVec

	mockGenerationSeconds prometheus.Histogram
	mockMutationsTotal    *prometheus.CounterVec
	mockSnapshotEntities  *prometheus.GaugeVec
)

// RegisterMetrics initialises the Prometheus collectors used for admin
// observability and the mock-data engine.
func RegisterMetrics() {
	registerOnce.Do(func() {
		adminRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_requests_total",
			Help: "Total number of admin API requests served.",
		}, []string{"method", "route", "status"})

		adminLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_latency_seconds",
			Help:    "Latency distribution for admin API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		adminErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_errors_total",
			Help: "Total number of error responses returned by admin endpoints.",
		}, []string{"method", "route", "status"})

		mockGenerationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mock_generation_seconds",
			Help:    "Time spent generating a full dataset snapshot.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		})

		mockMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mock_mutations_total",
			Help: "Total number of store mutations applied, by operation.",
		}, []string{"op"})

		mockSnapshotEntities = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mock_snapshot_entities",
			Help: "Entity counts in the current dataset snapshot.",
		}, []string{"collection"})

		prometheus.MustRegister(
			adminRequestsTotal, adminLatencySeconds, adminErrorsTotal,
			mockGenerationSeconds, mockMutationsTotal, mockSnapshotEntities,
		)
	})
}

// GenerationSeconds exposes the snapshot generation histogram.
func GenerationSeconds() prometheus.Histogram {
	RegisterMetrics()
	return mockGenerationSeconds
}

// Mutations exposes the per-operation mutation counter.
func Mutations() *prometheus.CounterVec {
	RegisterMetrics()
	return mockMutationsTotal
}

// SnapshotEntities exposes the per-collection entity count gauge.
func SnapshotEntities() *prometheus.GaugeVec {
	RegisterMetrics()
	return mockSnapshotEntities
}

// AdminRequests exposes the counter for admin requests.
func AdminRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return adminRequestsTotal
}

// AdminLatency exposes the latency histogram for admin requests.
func AdminLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return adminLatencySeconds
}

// AdminErrors exposes the counter for admin error responses.
func AdminErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return adminErrorsTotal
}
