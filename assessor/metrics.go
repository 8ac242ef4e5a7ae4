package assessor

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Assessment metrics
	assessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "password_assessor_assessments_total",
			Help: "Total number of password assessments by resulting label",
		},
		[]string{"label"},
	)

	assessmentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "password_assessor_assessment_duration_seconds",
			Help:    "Duration of password assessments in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
	)

	// Score distribution
	scoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "password_assessor_score_distribution",
			Help:    "Distribution of scores (0-100)",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	entropyDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "password_assessor_entropy_bits",
			Help:    "Distribution of estimated entropy bits",
			Buckets: []float64{0, 10, 20, 30, 40, 60, 80, 100, 128},
		},
	)

	// Penalty metrics
	penaltiesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "password_assessor_penalties_total",
			Help: "Total number of triggered penalties by reason",
		},
		[]string{"reason"},
	)

	// Error metrics
	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "password_assessor_errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"error_type"},
	)

	// Batch metrics
	batchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "password_assessor_batch_size",
			Help:    "Size of assessment batches",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	concurrentAssessments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "password_assessor_concurrent_assessments",
			Help: "Number of batch assessments currently in flight",
		},
	)
)

// MetricsRecorder provides methods to record metrics
type MetricsRecorder struct {
	enabled bool
}

// NewMetricsRecorder creates a new metrics recorder
func NewMetricsRecorder(enabled bool) *MetricsRecorder {
	return &MetricsRecorder{enabled: enabled}
}

// RecordAssessment records the metrics for one completed assessment
func (m *MetricsRecorder) RecordAssessment(result Result, seconds float64) {
	if !m.enabled {
		return
	}
	assessmentsTotal.WithLabelValues(string(result.Label)).Inc()
	assessmentDuration.Observe(seconds)
	scoreDistribution.Observe(float64(result.Score))
	entropyDistribution.Observe(result.EntropyBits)
	for _, reason := range result.Details.PenaltyReasons {
		penaltiesTotal.WithLabelValues(reason).Inc()
	}
}

// RecordError records an error
func (m *MetricsRecorder) RecordError(errorType string) {
	if !m.enabled {
		return
	}
	errorsTotal.WithLabelValues(errorType).Inc()
}

// RecordBatchSize records the size of a batch
func (m *MetricsRecorder) RecordBatchSize(size int) {
	if !m.enabled {
		return
	}
	batchSize.Observe(float64(size))
}

// RecordConcurrentAssessments updates the in-flight assessment count
func (m *MetricsRecorder) RecordConcurrentAssessments(delta float64) {
	if !m.enabled {
		return
	}
	concurrentAssessments.Add(delta)
}

// GetMetricsHandler returns an HTTP handler for Prometheus metrics
func GetMetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RegisterCustomMetrics allows registration of custom metrics
func RegisterCustomMetrics(collector prometheus.Collector) error {
	return prometheus.Register(collector)
}
