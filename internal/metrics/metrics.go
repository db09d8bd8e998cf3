// Package metrics exports evaluation-bridge outcomes to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-enop/internal/domain"
	"github.com/ahrav/go-enop/internal/evaluation"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "enop"

const subsystem = "evaluation"

var _ evaluation.Recorder = (*EvaluationMetrics)(nil)

// EvaluationMetrics implements evaluation.Recorder with Prometheus collectors.
// Labels: problem (catalog identifier), kind (fault kind).
type EvaluationMetrics struct {
	batches     *prometheus.CounterVec
	batchSize   *prometheus.HistogramVec
	evaluations *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	faults      *prometheus.CounterVec
}

// NewEvaluationMetrics registers the collectors with reg. A nil reg uses the
// default registerer.
func NewEvaluationMetrics(reg prometheus.Registerer, namespace string) *EvaluationMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)

	return &EvaluationMetrics{
		batches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "batches_total",
			Help:      "Candidate batches scored",
		}, []string{"problem"}),
		batchSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "batch_size",
			Help:      "Candidates per scored batch",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"problem"}),
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "candidates_total",
			Help:      "Candidates processed, faulted ones included",
		}, []string{"problem"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "candidate_duration_seconds",
			Help:      "Time to score one candidate",
			Buckets:   []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1},
		}, []string{"problem"}),
		faults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "faults_total",
			Help:      "Candidates scored with the sentinel, by fault kind",
		}, []string{"problem", "kind"}),
	}
}

// RecordBatch counts one batch and its size.
func (m *EvaluationMetrics) RecordBatch(problem string, size int) {
	m.batches.WithLabelValues(problem).Inc()
	m.batchSize.WithLabelValues(problem).Observe(float64(size))
}

// RecordEvaluation counts one candidate and its latency.
func (m *EvaluationMetrics) RecordEvaluation(problem string, elapsed time.Duration) {
	m.evaluations.WithLabelValues(problem).Inc()
	m.latency.WithLabelValues(problem).Observe(elapsed.Seconds())
}

// RecordFault counts one absorbed fault.
func (m *EvaluationMetrics) RecordFault(problem string, kind domain.FaultKind) {
	m.faults.WithLabelValues(problem, string(kind)).Inc()
}

// BatchesCounter returns the batch counter child for problem.
func (m *EvaluationMetrics) BatchesCounter(problem string) prometheus.Counter {
	return m.batches.WithLabelValues(problem)
}

// CandidatesCounter returns the candidate counter child for problem.
func (m *EvaluationMetrics) CandidatesCounter(problem string) prometheus.Counter {
	return m.evaluations.WithLabelValues(problem)
}

// FaultsCounter returns the fault counter child for problem and kind.
func (m *EvaluationMetrics) FaultsCounter(problem string, kind domain.FaultKind) prometheus.Counter {
	return m.faults.WithLabelValues(problem, string(kind))
}
