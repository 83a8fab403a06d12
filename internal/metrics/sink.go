package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sinkOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "match_sink",
		Name:      "operations_total",
		Help:      "Count of match sink operations per target.",
	}, []string{"operation", "target", "status"})

	sinkOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "match_sink",
		Name:      "operation_duration_seconds",
		Help:      "Duration of match sink operations per target.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "target", "status"})

	sinkJournalFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "match_sink",
		Name:      "journal_flush_size",
		Help:      "Number of batch journal rows written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
)

// Sink tracks persistence and notification of matches.
type Sink struct{}

// NewSink constructs a Sink metrics collector.
func NewSink() *Sink {
	return &Sink{}
}

// Observe records one save or notify call against a target.
func (m Sink) Observe(operation, target string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if target == "" {
		target = "unknown"
	}
	sinkOperationsTotal.WithLabelValues(operation, target, status).Inc()
	sinkOperationDuration.WithLabelValues(operation, target, status).
		Observe(time.Since(started).Seconds())
}

// ObserveJournalFlush records the size of a batch journal flush.
func (m Sink) ObserveJournalFlush(rows int) {
	sinkJournalFlushSize.Observe(float64(rows))
}
