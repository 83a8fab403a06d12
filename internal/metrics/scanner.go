// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "keyspace"

var (
	scannerBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "batch_total",
		Help:      "Count of scanned batches.",
	}, []string{"kind", "status"})

	scannerBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "batch_duration_seconds",
		Help:      "Duration of deriving and checking a batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	scannerBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "batch_size",
		Help:      "Number of keys per scanned batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"kind"})

	scannerKeysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "keys_total",
		Help:      "Count of scanned private keys.",
	}, []string{"kind"})

	scannerAddressesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "addresses_checked_total",
		Help:      "Count of derived addresses checked against the oracle.",
	}, []string{"kind"})

	scannerHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "hits_total",
		Help:      "Count of private keys with at least one matched address.",
	}, []string{"kind"})

	scannerRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "foreground_rejected_total",
		Help:      "Count of foreground scan requests rejected while another was in flight.",
	})

	scannerDragQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "drag_queue_depth",
		Help:      "Number of queued background positions.",
	})

	scannerManualActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "manual_active",
		Help:      "Whether a manual scan job is running.",
	})
)

// Scanner tracks metrics for the scan orchestrator.
type Scanner struct{}

// NewScanner constructs a Scanner metrics collector.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ObserveBatch records one derived and checked batch.
func (m Scanner) ObserveBatch(kind model.ScanKind, err error, keys, addresses, hits int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	k := string(kind)
	if k == "" {
		k = "unknown"
	}
	scannerBatchTotal.WithLabelValues(k, status).Inc()
	scannerBatchDuration.WithLabelValues(k, status).Observe(time.Since(started).Seconds())
	scannerBatchSize.WithLabelValues(k).Observe(float64(keys))
	scannerKeysTotal.WithLabelValues(k).Add(float64(keys))
	scannerAddressesTotal.WithLabelValues(k).Add(float64(addresses))
	scannerHitsTotal.WithLabelValues(k).Add(float64(hits))
}

// IncForegroundRejected records a busy-guard rejection.
func (m Scanner) IncForegroundRejected() {
	scannerRejectedTotal.Inc()
}

// SetDragQueueDepth records the drag queue length.
func (m Scanner) SetDragQueueDepth(depth int) {
	scannerDragQueueDepth.Set(float64(depth))
}

// SetManualActive records whether a manual job is running.
func (m Scanner) SetManualActive(active bool) {
	scannerManualActive.Set(boolToFloat(active))
}

func boolToFloat(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
