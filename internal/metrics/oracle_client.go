package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	oracleRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "oracle_client",
		Name:      "operations_total",
		Help:      "Count of match oracle requests.",
	}, []string{"operation", "status"})
	oracleRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "oracle_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of match oracle requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	oracleConnecting = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "oracle_client",
		Name:      "connecting",
		Help:      "Whether a match check is retrying against an unreachable oracle.",
	})
	oracleMalformedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "oracle_client",
		Name:      "malformed_responses_total",
		Help:      "Count of successful responses with an unreadable body.",
	})
)

// OracleClient tracks metrics for calls to the match oracle.
type OracleClient struct{}

// NewOracleClient constructs a metrics collector for oracle calls.
func NewOracleClient() *OracleClient {
	return &OracleClient{}
}

// Observe records a single request outcome and duration.
func (m OracleClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	oracleRequestsTotal.WithLabelValues(operation, status).Inc()
	oracleRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// SetConnecting mirrors the client's connecting signal.
func (m OracleClient) SetConnecting(connecting bool) {
	oracleConnecting.Set(boolToFloat(connecting))
}

// IncMalformed counts a malformed response.
func (m OracleClient) IncMalformed() {
	oracleMalformedTotal.Inc()
}
