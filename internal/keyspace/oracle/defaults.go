package oracle

import (
	"time"

	"github.com/sony/gobreaker"
)

const (
	defaultBackoff           = 3 * time.Second
	defaultRequestTimeout    = 30 * time.Second
	defaultRequestsPerSecond = 50

	breakerName         = "oracle"
	breakerMaxRequests  = 1
	breakerInterval     = time.Minute
	breakerTimeout      = 10 * time.Second
	breakerTripFailures = 5
)

func newBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: breakerMaxRequests,
		Interval:    breakerInterval,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripFailures
		},
	})
}
