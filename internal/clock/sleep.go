// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// Sleeper waits for a duration unless the context ends first.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoSleep returns immediately, reporting only context cancellation. Tests use
// it to drive retry loops without waiting.
func NoSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
