package scanner

import (
	"sync"

	"github.com/shopspring/decimal"
)

// dragQueue collects drag positions in arrival order. Distinct values are
// never coalesced.
type dragQueue struct {
	mu        sync.Mutex
	positions []decimal.Decimal
}

func (q *dragQueue) push(fraction decimal.Decimal) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.positions = append(q.positions, fraction)
	return len(q.positions)
}

func (q *dragQueue) drainAndClear() []decimal.Decimal {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.positions
	q.positions = nil
	return out
}

func (q *dragQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.positions)
}
