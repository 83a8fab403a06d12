package scanner

import (
	"math/big"
	"sync"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/keyrange"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

// scanState owns the live cursor and range. Every read hands out a copy and
// every write replaces the whole snapshot under the lock.
type scanState struct {
	mu     sync.Mutex
	params model.ScanParams
}

func newScanState(params model.ScanParams) *scanState {
	return &scanState{params: params.Clone()}
}

func (s *scanState) Snapshot() model.ScanParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.Clone()
}

// TakeForeground computes the batch at the cursor and advances the cursor
// past it in one step.
func (s *scanState) TakeForeground() (model.ScanParams, keyrange.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.params.Clone()
	batch := keyrange.ClampedBatch(snapshot)
	if !batch.Empty() {
		s.params.Cursor = new(big.Int).Set(batch.NextCursor)
	}
	return snapshot, batch
}

// SetCursor moves the cursor, clamped into the current range.
func (s *scanState) SetCursor(cursor *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Cursor = keyrange.RangeOf(s.params).Clamp(cursor)
}

// Rescale swaps the range and remaps the cursor.
func (s *scanState) Rescale(next keyrange.Range, retain bool) model.ScanParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = keyrange.Rescale(s.params, next, retain)
	return s.params.Clone()
}
