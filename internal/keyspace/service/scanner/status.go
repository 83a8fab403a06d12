package scanner

import (
	"math/big"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/keyrange"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/shopspring/decimal"
)

// Status is a point-in-time view of the orchestrator.
type Status struct {
	Params           model.ScanParams
	Progress         decimal.Decimal
	BitLength        int
	Page             *big.Int
	AddressesChecked uint64
	Connecting       bool
	Busy             bool
	DragQueueDepth   int
	Manual           *ManualStatus
}

func (s *Service) Status() Status {
	params := s.state.Snapshot()
	progress := keyrange.RelativeProgress(params)
	page, err := keyrange.EstimatePage(keyrange.RangeOf(params), progress, params.BatchSize)
	if err != nil {
		page = new(big.Int)
	}
	return Status{
		Params:           params,
		Progress:         progress,
		BitLength:        keyrange.BitLength(params.Cursor),
		Page:             page,
		AddressesChecked: s.checked.Load(),
		Connecting:       s.checker.Connecting(),
		Busy:             s.busy.Load(),
		DragQueueDepth:   s.drag.len(),
		Manual:           s.manualStatus(),
	}
}

// EstimatePage returns the page index at fraction of the current range.
func (s *Service) EstimatePage(fraction decimal.Decimal) (*big.Int, error) {
	params := s.state.Snapshot()
	return keyrange.EstimatePage(keyrange.RangeOf(params), fraction, params.BatchSize)
}
