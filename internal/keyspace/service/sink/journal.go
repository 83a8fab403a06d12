package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/goodnatureofminers/keyspace-explorer/pkg/batcher"
	"go.uber.org/zap"
)

// Journal buffers scan batch rows and writes them in bulk.
type Journal struct {
	batcher *batcher.Batcher[model.ScanBatch]
	logger  *zap.Logger
}

func NewJournal(store JournalStore, metrics Metrics, cfg batcher.Config, logger *zap.Logger) (*Journal, error) {
	if store == nil {
		return nil, errors.New("journal store is required")
	}
	if metrics == nil {
		return nil, errors.New("sink metrics is required")
	}
	logger = logger.Named("journal")
	flush := func(ctx context.Context, rows []model.ScanBatch) error {
		if err := store.InsertScanBatches(ctx, rows); err != nil {
			return fmt.Errorf("insert scan batches: %w", err)
		}
		metrics.ObserveJournalFlush(len(rows))
		return nil
	}
	return &Journal{
		batcher: batcher.New(logger, flush, cfg),
		logger:  logger,
	}, nil
}

// Start runs the flush loop until Stop or ctx ends.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop flushes pending rows.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// Record queues one row. Rows recorded after Stop are dropped.
func (j *Journal) Record(ctx context.Context, batch model.ScanBatch) {
	if err := j.batcher.Add(ctx, batch); err != nil {
		j.logger.Debug("scan batch not journaled", zap.Error(err))
	}
}
