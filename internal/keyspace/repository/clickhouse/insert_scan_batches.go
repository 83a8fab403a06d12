package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

const insertScanBatchesQuery = `
INSERT INTO scan_batches (
	kind,
	start_hex,
	key_count,
	address_count,
	hits,
	started_at,
	duration_ms
) VALUES`

// InsertScanBatches stores scan journal rows.
func (r *Repository) InsertScanBatches(ctx context.Context, batches []model.ScanBatch) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_scan_batches", err, start)
	}()

	if len(batches) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertScanBatchesQuery)
	if err != nil {
		return fmt.Errorf("prepare scan batches batch: %w", err)
	}

	for _, b := range batches {
		if err = batch.Append(
			string(b.Kind),
			b.StartHex,
			b.Count,
			b.Addresses,
			b.Hits,
			b.StartedAt,
			uint64(b.Duration.Milliseconds()),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append scan batch: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert scan batches: %w", err)
	}
	return nil
}
