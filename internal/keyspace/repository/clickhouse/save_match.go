package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/shopspring/decimal"
)

const saveMatchQuery = `
INSERT INTO key_matches (
	hex,
	token,
	variant,
	address,
	balance_token,
	balance_usd,
	matched_at
) VALUES`

// SaveMatch stores one row per matched address of item. Rows are keyed by
// hex, token, variant and address so repeated saves collapse on merge. An
// item without matched addresses is stored as a single hex-only row so
// AlreadySaved still reports it.
func (r *Repository) SaveMatch(ctx context.Context, item model.PrivateKeyItem) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_match", err, start)
	}()

	batch, err := r.conn.PrepareBatch(ctx, saveMatchQuery)
	if err != nil {
		return fmt.Errorf("prepare match batch: %w", err)
	}

	matchedAt := time.Now().UTC()
	rows := item.Matched
	if len(rows) == 0 {
		rows = []model.CryptoAddress{{BalanceToken: decimal.Zero, BalanceUSD: decimal.Zero}}
	}
	for _, addr := range rows {
		if err = batch.Append(
			item.Hex,
			string(addr.Token),
			string(addr.Variant),
			addr.Address,
			addr.BalanceToken,
			addr.BalanceUSD,
			matchedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append match: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert matches: %w", err)
	}
	return nil
}
