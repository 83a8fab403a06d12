package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

const alreadySavedQuery = `
SELECT count() AS matches
FROM key_matches
WHERE hex = ?`

// AlreadySaved reports whether a match for the item's hex is stored.
func (r *Repository) AlreadySaved(ctx context.Context, item model.PrivateKeyItem) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("already_saved", err, start)
	}()

	var count uint64
	if err = r.conn.QueryRow(ctx, alreadySavedQuery, item.Hex).Scan(&count); err != nil {
		return false, fmt.Errorf("query saved match %s: %w", item.Hex, err)
	}
	return count > 0, nil
}
