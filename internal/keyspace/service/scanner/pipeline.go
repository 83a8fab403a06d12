package scanner

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/derivation"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/goodnatureofminers/keyspace-explorer/pkg/safe"
	"github.com/goodnatureofminers/keyspace-explorer/pkg/workerpool"
	"go.uber.org/zap"
)

// scan runs derive, match check and alerting for indices. The returned
// items are checked; the only error is the context error.
func (s *Service) scan(ctx context.Context, kind model.ScanKind, indices []*big.Int) (_ []model.PrivateKeyItem, err error) {
	if len(indices) == 0 {
		return nil, nil
	}
	started := time.Now()
	var addresses, hits int
	defer func() {
		s.metrics.ObserveBatch(kind, err, len(indices), addresses, hits, started)
	}()

	items, err := workerpool.Map(ctx, s.deriveWorkers, indices, func(index *big.Int) model.PrivateKeyItem {
		return model.NewPrivateKeyItem(index, s.deriver.Derive(index))
	})
	if err != nil {
		return nil, err
	}

	normalized := derivation.NormalizeAll(items)
	addresses = len(normalized)
	matches, err := s.checker.CheckMatches(ctx, normalized)
	if err != nil {
		return nil, err
	}
	s.checked.Add(uint64(addresses))

	hits = markChecked(items, matches, s.logger)
	for i := range items {
		if items[i].Hit() {
			s.alert(ctx, items[i])
		}
	}

	s.record(ctx, kind, items, addresses, hits, started)
	return items, nil
}

// markChecked sets the match outcome of every item and returns the number of
// items with at least one matched address.
func markChecked(items []model.PrivateKeyItem, matches map[string]struct{}, logger *zap.Logger) int {
	hits := 0
	for i := range items {
		var matched []model.CryptoAddress
		for _, addr := range items[i].Addresses {
			if _, ok := matches[derivation.Normalize(addr.Address, addr.Token)]; ok {
				matched = append(matched, addr)
			}
		}
		if err := items[i].MarkChecked(matched); err != nil {
			logger.Warn("item already checked", zap.String("hex", items[i].Hex), zap.Error(err))
			continue
		}
		if items[i].Hit() {
			hits++
		}
	}
	return hits
}

// alert saves and announces a hit. A hex is handled once per process; an
// already recorded hex is not announced again. A failed save releases the
// hex so the next scan of it retries persistence.
func (s *Service) alert(ctx context.Context, item model.PrivateKeyItem) {
	if _, loaded := s.claimed.LoadOrStore(item.Hex, struct{}{}); loaded {
		return
	}
	logger := s.logger.With(zap.String("hex", item.Hex), zap.Int("matched", len(item.Matched)))
	logger.Info("match found")

	saved, err := s.sink.AlreadySaved(ctx, item)
	if err != nil {
		logger.Warn("saved lookup failed, alerting anyway", zap.Error(err))
	}
	if saved {
		logger.Debug("match already recorded")
		return
	}
	if err := s.sink.Save(ctx, item); err != nil {
		logger.Error("save match failed", zap.Error(err))
		s.claimed.Delete(item.Hex)
	}
	s.sink.Notify(ctx, item)
}

func (s *Service) record(ctx context.Context, kind model.ScanKind, items []model.PrivateKeyItem, addresses, hits int, started time.Time) {
	if s.journal == nil {
		return
	}
	row, err := newScanBatch(kind, items, addresses, hits, started)
	if err != nil {
		s.logger.Warn("scan batch not journaled", zap.Error(err))
		return
	}
	s.journal.Record(ctx, row)
}

func newScanBatch(kind model.ScanKind, items []model.PrivateKeyItem, addresses, hits int, started time.Time) (model.ScanBatch, error) {
	if len(items) == 0 {
		return model.ScanBatch{}, errors.New("empty batch")
	}
	count, err := safe.Uint32(len(items))
	if err != nil {
		return model.ScanBatch{}, fmt.Errorf("key count: %w", err)
	}
	addrs, err := safe.Uint32(addresses)
	if err != nil {
		return model.ScanBatch{}, fmt.Errorf("address count: %w", err)
	}
	hitCount, err := safe.Uint32(hits)
	if err != nil {
		return model.ScanBatch{}, fmt.Errorf("hit count: %w", err)
	}
	return model.ScanBatch{
		Kind:      kind,
		StartHex:  items[0].Hex,
		Count:     count,
		Addresses: addrs,
		Hits:      hitCount,
		StartedAt: started.UTC(),
		Duration:  time.Since(started),
	}, nil
}
