// Package sink records and announces confirmed matches.
package sink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/goodnatureofminers/keyspace-explorer/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	targetStore  = "store"
	targetRemote = "remote"
)

// MatchSink stores matches locally, mirrors them to the remote oracle and
// fans notifications out to every notifier.
type MatchSink struct {
	store     Store
	remote    RemoteStore
	notifiers []Notifier
	metrics   Metrics
	logger    *zap.Logger
}

// NewMatchSink builds a MatchSink. remote may be nil.
func NewMatchSink(store Store, remote RemoteStore, notifiers []Notifier, metrics Metrics, logger *zap.Logger) (*MatchSink, error) {
	if store == nil {
		return nil, errors.New("match store is required")
	}
	if metrics == nil {
		return nil, errors.New("sink metrics is required")
	}
	return &MatchSink{
		store:     store,
		remote:    remote,
		notifiers: notifiers,
		metrics:   metrics,
		logger:    logger.Named("match_sink"),
	}, nil
}

// AlreadySaved reports whether item's hex has been recorded before.
func (s *MatchSink) AlreadySaved(ctx context.Context, item model.PrivateKeyItem) (bool, error) {
	started := time.Now()
	saved, err := s.store.AlreadySaved(ctx, item)
	s.metrics.Observe("already_saved", targetStore, err, started)
	if err != nil {
		return false, fmt.Errorf("check saved match: %w", err)
	}
	return saved, nil
}

// Save records item locally and on the oracle. A remote failure is logged
// and does not fail the save.
func (s *MatchSink) Save(ctx context.Context, item model.PrivateKeyItem) error {
	started := time.Now()
	err := s.store.SaveMatch(ctx, item)
	s.metrics.Observe("save", targetStore, err, started)
	if err != nil {
		return fmt.Errorf("save match: %w", err)
	}

	if s.remote == nil {
		return nil
	}
	started = time.Now()
	err = s.remote.StoreMatch(ctx, item)
	s.metrics.Observe("save", targetRemote, err, started)
	if err != nil {
		s.logger.Warn("remote match store failed", zap.String("hex", item.Hex), zap.Error(err))
	}
	return nil
}

// Notify delivers item to all notifiers concurrently. Failures are logged
// per notifier and never stop the others.
func (s *MatchSink) Notify(ctx context.Context, item model.PrivateKeyItem) {
	if len(s.notifiers) == 0 {
		return
	}
	err := workerpool.Process(ctx, len(s.notifiers), s.notifiers, func(ctx context.Context, n Notifier) error {
		started := time.Now()
		err := n.Notify(ctx, item)
		s.metrics.Observe("notify", n.Name(), err, started)
		if err != nil {
			s.logger.Warn("notification failed",
				zap.String("notifier", n.Name()),
				zap.String("hex", item.Hex),
				zap.Error(err),
			)
		}
		return nil
	}, nil)
	if err != nil {
		s.logger.Warn("notification fan-out interrupted", zap.String("hex", item.Hex), zap.Error(err))
	}
}
