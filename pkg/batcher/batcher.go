// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add after Stop.
var ErrStopped = errors.New("batcher stopped")

// Config tunes flushing.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	// RPS caps flushes per second.
	RPS int
}

const (
	defaultFlushSize     = 100
	defaultFlushInterval = time.Second
	defaultRPS           = 10
)

func (c Config) withDefaults() Config {
	if c.FlushSize <= 0 {
		c.FlushSize = defaultFlushSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = defaultFlushInterval
	}
	if c.RPS <= 0 {
		c.RPS = defaultRPS
	}
	return c
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	cfg           Config
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, cfg Config) *Batcher[T] {
	cfg = cfg.withDefaults()
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, cfg.FlushSize*2),
		cfg:           cfg,
		rl:            ratelimit.New(cfg.RPS),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes buffered items and stops the background loop. It is safe to
// call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		items := make([]T, len(buf))
		copy(items, buf)
		buf = buf[:0]

		if err := b.flushCallback(ctx, items); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(items)), zap.Error(err))
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(items)))
	}

	// drain moves whatever is still queued into a final flush.
	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.cfg.FlushSize {
					flush(context.WithoutCancel(ctx))
				}
			default:
				flush(context.WithoutCancel(ctx))
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
