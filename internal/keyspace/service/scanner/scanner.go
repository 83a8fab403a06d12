// Package scanner coordinates foreground page scans, background drag scans
// and manual directional scans over one shared cursor.
package scanner

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/keyrange"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNotRunning is returned by operations that need Run to be active.
var ErrNotRunning = errors.New("scanner is not running")

// Config describes the initial scan position.
type Config struct {
	Range keyrange.Range
	// Cursor defaults to the range start.
	Cursor        *big.Int
	BatchSize     int
	DeriveWorkers int
}

// Service is the scan orchestrator.
type Service struct {
	deriver       Deriver
	checker       MatchChecker
	sink          MatchSink
	journal       Journal
	metrics       Metrics
	logger        *zap.Logger
	deriveWorkers int

	state  *scanState
	window *window
	drag   dragQueue

	busy       atomic.Bool
	foreground chan struct{}
	dragSignal chan struct{}

	checked atomic.Uint64
	claimed sync.Map

	manualMu sync.Mutex
	mu       sync.Mutex
	lifetime context.Context
	manual   *manualJob
}

// New validates cfg and builds a Service. journal may be nil.
func New(
	cfg Config,
	deriver Deriver,
	checker MatchChecker,
	sink MatchSink,
	journal Journal,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	if deriver == nil {
		return nil, errors.New("scanner deriver is required")
	}
	if checker == nil {
		return nil, errors.New("scanner match checker is required")
	}
	if sink == nil {
		return nil, errors.New("scanner match sink is required")
	}
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.DeriveWorkers <= 0 {
		cfg.DeriveWorkers = defaultDeriveWorkers
	}
	cursor := cfg.Cursor
	if cursor == nil && cfg.Range != (keyrange.Range{}) {
		cursor = cfg.Range.Start()
	}
	params, err := keyrange.NewParams(cursor, cfg.Range, cfg.BatchSize)
	if err != nil {
		return nil, err
	}

	return &Service{
		deriver:       deriver,
		checker:       checker,
		sink:          sink,
		journal:       journal,
		metrics:       metrics,
		logger:        logger.Named("scanner"),
		deriveWorkers: cfg.DeriveWorkers,
		state:         newScanState(params),
		window:        newWindow(windowPages * cfg.BatchSize),
		foreground:    make(chan struct{}, 1),
		dragSignal:    make(chan struct{}, 1),
	}, nil
}

// Run executes foreground and background scans until ctx ends. Manual jobs
// started while Run is active are cancelled when it returns.
func (s *Service) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.lifetime != nil {
		s.mu.Unlock()
		return errors.New("scanner already running")
	}
	s.lifetime = ctx
	s.mu.Unlock()

	defer func() {
		s.CancelManual()
		s.mu.Lock()
		s.lifetime = nil
		s.mu.Unlock()
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.foregroundLoop(ctx)
	})
	g.Go(func() error {
		return s.dragLoop(ctx)
	})
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Start requests the initial foreground scan at the cursor.
func (s *Service) Start() bool {
	return s.requestForeground("start")
}

// ScanNext requests a foreground scan of the page at the cursor. It returns
// false when a foreground scan is already in flight.
func (s *Service) ScanNext() bool {
	return s.requestForeground("next")
}

// JumpTo moves the cursor to fraction of the range, clears the foreground
// window and scans there. It is a no-op while a foreground scan is running.
func (s *Service) JumpTo(fraction decimal.Decimal) (bool, error) {
	target, err := keyrange.ProgressInRange(keyrange.RangeOf(s.state.Snapshot()), fraction)
	if err != nil {
		return false, err
	}
	if !s.acquire() {
		return false, nil
	}
	s.state.SetCursor(target)
	s.window.reset()
	s.submit("jump")
	return true, nil
}

// UpdateKeyspaceRange replaces the range and requests a scan of the new
// position. The range is applied even when the scan request is rejected
// because another foreground scan is running.
func (s *Service) UpdateKeyspaceRange(start, end *big.Int, retain bool) (bool, error) {
	next, err := keyrange.New(start, end)
	if err != nil {
		return false, err
	}
	return s.applyRange(next, retain), nil
}

// UpdateBitRange replaces the range with [2^minBits, 2^maxBits - 1].
func (s *Service) UpdateBitRange(minBits, maxBits int, retain bool) (bool, error) {
	next, err := keyrange.ForBitLength(minBits, maxBits)
	if err != nil {
		return false, err
	}
	return s.applyRange(next, retain), nil
}

func (s *Service) applyRange(next keyrange.Range, retain bool) bool {
	params := s.state.Rescale(next, retain)
	s.window.reset()
	s.logger.Info("keyspace range updated",
		zap.String("start", model.FormatHex(params.RangeStart)),
		zap.String("end", model.FormatHex(params.RangeEnd)),
		zap.Bool("retain", retain),
	)
	return s.requestForeground("range")
}

// Drag queues a silent background scan at fraction of the range.
func (s *Service) Drag(fraction decimal.Decimal) error {
	if err := keyrange.ValidateFraction(fraction); err != nil {
		return err
	}
	s.metrics.SetDragQueueDepth(s.drag.push(fraction))
	if !s.busy.Load() {
		s.signalDrain()
	}
	return nil
}

// Items returns the foreground window, oldest first.
func (s *Service) Items() []model.PrivateKeyItem {
	return s.window.snapshot()
}

func (s *Service) acquire() bool {
	if !s.busy.CompareAndSwap(false, true) {
		s.metrics.IncForegroundRejected()
		return false
	}
	return true
}

func (s *Service) requestForeground(reason string) bool {
	if !s.acquire() {
		s.logger.Debug("foreground scan already running", zap.String("reason", reason))
		return false
	}
	s.submit(reason)
	return true
}

// submit hands the acquired foreground slot to the loop. The channel has
// room for exactly one request, which the busy flag guarantees.
func (s *Service) submit(reason string) {
	s.logger.Debug("foreground scan requested", zap.String("reason", reason))
	s.foreground <- struct{}{}
}

func (s *Service) foregroundLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.foreground:
			s.runForeground(ctx)
		}
	}
}

func (s *Service) runForeground(ctx context.Context) {
	defer func() {
		s.busy.Store(false)
		s.signalDrain()
	}()

	_, batch := s.state.TakeForeground()
	if batch.Empty() {
		return
	}
	items, err := s.scan(ctx, model.ScanForeground, batch.Indices())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("foreground scan failed", zap.Error(err))
		}
		return
	}
	s.window.push(items)
}

func (s *Service) signalDrain() {
	select {
	case s.dragSignal <- struct{}{}:
	default:
	}
}

func (s *Service) dragLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.dragSignal:
		}
		for !s.busy.Load() {
			positions := s.drag.drainAndClear()
			s.metrics.SetDragQueueDepth(s.drag.len())
			if len(positions) == 0 {
				break
			}
			for _, fraction := range positions {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.scanPosition(ctx, fraction)
			}
		}
	}
}

// scanPosition scans the page at fraction without moving the cursor.
func (s *Service) scanPosition(ctx context.Context, fraction decimal.Decimal) {
	params := s.state.Snapshot()
	cursor, err := keyrange.ProgressInRange(keyrange.RangeOf(params), fraction)
	if err != nil {
		s.logger.Warn("drag position dropped", zap.String("fraction", fraction.String()), zap.Error(err))
		return
	}
	params.Cursor = cursor
	batch := keyrange.ClampedBatch(params)
	if _, err := s.scan(ctx, model.ScanBackground, batch.Indices()); err != nil && ctx.Err() == nil {
		s.logger.Error("background scan failed", zap.Error(err))
	}
}
