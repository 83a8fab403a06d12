package scanner

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/keyrange"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidQuantity is returned for manual scans of fewer than one step.
var ErrInvalidQuantity = errors.New("manual scan quantity must be positive")

// ManualRequest starts a unit-by-unit scan from the cursor. BOTH counts one
// forward plus one backward key per step.
type ManualRequest struct {
	Direction    model.Direction
	Quantity     int
	RepeatRandom bool
}

// ManualStatus describes the latest manual job.
type ManualStatus struct {
	ID           string          `json:"id"`
	Direction    model.Direction `json:"direction"`
	Quantity     int             `json:"quantity"`
	RepeatRandom bool            `json:"repeatRandom"`
	Processed    uint64          `json:"processed"`
	Rounds       uint64          `json:"rounds"`
	Running      bool            `json:"running"`
	StartedAt    time.Time       `json:"startedAt"`
}

type manualJob struct {
	id        string
	req       ManualRequest
	startedAt time.Time
	cancel    context.CancelFunc
	done      chan struct{}

	processed atomic.Uint64
	rounds    atomic.Uint64
	running   atomic.Bool
}

func (j *manualJob) status() ManualStatus {
	return ManualStatus{
		ID:           j.id,
		Direction:    j.req.Direction,
		Quantity:     j.req.Quantity,
		RepeatRandom: j.req.RepeatRandom,
		Processed:    j.processed.Load(),
		Rounds:       j.rounds.Load(),
		Running:      j.running.Load(),
		StartedAt:    j.startedAt,
	}
}

// StartManual cancels any running manual job, waits for it to stop and
// starts req. It returns the id of the new job.
func (s *Service) StartManual(req ManualRequest) (string, error) {
	if req.Quantity <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidQuantity, req.Quantity)
	}
	direction, err := model.ParseDirection(string(req.Direction))
	if err != nil {
		return "", err
	}
	req.Direction = direction

	s.manualMu.Lock()
	defer s.manualMu.Unlock()

	s.mu.Lock()
	lifetime := s.lifetime
	s.mu.Unlock()
	if lifetime == nil {
		return "", ErrNotRunning
	}
	s.stopManualLocked()

	ctx, cancel := context.WithCancel(lifetime)
	job := &manualJob{
		id:        uuid.NewString(),
		req:       req,
		startedAt: time.Now().UTC(),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	job.running.Store(true)

	s.mu.Lock()
	s.manual = job
	s.mu.Unlock()

	s.metrics.SetManualActive(true)
	go s.runManual(ctx, job, s.state.Snapshot().Cursor)
	return job.id, nil
}

// CancelManual stops the running manual job and waits for it. It reports
// whether a job was running.
func (s *Service) CancelManual() bool {
	s.manualMu.Lock()
	defer s.manualMu.Unlock()
	return s.stopManualLocked()
}

func (s *Service) stopManualLocked() bool {
	s.mu.Lock()
	job := s.manual
	s.mu.Unlock()
	if job == nil {
		return false
	}
	running := job.running.Load()
	job.cancel()
	<-job.done
	return running
}

func (s *Service) manualStatus() *ManualStatus {
	s.mu.Lock()
	job := s.manual
	s.mu.Unlock()
	if job == nil {
		return nil
	}
	st := job.status()
	return &st
}

func (s *Service) runManual(ctx context.Context, job *manualJob, origin *big.Int) {
	logger := s.logger.With(
		zap.String("job", job.id),
		zap.String("direction", string(job.req.Direction)),
		zap.Int("quantity", job.req.Quantity),
	)
	defer func() {
		job.running.Store(false)
		s.metrics.SetManualActive(false)
		close(job.done)
	}()

	logger.Info("manual scan started")
	for {
		r := keyrange.RangeOf(s.state.Snapshot())
		err := s.walk(ctx, job, r, r.Clamp(origin))
		if err != nil || ctx.Err() != nil {
			logger.Info("manual scan cancelled", zap.Uint64("processed", job.processed.Load()))
			return
		}
		if !job.req.RepeatRandom {
			logger.Info("manual scan finished", zap.Uint64("processed", job.processed.Load()))
			return
		}
		if origin, err = randomIndex(r); err != nil {
			logger.Error("pick random origin failed", zap.Error(err))
			return
		}
		job.rounds.Add(1)
		logger.Debug("manual scan restarted", zap.String("origin", model.FormatHex(origin)))
	}
}

// walk scans quantity steps from origin one key at a time. FORWARD stops at
// the range end and BACKWARD at the range start. ctx is checked before
// every key.
func (s *Service) walk(ctx context.Context, job *manualJob, r keyrange.Range, origin *big.Int) error {
	start, end := r.Start(), r.End()
	for step := 0; step < job.req.Quantity; step++ {
		offset := big.NewInt(int64(step))
		var keys []*big.Int

		if job.req.Direction == model.Forward || job.req.Direction == model.Both {
			if k := new(big.Int).Add(origin, offset); k.Cmp(end) < 0 {
				keys = append(keys, k)
			}
		}
		switch job.req.Direction {
		case model.Backward:
			if k := new(big.Int).Sub(origin, offset); k.Cmp(start) >= 0 {
				keys = append(keys, k)
			}
		case model.Both:
			if k := new(big.Int).Sub(origin, offset.Add(offset, one)); k.Cmp(start) >= 0 {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			return nil
		}

		for _, k := range keys {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := s.scan(ctx, model.ScanManual, []*big.Int{k}); err != nil {
				return err
			}
			job.processed.Add(1)
		}
	}
	return nil
}

var one = big.NewInt(1)

// randomIndex returns a uniform index in [start, end).
func randomIndex(r keyrange.Range) (*big.Int, error) {
	offset, err := rand.Int(rand.Reader, r.Width())
	if err != nil {
		return nil, err
	}
	return offset.Add(offset, r.Start()), nil
}
