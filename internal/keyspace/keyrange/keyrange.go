// Package keyrange implements the cursor and batch arithmetic over the scalar keyspace.
//
// Indices are arbitrary precision integers; everything that involves a
// fraction of the range is computed with decimals and an explicit rounding
// rule, since a 256-bit wide range cannot be represented by a float.
package keyrange

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/goodnatureofminers/keyspace-explorer/pkg/safe"
	"github.com/shopspring/decimal"
)

// ProgressPrecision is the number of fractional digits of RelativeProgress.
const ProgressPrecision int32 = 18

// MaxBits is the widest bit-length window.
const MaxBits = 256

var (
	// ErrInvalidRange is returned for ranges violating 1 <= start < end <= N-1.
	ErrInvalidRange = errors.New("invalid keyspace range")
	// ErrInvalidBatchSize is returned for non-positive batch sizes.
	ErrInvalidBatchSize = errors.New("batch size must be positive")
	// ErrInvalidFraction is returned for fractions outside [0, 1].
	ErrInvalidFraction = errors.New("fraction must be within [0, 1]")

	one = big.NewInt(1)
)

// Range is an immutable [Start, End] description of the scanned domain.
type Range struct {
	start *big.Int
	end   *big.Int
}

// New validates and builds a range.
func New(start, end *big.Int) (Range, error) {
	if start == nil || end == nil {
		return Range{}, fmt.Errorf("%w: missing bound", ErrInvalidRange)
	}
	if start.Cmp(model.MinKeyspace()) < 0 {
		return Range{}, fmt.Errorf("%w: start %s below minimum", ErrInvalidRange, start)
	}
	if end.Cmp(model.MaxKeyspace()) > 0 {
		return Range{}, fmt.Errorf("%w: end %s above maximum", ErrInvalidRange, end)
	}
	if start.Cmp(end) >= 0 {
		return Range{}, fmt.Errorf("%w: start %s must be below end %s", ErrInvalidRange, start, end)
	}
	return Range{start: new(big.Int).Set(start), end: new(big.Int).Set(end)}, nil
}

// Full returns the whole keyspace [1, N-1].
func Full() Range {
	return Range{start: model.MinKeyspace(), end: model.MaxKeyspace()}
}

// ForBitLength returns the range of scalars between 2^minBits and
// 2^maxBits - 1, clamped to the keyspace.
func ForBitLength(minBits, maxBits int) (Range, error) {
	if minBits < 0 || maxBits > MaxBits || minBits >= maxBits {
		return Range{}, fmt.Errorf("%w: bit window %d-%d", ErrInvalidRange, minBits, maxBits)
	}
	start := new(big.Int).Lsh(one, uint(minBits))
	end := new(big.Int).Sub(new(big.Int).Lsh(one, uint(maxBits)), one)
	if maxKey := model.MaxKeyspace(); end.Cmp(maxKey) > 0 {
		end = maxKey
	}
	return New(start, end)
}

// Start returns a copy of the lower bound.
func (r Range) Start() *big.Int { return new(big.Int).Set(r.start) }

// End returns a copy of the upper bound.
func (r Range) End() *big.Int { return new(big.Int).Set(r.end) }

// Width returns End - Start.
func (r Range) Width() *big.Int { return new(big.Int).Sub(r.end, r.start) }

// Contains reports whether start <= k <= end.
func (r Range) Contains(k *big.Int) bool {
	return k.Cmp(r.start) >= 0 && k.Cmp(r.end) <= 0
}

// Clamp forces k into [start, end].
func (r Range) Clamp(k *big.Int) *big.Int {
	switch {
	case k == nil || k.Cmp(r.start) < 0:
		return r.Start()
	case k.Cmp(r.end) > 0:
		return r.End()
	default:
		return new(big.Int).Set(k)
	}
}

// NewParams builds a snapshot for cursor within r.
func NewParams(cursor *big.Int, r Range, batchSize int) (model.ScanParams, error) {
	if batchSize <= 0 {
		return model.ScanParams{}, fmt.Errorf("%w: %d", ErrInvalidBatchSize, batchSize)
	}
	if r.start == nil {
		return model.ScanParams{}, fmt.Errorf("%w: empty range", ErrInvalidRange)
	}
	return model.ScanParams{
		Cursor:     r.Clamp(cursor),
		RangeStart: r.Start(),
		RangeEnd:   r.End(),
		BatchSize:  batchSize,
	}, nil
}

// Batch is a contiguous run of scalar indices.
type Batch struct {
	Start      *big.Int
	Count      int
	NextCursor *big.Int
}

// Empty reports whether the batch holds no indices.
func (b Batch) Empty() bool { return b.Count <= 0 }

// Indices expands the batch into its scalar indices.
func (b Batch) Indices() []*big.Int {
	if b.Empty() {
		return nil
	}
	out := make([]*big.Int, 0, b.Count)
	for i := 0; i < b.Count; i++ {
		out = append(out, new(big.Int).Add(b.Start, big.NewInt(int64(i))))
	}
	return out
}

// ClampedBatch turns a snapshot into an in-range batch. A cursor at or past
// the end is rewound so that the batch is the last full page of the range.
// A degenerate range yields an empty batch, which is not an error.
func ClampedBatch(p model.ScanParams) Batch {
	start, end := p.RangeStart, p.RangeEnd
	cursor := new(big.Int).Set(p.Cursor)
	size := big.NewInt(int64(p.BatchSize))

	if cursor.Cmp(start) < 0 {
		cursor.Set(start)
	}
	if cursor.Cmp(end) >= 0 {
		// end - 1 - (batchSize - 1)
		cursor.Sub(end, size)
		if cursor.Cmp(start) < 0 {
			cursor.Set(start)
		}
	}

	upper := new(big.Int).Add(cursor, size)
	if upper.Cmp(end) > 0 {
		upper.Set(end)
	}
	count, err := safe.Int(new(big.Int).Sub(upper, cursor))
	if err != nil || p.BatchSize <= 0 || count <= 0 {
		return Batch{Start: cursor, Count: 0, NextCursor: new(big.Int).Set(cursor)}
	}

	return Batch{
		Start:      cursor,
		Count:      count,
		NextCursor: upper,
	}
}

// ProgressInRange maps a fraction of r onto an absolute index, rounding half up.
func ProgressInRange(r Range, fraction decimal.Decimal) (*big.Int, error) {
	if err := ValidateFraction(fraction); err != nil {
		return nil, err
	}
	offset := decimal.NewFromBigInt(r.Width(), 0).Mul(fraction).Round(0)
	return new(big.Int).Add(r.start, offset.BigInt()), nil
}

// RelativeProgress returns (cursor - start) / (end - start) rounded half up
// to ProgressPrecision digits. A zero width range reports zero.
func RelativeProgress(p model.ScanParams) decimal.Decimal {
	width := new(big.Int).Sub(p.RangeEnd, p.RangeStart)
	if width.Sign() <= 0 {
		return decimal.Zero
	}
	done := new(big.Int).Sub(p.Cursor, p.RangeStart)
	if done.Sign() < 0 {
		return decimal.Zero
	}
	progress := decimal.NewFromBigInt(done, 0).DivRound(decimal.NewFromBigInt(width, 0), ProgressPrecision)
	if progress.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return progress
}

// Rescale replaces the range of p. With retain set, the cursor keeps its
// relative position; otherwise it moves to the new start.
func Rescale(p model.ScanParams, next Range, retain bool) model.ScanParams {
	cursor := next.Start()
	if retain {
		offset := decimal.NewFromBigInt(next.Width(), 0).Mul(RelativeProgress(p)).Truncate(0)
		cursor.Add(cursor, offset.BigInt())
	}
	return model.ScanParams{
		Cursor:     next.Clamp(cursor),
		RangeStart: next.Start(),
		RangeEnd:   next.End(),
		BatchSize:  p.BatchSize,
	}
}

// EstimatePage returns floor(width * fraction / batchSize).
func EstimatePage(r Range, fraction decimal.Decimal, batchSize int) (*big.Int, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, batchSize)
	}
	if err := ValidateFraction(fraction); err != nil {
		return nil, err
	}
	keys := decimal.NewFromBigInt(r.Width(), 0).Mul(fraction).Floor().BigInt()
	return keys.Quo(keys, big.NewInt(int64(batchSize))), nil
}

// BitLength returns the number of significant bits of k.
func BitLength(k *big.Int) int {
	if k == nil {
		return 0
	}
	return k.BitLen()
}

// RangeOf rebuilds the range of a snapshot without validation.
func RangeOf(p model.ScanParams) Range {
	return Range{start: new(big.Int).Set(p.RangeStart), end: new(big.Int).Set(p.RangeEnd)}
}

// ValidateFraction rejects fractions outside [0, 1].
func ValidateFraction(f decimal.Decimal) error {
	if f.IsNegative() || f.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s", ErrInvalidFraction, f)
	}
	return nil
}
