package model

import (
	"errors"
	"math/big"
	"time"
)

// ErrAlreadyChecked is returned when a key item is marked twice.
var ErrAlreadyChecked = errors.New("private key item already checked")

// PrivateKeyItem is one scalar with its derived addresses. DBHit and Matched
// stay nil until the match check marks the item.
type PrivateKeyItem struct {
	Index     *big.Int        `json:"index"`
	Hex       string          `json:"hex"`
	Addresses []CryptoAddress `json:"addresses"`
	DBHit     *bool           `json:"dbHit,omitempty"`
	Matched   []CryptoAddress `json:"matched,omitempty"`
}

// NewPrivateKeyItem builds an unchecked item for index.
func NewPrivateKeyItem(index *big.Int, addresses []CryptoAddress) PrivateKeyItem {
	return PrivateKeyItem{
		Index:     new(big.Int).Set(index),
		Hex:       FormatHex(index),
		Addresses: addresses,
	}
}

// MarkChecked records the outcome of the match check.
func (p *PrivateKeyItem) MarkChecked(matched []CryptoAddress) error {
	if p.DBHit != nil {
		return ErrAlreadyChecked
	}
	hit := len(matched) > 0
	p.DBHit = &hit
	if hit {
		p.Matched = matched
	} else {
		p.Matched = []CryptoAddress{}
	}
	return nil
}

// Hit reports whether the item was checked and matched.
func (p PrivateKeyItem) Hit() bool {
	return p.DBHit != nil && *p.DBHit
}

// ScanParams is an immutable snapshot of the scan cursor and range.
type ScanParams struct {
	Cursor     *big.Int
	RangeStart *big.Int
	RangeEnd   *big.Int
	BatchSize  int
}

// Clone returns a deep copy of p.
func (p ScanParams) Clone() ScanParams {
	return ScanParams{
		Cursor:     cloneInt(p.Cursor),
		RangeStart: cloneInt(p.RangeStart),
		RangeEnd:   cloneInt(p.RangeEnd),
		BatchSize:  p.BatchSize,
	}
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

// ScanKind identifies which scan mode produced a batch.
type ScanKind string

var (
	ScanForeground ScanKind = "foreground"
	ScanBackground ScanKind = "background"
	ScanManual     ScanKind = "manual"
)

// ScanBatch is a journal row describing one checked batch.
type ScanBatch struct {
	Kind      ScanKind
	StartHex  string
	Count     uint32
	Addresses uint32
	Hits      uint32
	StartedAt time.Time
	Duration  time.Duration
}

// MatchRecord is a match as stored by the remote oracle.
type MatchRecord struct {
	Token   Token
	Variant Variant
	Address string
	Hex     string
}
