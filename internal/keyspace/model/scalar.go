// Package model defines domain models for keyspace exploration.
package model

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
)

// HexKeyLength is the width of a rendered private key.
const HexKeyLength = 64

var (
	// ErrInvalidHexKey is returned when a string is not a 64 character hex key.
	ErrInvalidHexKey = errors.New("invalid hex key")

	curveOrder  = new(big.Int).Set(btcec.S256().N)
	minKeyspace = big.NewInt(1)
	maxKeyspace = new(big.Int).Sub(curveOrder, big.NewInt(1))
)

// CurveOrder returns the order of the secp256k1 generator.
func CurveOrder() *big.Int {
	return new(big.Int).Set(curveOrder)
}

// MinKeyspace returns the smallest valid scalar.
func MinKeyspace() *big.Int {
	return new(big.Int).Set(minKeyspace)
}

// MaxKeyspace returns the largest valid scalar (CurveOrder - 1).
func MaxKeyspace() *big.Int {
	return new(big.Int).Set(maxKeyspace)
}

// ValidScalar reports whether k lies in [1, CurveOrder-1].
func ValidScalar(k *big.Int) bool {
	if k == nil {
		return false
	}
	return k.Cmp(minKeyspace) >= 0 && k.Cmp(curveOrder) < 0
}

// FormatHex renders k as 64 lowercase hex characters.
func FormatHex(k *big.Int) string {
	return fmt.Sprintf("%064x", k)
}

// ParseHex parses a hex key. Shorter inputs are left padded with zeros;
// anything that does not end up as exactly 64 hex characters is rejected.
func ParseHex(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if s == "" || len(s) > HexKeyLength {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidHexKey, len(s))
	}
	s = strings.Repeat("0", HexKeyLength-len(s)) + s
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidHexKey, c)
		}
	}
	k, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, ErrInvalidHexKey
	}
	return k, nil
}
