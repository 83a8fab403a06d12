// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
	"math/big"
)

// Integer is the set of integer kinds accepted by the converters.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	switch value := any(v).(type) {
	case int:
		return fromSigned(int64(value), v)
	case int32:
		return fromSigned(int64(value), v)
	case int64:
		return fromSigned(value, v)
	case uint:
		return uint64(value), nil
	case uint32:
		return uint64(value), nil
	case uint64:
		return value, nil
	default:
		if v < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(v), nil
	}
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := Uint64(v)
	if err != nil || u > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(u), nil
}

// Int converts a big integer to int when it fits.
func Int(v *big.Int) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value")
	}
	if !v.IsInt64() || v.Int64() > math.MaxInt || v.Int64() < math.MinInt {
		return 0, fmt.Errorf("value %s out of int range", v)
	}
	return int(v.Int64()), nil
}

func fromSigned[T Integer](value int64, v T) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(value), nil
}
