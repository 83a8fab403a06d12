package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for unknown direction names.
var ErrInvalidDirection = errors.New("unsupported scan direction")

// Direction selects how a manual scan walks from the cursor.
type Direction string

var (
	Forward  Direction = "FORWARD"
	Backward Direction = "BACKWARD"
	Both     Direction = "BOTH"
)

// ParseDirection parses a direction name case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToUpper(strings.TrimSpace(s))); d {
	case Forward, Backward, Both:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
