package compare

import (
	"fmt"
	"math"

	"valuematch/internal/common"
)

// interval is the range an explicit tolerance must fall in. Without an
// upper bound only the lower one is enforced.
type interval struct {
	lower   float64
	upper   float64
	bounded bool
}

var (
	nonNegative = interval{lower: 0}
	percentage  = interval{lower: 0, upper: 100, bounded: true}
)

func (iv interval) check(v float64) error {
	switch {
	case math.IsNaN(v):
		return fmt.Errorf("%w: tolerance is NaN", ErrToleranceOutOfRange)
	case iv.bounded && !common.IsInRange(iv.lower, v, iv.upper):
		return fmt.Errorf("%w: tolerance must be in between %v and %v, got %v", ErrToleranceOutOfRange, iv.lower, iv.upper, v)
	case v < iv.lower:
		return fmt.Errorf("%w: tolerance must be at least %v, got %v", ErrToleranceOutOfRange, iv.lower, v)
	default:
		return nil
	}
}
