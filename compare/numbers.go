package compare

import "math"

// Numbers reports whether |a-b| is within the tolerance.
//
//	Numbers(1, 10, WithTolerance(10)) // true
//	Numbers(1, 10, WithTolerance(5))  // false
func (c *Comparator) Numbers(a, b float64, opts ...Option) (bool, error) {
	tol, err := c.tolerance(c.settings(opts), nonNegative, SlotNumber)
	if err != nil {
		return false, err
	}

	return math.Abs(a-b) <= tol, nil
}
