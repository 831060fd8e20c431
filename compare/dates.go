package compare

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/ncruces/go-strftime"
)

const secondsPerDay = 24 * 60 * 60

// Dates reports whether two date lists agree pairwise within the tolerance,
// in whole days. Lists of different lengths never agree.
func (c *Comparator) Dates(a, b []time.Time, opts ...Option) (bool, error) {
	tol, err := c.tolerance(c.settings(opts), nonNegative, SlotDate)
	if err != nil {
		return false, err
	}

	if len(a) != len(b) {
		return false, nil
	}

	for i := range a {
		if float64(days(a[i], b[i])) > tol {
			return false, nil
		}
	}

	return true, nil
}

// Date reports whether a and b are within the tolerance, in whole days.
func (c *Comparator) Date(a, b time.Time, opts ...Option) (bool, error) {
	tol, err := c.tolerance(c.settings(opts), nonNegative, SlotDate)
	if err != nil {
		return false, err
	}

	return float64(days(a, b)) <= tol, nil
}

// DateStrings parses a and b with the date pattern and compares them like
// Date.
//
//	DateStrings("12-Feb-2015", "14-Feb-2015", WithTolerance(2)) // true
func (c *Comparator) DateStrings(a, b string, opts ...Option) (bool, error) {
	s := c.settings(opts)

	tol, err := c.tolerance(s, nonNegative, SlotDate)
	if err != nil {
		return false, err
	}

	ta, err := parseDate(s.datePattern, a)
	if err != nil {
		return false, err
	}

	tb, err := parseDate(s.datePattern, b)
	if err != nil {
		return false, err
	}

	return float64(days(ta, tb)) <= tol, nil
}

// DateString parses b with the date pattern and compares it with a like
// Date.
//
//	DateString(time.Date(2015, 2, 12, 0, 0, 0, 0, time.UTC), "14-Feb-2015", WithTolerance(2)) // true
func (c *Comparator) DateString(a time.Time, b string, opts ...Option) (bool, error) {
	s := c.settings(opts)

	tol, err := c.tolerance(s, nonNegative, SlotDate)
	if err != nil {
		return false, err
	}

	tb, err := parseDate(s.datePattern, b)
	if err != nil {
		return false, err
	}

	return float64(days(a, tb)) <= tol, nil
}

func parseDate(pattern, value string) (time.Time, error) {
	var (
		t   time.Time
		err error
	)

	if pattern == "" {
		t, err = dateparse.ParseAny(value)
	} else {
		t, err = strftime.Parse(pattern, value)
	}

	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, value, err)
	}

	return t, nil
}

// days returns the whole number of days between a and b, rounded toward
// zero; a gap under 24 hours is 0 days even across midnight.
func days(a, b time.Time) int64 {
	sec := a.Unix() - b.Unix()
	nsec := a.Nanosecond() - b.Nanosecond()

	if sec < 0 || (sec == 0 && nsec < 0) {
		sec, nsec = -sec, -nsec
	}

	if nsec < 0 {
		sec--
	}

	return sec / secondsPerDay
}
