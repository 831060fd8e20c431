// Package rows matches records made of raw values and reorders the words of
// a value.
package rows

import (
	"fmt"

	"valuematch/block"
	"valuematch/compare"
)

// Matcher compares rows element by element, building a block for each raw
// value.
type Matcher struct {
	comparator *compare.Comparator
	opts       []block.Option
}

// NewMatcher returns a matcher comparing blocks with c and building them with
// opts. A nil c means compare.Default().
func NewMatcher(c *compare.Comparator, opts ...block.Option) *Matcher {
	if c == nil {
		c = compare.Default()
	}

	return &Matcher{comparator: c, opts: opts}
}

// MatchRows reports whether r1 and r2 have the same length and every pair of
// elements builds equal blocks.
//
//	MatchRows([]any{"Well 1", 5, "1 May 2015"}, []any{"Well 01", 5, "2015-05-01"}) // true
func (m *Matcher) MatchRows(r1, r2 []any) (bool, error) {
	if len(r1) != len(r2) {
		return false, nil
	}

	for i := range r1 {
		ok, err := m.matchValues(r1[i], r2[i])
		if err != nil {
			return false, fmt.Errorf("element %d: %w", i, err)
		}

		if !ok {
			return false, nil
		}
	}

	return true, nil
}

func (m *Matcher) matchValues(v1, v2 any) (bool, error) {
	b1, err := block.New(v1, m.opts...)
	if err != nil {
		return false, err
	}

	b2, err := block.New(v2, m.opts...)
	if err != nil {
		return false, err
	}

	return b1.Equal(b2, m.comparator)
}

// Find returns the first of rows matching row.
func (m *Matcher) Find(row []any, rows [][]any) ([]any, bool, error) {
	for _, r := range rows {
		ok, err := m.MatchRows(row, r)
		if err != nil {
			return nil, false, err
		}

		if ok {
			return r, true, nil
		}
	}

	return nil, false, nil
}

// FindAll returns every one of rows matching row, in order.
func (m *Matcher) FindAll(row []any, rows [][]any) ([][]any, error) {
	var found [][]any

	for _, r := range rows {
		ok, err := m.MatchRows(row, r)
		if err != nil {
			return nil, err
		}

		if ok {
			found = append(found, r)
		}
	}

	return found, nil
}

// MatchRows matches r1 and r2 with the default comparator.
func MatchRows(r1, r2 []any) (bool, error) {
	return NewMatcher(nil).MatchRows(r1, r2)
}

// Find finds row in rows with the default comparator.
func Find(row []any, rows [][]any) ([]any, bool, error) {
	return NewMatcher(nil).Find(row, rows)
}

// FindAll finds every match of row in rows with the default comparator.
func FindAll(row []any, rows [][]any) ([][]any, error) {
	return NewMatcher(nil).FindAll(row, rows)
}
