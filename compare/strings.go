package compare

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"valuematch/extract"
	"valuematch/internal/fuzz"
)

// String similarity methods.
const (
	MethodUWRatio        = "uwratio"
	MethodPartialRatio   = "partial_ratio"
	MethodTokenSortRatio = "token_sort_ratio"
	MethodTokenSetRatio  = "token_set_ratio"
	MethodRatio          = "ratio"
)

var scorers = map[string]func(a, b string) int{
	MethodUWRatio:        fuzz.UWRatio,
	MethodPartialRatio:   fuzz.PartialRatio,
	MethodTokenSortRatio: fuzz.TokenSortRatio,
	MethodTokenSetRatio:  fuzz.TokenSetRatio,
	MethodRatio:          fuzz.Ratio,
}

// Methods returns the names of the string similarity methods, sorted.
func Methods() []string {
	names := make([]string, 0, len(scorers))
	for name := range scorers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func scorer(method string) (func(a, b string) int, error) {
	f, ok := scorers[method]
	if !ok {
		return nil, fmt.Errorf("%w %q; use available: %s", ErrUnknownMethod, method, strings.Join(Methods(), ", "))
	}

	return f, nil
}

// Strings reports whether the similarity score of a and b on a 0-100 scale
// is at least 100 minus the tolerance.
//
// Without an explicit tolerance the str_number fallback applies when either
// string holds a digit and the string fallback otherwise. Strings without
// digits also match when one abbreviates the other.
//
//	Strings("Beatles", "The Beatles", WithTolerance(10)) // true
func (c *Comparator) Strings(a, b string, opts ...Option) (bool, error) {
	s := c.settings(opts)

	digits := extract.HasDigit(a) || extract.HasDigit(b)

	fallback := SlotString
	if digits {
		fallback = SlotStrNumber
	}

	tol, err := c.tolerance(s, percentage, fallback)
	if err != nil {
		return false, err
	}

	score, err := scorer(s.method)
	if err != nil {
		return false, err
	}

	if !digits && IsAbbreviation(a, b) {
		return true, nil
	}

	return float64(score(a, b)) >= 100-tol, nil
}

var abbreviationSkip = []string{"a", "an", "and", "of", "the"}

// IsAbbreviation reports whether the shorter of a and b spells the initials
// of the words of the longer one, ignoring case and the words a, an, and,
// of and the. The longer string needs at least two words.
//
//	IsAbbreviation("Federal Bureau of Investigation", "FBI") // true
func IsAbbreviation(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	abbr, name := a, b
	if utf8.RuneCountInString(abbr) > utf8.RuneCountInString(name) {
		abbr, name = name, abbr
	}

	words := strings.Fields(name)
	if len(words) < 2 {
		return false
	}

	var initials strings.Builder

	for _, w := range words {
		if slices.Contains(abbreviationSkip, w) {
			continue
		}

		r, _ := utf8.DecodeRuneInString(w)
		initials.WriteRune(r)
	}

	return abbr == initials.String()
}
