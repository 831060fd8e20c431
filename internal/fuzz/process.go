package fuzz

import (
	"slices"
	"strings"
	"unicode"
)

// FullProcess replaces every rune that is not a letter, a number or an
// underscore with a space, lower-cases the result and trims it. With
// forceASCII, non-ASCII runes are dropped first.
func FullProcess(s string, forceASCII bool) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		switch {
		case forceASCII && r > unicode.MaxASCII:
			continue
		case r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.TrimSpace(strings.ToLower(b.String()))
}

// sortedTokens returns the whitespace-separated tokens of s, sorted.
func sortedTokens(s string) []string {
	tokens := strings.Fields(s)
	slices.Sort(tokens)

	return tokens
}

// tokenSet returns the distinct whitespace-separated tokens of s.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		set[t] = struct{}{}
	}

	return set
}

// joinSorted sorts tokens and joins them with single spaces.
func joinSorted(tokens []string) string {
	slices.Sort(tokens)

	return strings.Join(tokens, " ")
}
