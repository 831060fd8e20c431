package fuzz

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// partialExact is the window ratio above which PartialRatio reports a
	// perfect match.
	partialExact = 0.995

	unbaseScale        = 0.95
	partialScale       = 0.90
	farPartialScale    = 0.60
	partialLenRatio    = 1.5
	farPartialLenRatio = 8
)

// Ratio scores the similarity of a and b. Equal strings score 100; an empty
// operand otherwise scores 0.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}

	if a == "" || b == "" {
		return 0
	}

	return intr(100 * difflib.NewMatcher(chars(a), chars(b)).Ratio())
}

// PartialRatio scores the shorter string against the window of the longer
// string aligned with each matching block and keeps the best.
func PartialRatio(a, b string) int {
	if a == b {
		return 100
	}

	if a == "" || b == "" {
		return 0
	}

	shorter, longer := chars(a), chars(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	best := 0.0

	for _, blk := range difflib.NewMatcher(shorter, longer).GetMatchingBlocks() {
		start := max(blk.B-blk.A, 0)
		end := min(start+len(shorter), len(longer))

		r := difflib.NewMatcher(shorter, longer[start:end]).Ratio()
		if r > partialExact {
			return 100
		}

		best = max(best, r)
	}

	return intr(100 * best)
}

// TokenSortRatio fully processes both strings, sorts their tokens and
// compares the results with Ratio.
func TokenSortRatio(a, b string) int {
	return tokenSort(a, b, false, true, true)
}

// PartialTokenSortRatio is TokenSortRatio compared with PartialRatio.
func PartialTokenSortRatio(a, b string) int {
	return tokenSort(a, b, true, true, true)
}

// TokenSetRatio compares the sorted token intersection of a and b with the
// intersection extended by each side's remaining tokens, and keeps the best
// Ratio among the three pairings.
func TokenSetRatio(a, b string) int {
	return tokenSetScore(a, b, false, true, true)
}

// PartialTokenSetRatio is TokenSetRatio compared with PartialRatio.
func PartialTokenSetRatio(a, b string) int {
	return tokenSetScore(a, b, true, true, true)
}

// WRatio weighs Ratio, PartialRatio and the token ratios by how different
// the lengths of the fully processed strings are. Non-ASCII runes are
// dropped before scoring.
func WRatio(a, b string) int {
	return weighted(a, b, true)
}

// UWRatio is WRatio keeping non-ASCII runes.
func UWRatio(a, b string) int {
	return weighted(a, b, false)
}

func tokenSort(a, b string, partial, forceASCII, process bool) int {
	if process {
		a, b = FullProcess(a, forceASCII), FullProcess(b, forceASCII)
	}

	sa := strings.Join(sortedTokens(a), " ")
	sb := strings.Join(sortedTokens(b), " ")

	if partial {
		return PartialRatio(sa, sb)
	}

	return Ratio(sa, sb)
}

func tokenSetScore(a, b string, partial, forceASCII, process bool) int {
	if !process && a == b {
		return 100
	}

	if process {
		a, b = FullProcess(a, forceASCII), FullProcess(b, forceASCII)
	}

	if a == "" || b == "" {
		return 0
	}

	setA, setB := tokenSet(a), tokenSet(b)

	var sect, onlyA, onlyB []string

	for t := range setA {
		if _, ok := setB[t]; ok {
			sect = append(sect, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}

	for t := range setB {
		if _, ok := setA[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}

	base := joinSorted(sect)
	withA := strings.TrimSpace(base + " " + joinSorted(onlyA))
	withB := strings.TrimSpace(base + " " + joinSorted(onlyB))
	base = strings.TrimSpace(base)

	scorer := Ratio
	if partial {
		scorer = PartialRatio
	}

	return max(scorer(base, withA), scorer(base, withB), scorer(withA, withB))
}

func weighted(a, b string, forceASCII bool) int {
	pa, pb := FullProcess(a, forceASCII), FullProcess(b, forceASCII)
	if pa == "" || pb == "" {
		return 0
	}

	base := float64(Ratio(pa, pb))

	la, lb := utf8.RuneCountInString(pa), utf8.RuneCountInString(pb)
	lenRatio := float64(max(la, lb)) / float64(min(la, lb))

	if lenRatio < partialLenRatio {
		tsor := float64(tokenSort(pa, pb, false, forceASCII, false)) * unbaseScale
		tser := float64(tokenSetScore(pa, pb, false, forceASCII, false)) * unbaseScale

		return intr(max(base, tsor, tser))
	}

	scale := partialScale
	if lenRatio > farPartialLenRatio {
		scale = farPartialScale
	}

	part := float64(PartialRatio(pa, pb)) * scale
	ptsor := float64(tokenSort(pa, pb, true, forceASCII, false)) * unbaseScale * scale
	ptser := float64(tokenSetScore(pa, pb, true, forceASCII, false)) * unbaseScale * scale

	return intr(max(base, part, ptsor, ptser))
}

// chars splits s into one element per rune for the sequence matcher.
func chars(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

// intr rounds a 0-100 score half to even.
func intr(x float64) int {
	return int(math.RoundToEven(x))
}
