package extract

import (
	"slices"
	"strings"

	"valuematch/dictionary"
	"valuematch/tokenize"
)

// StrCustom substitutes synonyms in s with d and then moves every word that
// is a canonical key of d out of the text. The keys found are returned
// sorted and space-joined; duplicates are kept. A nil d means
// dictionary.Default().
//
//	StrCustom("France Centre 1 Sud", nil) // "France 1", "center south"
func StrCustom(s string, d *dictionary.Dictionary) (text, custom string) {
	if d == nil {
		d = dictionary.Default()
	}

	var words, keys []string

	for _, w := range tokenize.Words(d.Substitute(s)) {
		if d.Has(w) {
			keys = append(keys, strings.ToLower(w))
		} else {
			words = append(words, w)
		}
	}

	slices.Sort(keys)

	return strings.Join(words, " "), strings.Join(keys, " ")
}
