package dictionary

import (
	"slices"
	"strings"
	"unicode/utf8"

	"valuematch/internal/common"
	"valuematch/tokenize"
)

// Dictionary maps synonyms onto canonical keys.
type Dictionary struct {
	keys     []string
	synonyms map[string][]string
	// lookup maps a synonym to every key that lists it, in key order.
	lookup map[string][]string
}

// New builds a dictionary from keys in the given order and their synonyms.
// Keys and synonyms are trimmed and lower-cased; a repeated key merges its
// synonyms into the first occurrence.
func New(keys []string, synonyms map[string][]string) *Dictionary {
	d := &Dictionary{
		synonyms: make(map[string][]string, len(keys)),
		lookup:   make(map[string][]string),
	}

	for _, key := range keys {
		d.add(key, synonyms[key])
	}

	return d
}

func (d *Dictionary) add(key string, synonyms []string) {
	key = normalize(key)

	if _, seen := d.synonyms[key]; !seen {
		d.keys = append(d.keys, key)
		d.synonyms[key] = nil
	}

	for _, syn := range synonyms {
		syn = normalize(syn)
		if syn == "" || slices.Contains(d.synonyms[key], syn) {
			continue
		}

		d.synonyms[key] = append(d.synonyms[key], syn)
		d.lookup[syn] = append(d.lookup[syn], key)
	}
}

// Keys returns the canonical keys in document order.
func (d *Dictionary) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Len returns the number of canonical keys.
func (d *Dictionary) Len() int {
	return len(d.keys)
}

// Has reports whether key is a canonical key. The check is case-insensitive.
func (d *Dictionary) Has(key string) bool {
	_, ok := d.synonyms[normalize(key)]
	return ok
}

// Synonyms returns the synonyms listed under key.
func (d *Dictionary) Synonyms(key string) []string {
	return append([]string(nil), d.synonyms[normalize(key)]...)
}

// Lookup returns the first key, in document order, that lists token as a
// synonym.
func (d *Dictionary) Lookup(token string) (string, bool) {
	return common.First(d.lookup[normalize(token)])
}

// Substitute replaces every word of s that is a known synonym with its
// canonical key. Separators and all other words are kept verbatim.
//
// A lone "s" directly after a typographic apostrophe is a possessive and is
// never substituted.
//
//	Substitute("London 1 NE")    // "London 1 north east"
//	Substitute("London_nOrD_10") // "London_north_10"
func (d *Dictionary) Substitute(s string) string {
	tokens := tokenize.Split(s)

	for i, token := range tokens {
		if !tokenize.IsWord(token) {
			continue
		}

		if i > 0 && normalize(token) == "s" && endsWithApostrophe(tokens[i-1]) {
			continue
		}

		if key, ok := d.Lookup(token); ok {
			tokens[i] = key
		}
	}

	return strings.Join(tokens, "")
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func endsWithApostrophe(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)

	switch r {
	case '\'', '’', '‘', 'ʼ', '`', '´':
		return true
	default:
		return false
	}
}
