package dictionary

import (
	"fmt"
	"strings"

	"valuematch/internal/diagnostic"
)

// Validate reports problems in the dictionary data. The dictionary stays
// usable whatever the outcome: ambiguous synonyms resolve to the first key.
//
// Codes:
//   - empty_key (error): a key is blank
//   - ambiguous_synonym (warning): a synonym is listed under several keys
//   - synonym_shadows_key (warning): a synonym of one key is another key
//   - unextractable_key (warning): a multi-word key has words that are not keys
//   - key_without_synonyms (info): a key lists no synonyms
func (d *Dictionary) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for _, key := range d.keys {
		if key == "" {
			res.AddError("empty_key", "dictionary key is empty", "")
			continue
		}

		if len(d.synonyms[key]) == 0 {
			res.AddInfo("key_without_synonyms", "key lists no synonyms", key)
		}

		if words := strings.Fields(key); len(words) > 1 {
			for _, w := range words {
				if !d.Has(w) {
					res.AddWarning("unextractable_key",
						fmt.Sprintf("word %q of a multi-word key is not a key itself", w), key)
				}
			}
		}

		for _, syn := range d.synonyms[key] {
			if syn != key && d.Has(syn) {
				res.AddWarning("synonym_shadows_key",
					fmt.Sprintf("synonym %q is also a key", syn), key)
			}
		}
	}

	for _, key := range d.keys {
		for _, syn := range d.synonyms[key] {
			owners := d.lookup[syn]
			if len(owners) > 1 && owners[0] == key {
				res.AddWarning("ambiguous_synonym",
					fmt.Sprintf("listed under %s; %q wins", strings.Join(quote(owners), ", "), owners[0]), syn)
			}
		}
	}

	return res
}

func quote(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = fmt.Sprintf("%q", s)
	}

	return out
}
