// Package dictionary maps surface forms of words onto canonical keys.
//
// A dictionary document is a mapping of canonical key to a list of
// synonyms, written in JSON or YAML:
//
//	{
//	  "north": ["n", "nord", "norte"],
//	  "south west": ["sw", "southwest"]
//	}
//
// Keys and synonyms are lower-cased on load. The order of keys in the
// document is kept and decides which key wins when a synonym is listed
// under more than one key; Validate reports such ambiguities.
//
// A Dictionary is immutable once loaded and safe for concurrent use.
// Default returns the dictionary shipped with the module.
package dictionary
