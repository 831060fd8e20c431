// Package diagnostic provides structured errors, warnings and "why these
// values matched" explanations.
//
// Key capabilities:
//   - Dictionary problems (empty keys, synonyms claimed by several keys)
//   - Per-slot outcomes of a value comparison
//   - A combined error for callers that only care about failure
package diagnostic
