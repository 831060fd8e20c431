// Package fuzz scores the similarity of two strings on a 0-100 scale.
//
// Scores are built on a longest-matching-block sequence matcher:
//   - Ratio: plain similarity of the two strings
//   - PartialRatio: best similarity of the shorter string against any
//     equally long window of the longer one
//   - TokenSortRatio, TokenSetRatio: similarity after sorting or
//     intersecting the whitespace-separated tokens
//   - WRatio, UWRatio: weighted maximum over the scorers above
package fuzz
