// Package tokenize splits free text into word and separator runs.
//
// A word rune is an ASCII letter, an ASCII digit or an apostrophe. Every
// other rune, including non-ASCII letters, belongs to a separator run.
package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// IsWordRune reports whether r belongs to a word run.
func IsWordRune(r rune) bool {
	return r == '\'' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}

// IsWord reports whether token is a non-empty word run.
func IsWord(token string) bool {
	if token == "" {
		return false
	}

	for _, r := range token {
		if !IsWordRune(r) {
			return false
		}
	}

	return true
}

// Split splits s into maximal runs alternating between word runs and
// separator runs. No rune is dropped, so joining the result yields s.
//
// Examples:
//   - "F.C. Liverpool" -> ["F", ".", "C", ". ", "Liverpool"]
//   - "ABC-D EF*G" -> ["ABC", "-", "D", " ", "EF", "*", "G"]
func Split(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	start := 0
	inWord := false

	for i, r := range s {
		word := IsWordRune(r)
		if i == 0 {
			inWord = word

			continue
		}

		if word != inWord {
			tokens = append(tokens, s[start:i])
			start = i
			inWord = word
		}
	}

	return append(tokens, s[start:])
}

// Words returns the word runs of s, dropping all separators.
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !IsWordRune(r)
	})
}

// FoldAccents removes combining marks, turning "Zürich" into "Zurich".
// Runes without an ASCII base form are left as they are.
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return folded
}
