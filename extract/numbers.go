package extract

import (
	"regexp"
	"strings"

	"valuematch/tokenize"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// StrNumber splits s into words and separates the words holding at least one
// digit. Both groups are space-joined in their original order.
//
//	StrNumber("3 France 4 Nord 5a") // "France Nord", "3 4 5a"
func StrNumber(s string) (text, numeric string) {
	var words, numbers []string

	for _, w := range tokenize.Words(s) {
		if HasDigit(w) {
			numbers = append(numbers, w)
		} else {
			words = append(words, w)
		}
	}

	return strings.Join(words, " "), strings.Join(numbers, " ")
}

// StripZeros drops the leading zeros of every digit run longer than one
// digit. A run of zeros keeps a single "0".
//
//	StripZeros("A-001-102/004") // "A-1-102/4"
func StripZeros(s string) string {
	return digitRun.ReplaceAllStringFunc(s, func(run string) string {
		if len(run) < 2 || run[0] != '0' {
			return run
		}

		if trimmed := strings.TrimLeft(run, "0"); trimmed != "" {
			return trimmed
		}

		return "0"
	})
}

// HasDigit reports whether s holds an ASCII digit.
func HasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
