// Package roman converts between roman numerals and decimal integers.
//
// Only upper-case numerals in the classic subtractive form are recognized,
// covering the range 1 to 4999. Conversions never fail: a token that cannot
// be converted is returned unchanged.
package roman

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/brandenc40/romannumeral"

	"valuematch/tokenize"
)

// MaxValue is the largest integer that has a roman representation here.
const MaxValue = 4999

var numeralPattern = regexp.MustCompile(`^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// IsNumeral reports whether token is a valid roman numeral.
func IsNumeral(token string) bool {
	return token != "" && numeralPattern.MatchString(token)
}

// FromRoman returns the decimal text of a valid roman numeral, or token
// unchanged.
//
//	FromRoman("VII")    // "7"
//	FromRoman("XIIIIX") // "XIIIIX"
func FromRoman(token string) string {
	if !IsNumeral(token) {
		return token
	}

	// romannumeral stops at 3999, so the thousands are counted here
	rest := strings.TrimLeft(token, "M")
	total := 1000 * (len(token) - len(rest))

	if rest != "" {
		n, err := romannumeral.StringToInt(rest)
		if err != nil {
			return token
		}

		total += n
	}

	return strconv.Itoa(total)
}

// ToRoman returns the roman numeral for a token made only of decimal digits,
// or token unchanged when it is not such a token or falls outside 1..MaxValue.
func ToRoman(token string) string {
	if token == "" || strings.TrimLeft(token, "0123456789") != "" {
		return token
	}

	n, err := strconv.Atoi(token)
	if err != nil || n < 1 || n > MaxValue {
		return token
	}

	numeral := strings.Repeat("M", n/1000)

	if n%1000 > 0 {
		rest, err := romannumeral.IntToString(n % 1000)
		if err != nil {
			return token
		}

		numeral += rest
	}

	return numeral
}

// RomanToIntegers converts every roman numeral word in s to decimal,
// leaving separators untouched.
//
//	RomanToIntegers("Liverpool IV Dortmund III") // "Liverpool 4 Dortmund 3"
func RomanToIntegers(s string) string {
	return convertWords(s, FromRoman)
}

// IntegersToRoman converts every decimal integer word in s to a roman
// numeral, leaving separators untouched.
//
//	IntegersToRoman("Liverpool 4 Dortmund 3") // "Liverpool IV Dortmund III"
func IntegersToRoman(s string) string {
	return convertWords(s, ToRoman)
}

func convertWords(s string, convert func(string) string) string {
	tokens := tokenize.Split(s)
	for i, token := range tokens {
		if tokenize.IsWord(token) {
			tokens[i] = convert(token)
		}
	}

	return strings.Join(tokens, "")
}
