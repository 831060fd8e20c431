package roman

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRoman(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"IX", "9"},
		{"VII", "7"},
		{"XXI", "21"},
		{"MCMXCIV", "1994"},
		{"MMMMCMXCIX", "4999"},
		{"M", "1000"},
		{"MMMM", "4000"},
		{"MMCM", "2900"},
		{"MMMMM", "MMMMM"},
		{"IIVX", "IIVX"},
		{"XIIIIX", "XIIIIX"},
		{"ABC", "ABC"},
		{"ix", "ix"},
		{"", ""},
		{"Madrid", "Madrid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromRoman(tt.input))
		})
	}
}

func TestToRoman(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"4", "IV"},
		{"9", "IX"},
		{"1994", "MCMXCIV"},
		{"4999", "MMMMCMXCIX"},
		{"4000", "MMMM"},
		{"3000", "MMM"},
		{"007", "VII"},
		{"0", "0"},
		{"5000", "5000"},
		{"12a", "12a"},
		{"-3", "-3"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToRoman(tt.input))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 1; n <= MaxValue; n++ {
		s := strconv.Itoa(n)
		numeral := ToRoman(s)

		if !assert.True(t, IsNumeral(numeral), "ToRoman(%d) = %q", n, numeral) {
			return
		}

		if !assert.Equal(t, s, FromRoman(numeral)) {
			return
		}
	}
}

func TestRomanToIntegers(t *testing.T) {
	assert.Equal(t, "Liverpool 4 Dortmund 3", RomanToIntegers("Liverpool IV Dortmund III"))
	assert.Equal(t, "4 ABC 2", RomanToIntegers("IV ABC II"))
	assert.Equal(t, "21 Century", RomanToIntegers("XXI Century"))
	assert.Equal(t, "Block-4/2", RomanToIntegers("Block-IV/II"))
}

func TestIntegersToRoman(t *testing.T) {
	assert.Equal(t, "Liverpool IV Dortmund III", IntegersToRoman("Liverpool 4 Dortmund 3"))
	assert.Equal(t, "LIV IV DOR III", IntegersToRoman("LIV 4 DOR 3"))
	assert.Equal(t, "Zone 0", IntegersToRoman("Zone 0"))
}

func TestWordConversionsAreInverse(t *testing.T) {
	s := "Liverpool IV, Dortmund III / Porto XII"
	assert.Equal(t, s, IntegersToRoman(RomanToIntegers(s)))

	d := "Liverpool 4, Dortmund 3 / Porto 12"
	assert.Equal(t, d, RomanToIntegers(IntegersToRoman(d)))
}
