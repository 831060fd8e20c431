// Package block decomposes a raw value into six typed slots and compares
// the decompositions.
//
// A text value runs through the extractors in a fixed order, each feeding
// its residue to the next:
//
//	coordinates -> dates -> roman numerals -> str_number -> str_custom
//
// and whatever text remains fills the string slot. A numeric value, or text
// that parses wholly as a number, fills the number slot only.
package block
