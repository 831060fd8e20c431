package block

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"valuematch/compare"
	"valuematch/extract"
	"valuematch/geo"
	"valuematch/internal/common"
	"valuematch/roman"
	"valuematch/tokenize"
)

// ErrUnsupportedType is returned by New for values that are neither numbers
// nor text.
var ErrUnsupportedType = errors.New("block: unsupported type")

// dateLayout renders dates without their time of day.
const dateLayout = "2006-01-02"

// Block is the decomposition of one raw value. It is immutable once built.
type Block struct {
	number    float64
	hasNumber bool
	dates     []time.Time
	coords    geo.Point
	hasCoords bool
	text      string
	strNumber string
	strCustom string
}

// New decomposes v. Integers, unsigned integers and floats, and strings that
// parse wholly as one of them, fill the number slot only. Any other string
// runs through the extraction pipeline.
func New(v any, opts ...Option) (*Block, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Block{}

	if n, ok := numberOf(v); ok {
		b.setNumber(n)
		return b, nil
	}

	s, ok := textOf(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	if n, ok := parseNumber(s); ok {
		b.setNumber(n)
		return b, nil
	}

	b.extract(s, o)

	return b, nil
}

// MustNew is like New but panics on error.
func MustNew(v any, opts ...Option) *Block {
	b, err := New(v, opts...)
	if err != nil {
		panic(err)
	}

	return b
}

func (b *Block) setNumber(n float64) {
	b.number = n
	b.hasNumber = true
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}

	return 0, false
}

func (b *Block) extract(s string, o options) {
	if o.foldAccents {
		s = tokenize.FoldAccents(s)
	}

	if o.coordinates {
		var p *geo.Point
		if s, p = extract.Coordinates(s); p != nil {
			b.coords, b.hasCoords = *p, true
		}
	}

	if o.dates {
		s, b.dates = extract.Dates(s)
	}

	if o.roman {
		s = roman.RomanToIntegers(s)
	}

	if o.strNumber {
		s, b.strNumber = extract.StrNumber(s)
		b.strNumber = extract.StripZeros(b.strNumber)
	}

	if o.strCustom {
		s, b.strCustom = extract.StrCustom(s, o.dict)
	}

	b.text = s
}

// Number returns the number slot.
func (b *Block) Number() (float64, bool) {
	return b.number, b.hasNumber
}

// Dates returns the dates found, in order of occurrence.
func (b *Block) Dates() []time.Time {
	return append([]time.Time(nil), b.dates...)
}

// Coordinates returns the coordinates slot.
func (b *Block) Coordinates() (geo.Point, bool) {
	return b.coords, b.hasCoords
}

// Text returns the string slot: what remains after every extraction.
func (b *Block) Text() string {
	return b.text
}

// StrNumber returns the space-joined words that hold digits.
func (b *Block) StrNumber() string {
	return b.strNumber
}

// StrCustom returns the sorted, space-joined dictionary keys found.
func (b *Block) StrCustom() string {
	return b.strCustom
}

// Attributes returns the six slots in canonical order: number (float64),
// dates ([]time.Time), coordinates (geo.Point), string, str_number and
// str_custom. Empty slots are nil.
func (b *Block) Attributes() []any {
	attrs := make([]any, 0, compare.NumSlots)

	for _, s := range compare.Slots() {
		if b.IsEmpty(s) {
			attrs = append(attrs, nil)
			continue
		}

		switch s {
		case compare.SlotNumber:
			attrs = append(attrs, b.number)
		case compare.SlotDate:
			attrs = append(attrs, b.Dates())
		case compare.SlotCoordinates:
			attrs = append(attrs, b.coords)
		case compare.SlotString:
			attrs = append(attrs, b.text)
		case compare.SlotStrNumber:
			attrs = append(attrs, b.strNumber)
		case compare.SlotStrCustom:
			attrs = append(attrs, b.strCustom)
		}
	}

	return attrs
}

// IsEmpty reports whether slot s holds nothing. A NaN number is empty.
func (b *Block) IsEmpty(s compare.Slot) bool {
	switch s {
	case compare.SlotNumber:
		return !b.hasNumber || math.IsNaN(b.number)
	case compare.SlotDate:
		return len(b.dates) == 0
	case compare.SlotCoordinates:
		return !b.hasCoords
	case compare.SlotString:
		return b.text == ""
	case compare.SlotStrNumber:
		return b.strNumber == ""
	case compare.SlotStrCustom:
		return b.strCustom == ""
	default:
		return true
	}
}

// Len returns the number of non-empty slots.
func (b *Block) Len() int {
	return common.CountFunc(compare.Slots(), func(s compare.Slot) bool {
		return !b.IsEmpty(s)
	})
}

// String renders the non-empty slots in canonical order, dates as
// YYYY-MM-DD.
func (b *Block) String() string {
	return common.JoinNonEmpty(" ", b.renderSlots()...)
}

// GoString renders the non-empty slots with their names.
func (b *Block) GoString() string {
	parts := b.renderSlots()
	named := make([]string, 0, len(parts))

	for i, s := range compare.Slots() {
		if parts[i] != "" {
			named = append(named, slotTitles[s]+": "+parts[i])
		}
	}

	return "Block{" + strings.Join(named, ", ") + "}"
}

var slotTitles = map[compare.Slot]string{
	compare.SlotNumber:      "Number",
	compare.SlotDate:        "Date",
	compare.SlotCoordinates: "Coordinates",
	compare.SlotString:      "String",
	compare.SlotStrNumber:   "String (number part)",
	compare.SlotStrCustom:   "String (custom part)",
}

// renderSlots renders every slot, empty ones as "".
func (b *Block) renderSlots() []string {
	parts := make([]string, compare.NumSlots)

	for _, s := range compare.Slots() {
		if b.IsEmpty(s) {
			continue
		}

		switch s {
		case compare.SlotNumber:
			parts[s] = strconv.FormatFloat(b.number, 'f', -1, 64)
		case compare.SlotDate:
			days := make([]string, len(b.dates))
			for i, d := range b.dates {
				days[i] = d.Format(dateLayout)
			}

			parts[s] = strings.Join(days, " ")
		case compare.SlotCoordinates:
			parts[s] = b.coords.String()
		case compare.SlotString:
			parts[s] = b.text
		case compare.SlotStrNumber:
			parts[s] = b.strNumber
		case compare.SlotStrCustom:
			parts[s] = b.strCustom
		}
	}

	return parts
}
