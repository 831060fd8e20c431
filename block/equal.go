package block

import (
	"errors"
	"fmt"

	"valuematch/compare"
	"valuematch/internal/diagnostic"
)

// ErrNilBlock is returned when a block is compared with nil.
var ErrNilBlock = errors.New("block: compared with nil block")

// Diagnostic codes reported by Explain.
const (
	CodeLengthMismatch = "length_mismatch"
	CodeSlotOneSided   = "slot_one_sided"
	CodeSlotMismatch   = "slot_mismatch"
	CodeSlotSkipped    = "slot_skipped"
	CodeSlotMatch      = "slot_match"
)

// Equal reports whether b and other denote the same value under c. Blocks
// with different Len never match. A slot empty on both sides is skipped, a
// slot empty on one side fails, and the rest must pass the slot's comparator
// within the tolerance c holds for it. A nil c means compare.Default().
func (b *Block) Equal(other *Block, c *compare.Comparator) (bool, error) {
	if other == nil {
		return false, ErrNilBlock
	}

	if c == nil {
		c = compare.Default()
	}

	if b.Len() != other.Len() {
		return false, nil
	}

	for _, s := range compare.Slots() {
		e1, e2 := b.IsEmpty(s), other.IsEmpty(s)

		switch {
		case e1 && e2:
			continue
		case e1 != e2:
			return false, nil
		}

		ok, err := b.compareSlot(other, s, c)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

// Explain runs the same comparison as Equal without stopping at the first
// failing slot and reports the outcome of every slot. The result is valid
// exactly when Equal would return true.
func (b *Block) Explain(other *Block, c *compare.Comparator) (*diagnostic.Diagnostics, error) {
	if other == nil {
		return nil, ErrNilBlock
	}

	if c == nil {
		c = compare.Default()
	}

	d := &diagnostic.Diagnostics{}

	if l1, l2 := b.Len(), other.Len(); l1 != l2 {
		d.AddError(CodeLengthMismatch, fmt.Sprintf("blocks hold %d and %d slots", l1, l2), "")
	}

	for _, s := range compare.Slots() {
		slot, err := b.explainSlot(other, s, c)
		if err != nil {
			return nil, err
		}

		d.Merge(slot)
	}

	return d, nil
}

// explainSlot reports the outcome of comparing slot s of b and other.
func (b *Block) explainSlot(other *Block, s compare.Slot, c *compare.Comparator) (diagnostic.Diagnostics, error) {
	var d diagnostic.Diagnostics

	e1, e2 := b.IsEmpty(s), other.IsEmpty(s)

	switch {
	case e1 && e2:
		d.AddInfo(CodeSlotSkipped, "empty on both sides", s.Key())
		return d, nil
	case e1 != e2:
		d.AddError(CodeSlotOneSided, "empty on one side only", s.Key())
		return d, nil
	}

	ok, err := b.compareSlot(other, s, c)
	if err != nil {
		return d, err
	}

	tol := c.Tolerances().Get(s)
	if ok {
		d.AddInfo(CodeSlotMatch, fmt.Sprintf("within tolerance %v", tol), s.Key())
	} else {
		d.AddError(CodeSlotMismatch, fmt.Sprintf("%s and %s differ beyond tolerance %v",
			b.renderSlots()[s], other.renderSlots()[s], tol), s.Key())
	}

	return d, nil
}

func (b *Block) compareSlot(other *Block, s compare.Slot, c *compare.Comparator) (bool, error) {
	tol := compare.WithTolerance(c.Tolerances().Get(s))

	switch s {
	case compare.SlotNumber:
		return c.Numbers(b.number, other.number, tol)
	case compare.SlotDate:
		return c.Dates(b.dates, other.dates, tol)
	case compare.SlotCoordinates:
		return c.Coordinates(b.coords, other.coords, tol)
	case compare.SlotString:
		return c.Strings(b.text, other.text, tol)
	case compare.SlotStrNumber:
		return c.Strings(b.strNumber, other.strNumber, tol)
	case compare.SlotStrCustom:
		return c.Strings(b.strCustom, other.strCustom, tol)
	default:
		return false, fmt.Errorf("block: unknown slot %v", s)
	}
}
