package compare

import (
	"fmt"
	"math"
)

// Tolerances holds the fallback tolerance of every slot. The zero value has
// all tolerances at 0.
type Tolerances struct {
	values [NumSlots]float64
}

// Set assigns the fallback tolerance of slot s.
func (t *Tolerances) Set(s Slot, v float64) error {
	if !s.Valid() {
		return fmt.Errorf("compare: unknown slot %v", s)
	}

	if math.IsNaN(v) || v < 0 {
		return fmt.Errorf("%w: %v tolerance set to %v", ErrNegativeTolerance, s.Key(), v)
	}

	t.values[s] = v

	return nil
}

// Get returns the fallback tolerance of slot s.
func (t *Tolerances) Get(s Slot) float64 {
	if !s.Valid() {
		return 0
	}

	return t.values[s]
}

// Map returns the tolerances keyed by Slot.Key.
func (t *Tolerances) Map() map[string]float64 {
	m := make(map[string]float64, NumSlots)
	for _, s := range Slots() {
		m[s.Key()] = t.values[s]
	}

	return m
}
