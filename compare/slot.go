package compare

//go:generate go tool stringer -type=Slot -trimprefix=Slot -output=slot_string.go

// Slot names one of the six typed parts of a value.
type Slot int

// Slots in canonical order.
const (
	SlotNumber Slot = iota
	SlotDate
	SlotCoordinates
	SlotString
	SlotStrNumber
	SlotStrCustom
)

// NumSlots is the number of slots.
const NumSlots = 6

var slotKeys = [NumSlots]string{"number", "date", "coordinates", "string", "str_number", "str_custom"}

// Slots returns every slot in canonical order.
func Slots() []Slot {
	return []Slot{SlotNumber, SlotDate, SlotCoordinates, SlotString, SlotStrNumber, SlotStrCustom}
}

// Key returns the snake_case name of the slot used in configuration.
func (s Slot) Key() string {
	if !s.Valid() {
		return s.String()
	}

	return slotKeys[s]
}

// Valid reports whether s is one of the six slots.
func (s Slot) Valid() bool {
	return s >= SlotNumber && s <= SlotStrCustom
}
