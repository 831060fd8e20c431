package geo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned by ParseUnit for names outside the allow-list.
var ErrUnknownUnit = errors.New("geo: unsupported unit")

// Unit is a distance unit.
type Unit int

// Distance units.
const (
	Kilometers Unit = iota
	Meters
	Miles
	Feet
	Nautical
)

const (
	kmPerMile     = 1.609344
	feetPerMile   = 5280
	kmPerNautical = 1.852
)

var unitNames = map[string]Unit{
	"kilometers": Kilometers,
	"km":         Kilometers,
	"meters":     Meters,
	"m":          Meters,
	"miles":      Miles,
	"mi":         Miles,
	"feet":       Feet,
	"ft":         Feet,
	"nautical":   Nautical,
	"nm":         Nautical,
}

// ParseUnit resolves a unit name. Names are trimmed and case-insensitive.
func ParseUnit(name string) (Unit, error) {
	u, ok := unitNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w %q; use one of: kilometers, km, meters, m, miles, mi, feet, ft, nautical, nm",
			ErrUnknownUnit, name)
	}

	return u, nil
}

// FromKilometers converts a distance in kilometers to u.
func (u Unit) FromKilometers(km float64) float64 {
	switch u {
	case Meters:
		return km * 1000
	case Miles:
		return km / kmPerMile
	case Feet:
		return km / kmPerMile * feetPerMile
	case Nautical:
		return km / kmPerNautical
	default:
		return km
	}
}

// String returns the short unit name.
func (u Unit) String() string {
	switch u {
	case Kilometers:
		return "km"
	case Meters:
		return "m"
	case Miles:
		return "mi"
	case Feet:
		return "ft"
	case Nautical:
		return "nm"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}
