package compare

import (
	"errors"

	"go.uber.org/zap"

	"valuematch/geo"
)

// Coordinates reports whether the distance between a and b, in the chosen
// unit, is within the tolerance. The ellipsoidal distance is used; if it is
// undefined a warning is logged and the great-circle distance is used
// instead.
func (c *Comparator) Coordinates(a, b geo.Point, opts ...Option) (bool, error) {
	s := c.settings(opts)

	tol, err := c.tolerance(s, nonNegative, SlotCoordinates)
	if err != nil {
		return false, err
	}

	unit := c.unit
	if s.hasUnit {
		if unit, err = geo.ParseUnit(s.unit); err != nil {
			return false, err
		}
	}

	e := c.ellipsoid
	if s.ellipsoid != "" {
		if e, err = ellipsoid(s.ellipsoid); err != nil {
			return false, err
		}
	}

	km, err := geo.Distance(a, b, e)
	if errors.Is(err, geo.ErrUndefined) {
		c.log().Warn("ellipsoidal distance failed, using great circle formula",
			zap.Stringer("from", a),
			zap.Stringer("to", b),
			zap.String("ellipsoid", e.Name),
		)

		km, err = geo.GreatCircle(a, b), nil
	}

	if err != nil {
		return false, err
	}

	return unit.FromKilometers(km) <= tol, nil
}
