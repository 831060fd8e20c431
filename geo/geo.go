// Package geo measures distances between latitude/longitude points.
//
// Distance solves the inverse geodesic problem on a reference ellipsoid and
// reports ErrUndefined for points it cannot place; GreatCircle is the
// spherical fallback.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/tidwall/geodesic"

	"valuematch/internal/common"
)

// EarthRadiusKm is the mean earth radius used by GreatCircle.
const EarthRadiusKm = 6371.009

// ErrUndefined is returned by Distance when the points have no ellipsoidal
// distance, such as a latitude outside [-90, 90] or a NaN coordinate.
var ErrUndefined = errors.New("geo: ellipsoidal distance is undefined")

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// String renders the point as "(lat, lon)".
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.Lat, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Lon, 'f', -1, 64) + ")"
}

// Ellipsoid describes a reference ellipsoid; axes are in kilometers.
type Ellipsoid struct {
	Name       string
	Major      float64
	Minor      float64
	Flattening float64
}

// Reference ellipsoids.
var (
	WGS84   = Ellipsoid{"WGS-84", 6378.137, 6356.7523142, 1 / 298.257223563}
	GRS80   = Ellipsoid{"GRS-80", 6378.137, 6356.7523141, 1 / 298.257222101}
	Airy    = Ellipsoid{"Airy (1830)", 6377.563396, 6356.256909, 1 / 299.3249646}
	Intl    = Ellipsoid{"Intl 1924", 6378.388, 6356.911946, 1 / 297.0}
	Clarke  = Ellipsoid{"Clarke (1880)", 6378.249145, 6356.51486955, 1 / 293.465}
	GRS67   = Ellipsoid{"GRS-67", 6378.1600, 6356.774719, 1 / 298.25}
	allEllp = []Ellipsoid{WGS84, GRS80, Airy, Intl, Clarke, GRS67}
)

// EllipsoidByName looks up a reference ellipsoid by its name, ignoring case.
func EllipsoidByName(name string) (Ellipsoid, bool) {
	name = strings.TrimSpace(name)
	for _, e := range allEllp {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}

	return Ellipsoid{}, false
}

// EllipsoidNames returns the names of the reference ellipsoids.
func EllipsoidNames() []string {
	names := make([]string, len(allEllp))
	for i, e := range allEllp {
		names[i] = e.Name
	}

	return names
}

// Distance returns the geodesic distance in kilometers between a and b on
// the ellipsoid e. Coincident and antipodal points are both solved.
func Distance(a, b Point, e Ellipsoid) (float64, error) {
	if !a.valid() || !b.valid() {
		return 0, fmt.Errorf("%w between %v and %v", ErrUndefined, a, b)
	}

	var meters float64

	geodesic.NewEllipsoid(e.Major*1000, e.Flattening).Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &meters, nil, nil)

	if math.IsNaN(meters) || math.IsInf(meters, 0) {
		return 0, fmt.Errorf("%w between %v and %v on %s", ErrUndefined, a, b, e.Name)
	}

	return meters / 1000, nil
}

// GreatCircle returns the spherical distance in kilometers between a and b.
func GreatCircle(a, b Point) float64 {
	angle := s2.LatLngFromDegrees(a.Lat, a.Lon).Distance(s2.LatLngFromDegrees(b.Lat, b.Lon))

	return angle.Radians() * EarthRadiusKm
}

func (p Point) valid() bool {
	return common.IsInRange(-90, p.Lat, 90) && !math.IsNaN(p.Lon) && !math.IsInf(p.Lon, 0)
}
