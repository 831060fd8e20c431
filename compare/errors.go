package compare

import (
	"errors"

	"valuematch/geo"
)

var (
	// ErrToleranceOutOfRange is returned when an explicit tolerance falls
	// outside the interval accepted by a comparison.
	ErrToleranceOutOfRange = errors.New("compare: tolerance out of range")
	// ErrNegativeTolerance is returned when a negative or NaN fallback
	// tolerance is assigned.
	ErrNegativeTolerance = errors.New("compare: tolerance must be a nonnegative number")
	// ErrUnknownMethod is returned for a string similarity method outside
	// the allow-list.
	ErrUnknownMethod = errors.New("compare: unknown method")
	// ErrUnknownUnit is returned for a distance unit outside the allow-list.
	ErrUnknownUnit = geo.ErrUnknownUnit
	// ErrUnknownEllipsoid is returned for an unknown reference ellipsoid.
	ErrUnknownEllipsoid = errors.New("compare: unknown ellipsoid")
	// ErrInvalidDate is returned when a date string does not parse.
	ErrInvalidDate = errors.New("compare: invalid date")
	// ErrInvalidConfig is returned for configuration values that cannot be
	// used.
	ErrInvalidConfig = errors.New("compare: invalid config")
)
