package compare

import (
	"fmt"

	"go.uber.org/zap"

	"valuematch/geo"
)

// Comparator compares values using its fallback tolerances and default
// settings.
type Comparator struct {
	tolerances  *Tolerances
	method      string
	unit        geo.Unit
	datePattern string
	ellipsoid   geo.Ellipsoid
	logger      *zap.Logger
}

// New builds a comparator from cfg.
func New(cfg Config) (*Comparator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Comparator{
		tolerances:  &Tolerances{values: cfg.Tolerances.values()},
		method:      cfg.Method,
		datePattern: cfg.DatePattern,
	}

	c.unit, _ = geo.ParseUnit(cfg.Unit)
	c.ellipsoid, _ = ellipsoid(cfg.Ellipsoid)

	return c, nil
}

// Default returns a comparator with DefaultConfig: every tolerance at 0.
func Default() *Comparator {
	c, err := New(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("compare: default config is invalid: %v", err))
	}

	return c
}

// Tolerances returns the fallback tolerances. They are shared with every
// copy made by WithLogger.
func (c *Comparator) Tolerances() *Tolerances {
	return c.tolerances
}

// WithLogger returns a copy of c logging to l. Without a logger the global
// zap logger is used.
func (c *Comparator) WithLogger(l *zap.Logger) *Comparator {
	cp := *c
	cp.logger = l

	return &cp
}

func (c *Comparator) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}

	return zap.L()
}

// Option adjusts a single comparison.
type Option func(*settings)

type settings struct {
	tolerance    float64
	hasTolerance bool
	method       string
	unit         string
	hasUnit      bool
	datePattern  string
	ellipsoid    string
}

func (c *Comparator) settings(opts []Option) settings {
	s := settings{
		method:      c.method,
		datePattern: c.datePattern,
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithTolerance sets the tolerance of a comparison, overriding the
// comparator's fallback.
func WithTolerance(v float64) Option {
	return func(s *settings) {
		s.tolerance = v
		s.hasTolerance = true
	}
}

// WithMethod selects the string similarity method.
func WithMethod(name string) Option {
	return func(s *settings) {
		s.method = name
	}
}

// WithUnit selects the distance unit of a coordinate comparison.
func WithUnit(name string) Option {
	return func(s *settings) {
		s.unit = name
		s.hasUnit = true
	}
}

// WithPattern sets the strftime pattern used to parse date strings. An empty
// pattern accepts any recognizable date format.
func WithPattern(pattern string) Option {
	return func(s *settings) {
		s.datePattern = pattern
	}
}

// WithEllipsoid selects the reference ellipsoid by name.
func WithEllipsoid(name string) Option {
	return func(s *settings) {
		s.ellipsoid = name
	}
}

// tolerance returns the explicit tolerance checked against iv, or the
// fallback of slot.
func (c *Comparator) tolerance(s settings, iv interval, slot Slot) (float64, error) {
	if !s.hasTolerance {
		return c.tolerances.Get(slot), nil
	}

	if err := iv.check(s.tolerance); err != nil {
		return 0, err
	}

	return s.tolerance, nil
}

func ellipsoid(name string) (geo.Ellipsoid, error) {
	e, ok := geo.EllipsoidByName(name)
	if !ok {
		return geo.Ellipsoid{}, fmt.Errorf("%w %q; use one of: %v", ErrUnknownEllipsoid, name, geo.EllipsoidNames())
	}

	return e, nil
}
