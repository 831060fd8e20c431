// Package compare decides whether two values are the same within a
// tolerance.
//
// A Comparator holds the six per-slot fallback tolerances together with the
// default method, distance unit, date pattern and ellipsoid. Every
// comparison accepts call options; an explicit tolerance is checked against
// the comparison's interval before any work is done, while a missing one
// falls back to the comparator's current value for the matching slot.
//
// Tolerances are read at call time, so Tolerances().Set affects every later
// comparison made through the same comparator. Callers must not change them
// while comparisons run concurrently.
package compare
