package common

// CountFunc returns how many elements satisfy pred.
func CountFunc[S ~[]E, E any](s S, pred func(E) bool) int {
	n := 0
	for _, e := range s {
		if pred(e) {
			n++
		}
	}

	return n
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}
