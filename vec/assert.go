package vec

import "fmt"

// assertf panics when a documented precondition is violated.
//
// Precondition failures are programmer errors; they terminate rather than
// return, preserving the zero-overhead unchecked path (Get/Set) next to the
// checked one (At).
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
