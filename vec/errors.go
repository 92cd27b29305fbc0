package vec

import (
	"errors"
	"strconv"
)

// ErrOutOfRange matches any checked-access range failure via errors.Is.
var ErrOutOfRange = errors.New("vec: index out of range")

// OutOfRangeError is returned by At when the index is outside the logical
// range [0, Size).
//
// It carries the offending index and the vector's size at the time of the
// call so tests and callers can assert on both.
type OutOfRangeError struct {
	// Index is the index that was requested.
	Index int

	// Size is the vector's logical size when the access was attempted.
	Size int
}

// Error implements the error interface.
//
// It avoids fmt.Errorf so the failure path stays cheap when At is used as a
// bounds probe.
func (e OutOfRangeError) Error() string {
	// Example: vec: index 5 out of range [0, 3)
	return "vec: index " + strconv.Itoa(e.Index) + " out of range [0, " + strconv.Itoa(e.Size) + ")"
}

// Is reports ErrOutOfRange as a match so callers can use errors.Is without
// caring about the concrete type.
func (e OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
