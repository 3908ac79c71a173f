package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a required column has no observations.
	ErrEmpty = errors.New("shape: empty column")

	// ErrLength is returned when a column's observation count differs from n = len(y).
	ErrLength = errors.New("shape: observation count mismatch")

	// ErrRagged is returned when a vector column's rows differ in width, or have zero width.
	ErrRagged = errors.New("shape: ragged column")

	// ErrNonFinite is returned for NaN or ±Inf values.
	ErrNonFinite = errors.New("shape: non-finite value")

	// ErrDomain is returned when a value lies outside the domain a formulation needs,
	// e.g. a non-positive response under the log model.
	ErrDomain = errors.New("shape: value outside domain")
)

// Error carries the column and DMU where shape resolution failed.
// DMU is -1 when the failure concerns the whole column.
type Error struct {
	Column string
	DMU    int
	Want   int
	Got    int
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.DMU < 0 && e.Want != e.Got:
		return fmt.Sprintf("column %s: got %d observations, want %d: %v", e.Column, e.Got, e.Want, e.Err)
	case e.DMU < 0:
		return fmt.Sprintf("column %s: %v", e.Column, e.Err)
	case e.Want != e.Got:
		return fmt.Sprintf("column %s, DMU %d: got %d values, want %d: %v", e.Column, e.DMU, e.Got, e.Want, e.Err)
	default:
		return fmt.Sprintf("column %s, DMU %d: %v", e.Column, e.DMU, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }
