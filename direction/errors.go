package direction

import (
	"errors"
	"fmt"
)

var (
	// ErrLength is returned when a per-DMU array has the wrong number of rows,
	// or a row/uniform vector has the wrong width.
	ErrLength = errors.New("direction: length mismatch")

	// ErrDegenerate is returned when every component of a DMU's direction is zero.
	ErrDegenerate = errors.New("direction: degenerate all-zero direction")

	// ErrNonFinite is returned for NaN or ±Inf direction values.
	ErrNonFinite = errors.New("direction: non-finite value")
)

// Error names the direction component and DMU that failed to resolve.
// Component is "gx", "gy", "gb" or "g" (whole triple); DMU is -1 when
// the failure is not tied to one DMU.
type Error struct {
	Component string
	DMU       int
	Want, Got int
	Err       error
}

func (e *Error) Error() string {
	if e.Want != e.Got {
		if e.DMU < 0 {
			return fmt.Sprintf("%s: got %d, want %d: %v", e.Component, e.Got, e.Want, e.Err)
		}
		return fmt.Sprintf("%s, DMU %d: got %d, want %d: %v", e.Component, e.DMU, e.Got, e.Want, e.Err)
	}
	if e.DMU < 0 {
		return fmt.Sprintf("%s: %v", e.Component, e.Err)
	}

	return fmt.Sprintf("%s, DMU %d: %v", e.Component, e.DMU, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
