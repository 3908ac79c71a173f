package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateBlock is returned when a variable block name is declared twice.
	ErrDuplicateBlock = errors.New("model: duplicate variable block")

	// ErrBadShape is returned for a block with non-positive rows or cols, or an empty name.
	ErrBadShape = errors.New("model: invalid block shape")

	// ErrBadBounds is returned when Lower > Upper or a bound is NaN.
	ErrBadBounds = errors.New("model: invalid bounds")

	// ErrFrozen is returned when declaring into a Variables set already owned by a Model.
	ErrFrozen = errors.New("model: variables are frozen")

	// ErrOutOfRange is returned for block indices or variable ids outside the declared range.
	ErrOutOfRange = errors.New("model: index out of range")

	// ErrUnknownVar is returned when an expression references an undeclared variable.
	ErrUnknownVar = errors.New("model: unknown variable")

	// ErrDuplicateFamily is returned when two constraint families share a name.
	ErrDuplicateFamily = errors.New("model: duplicate constraint family")

	// ErrNilVariables is returned by New when vars is nil.
	ErrNilVariables = errors.New("model: nil variables")

	// ErrValuesLength is returned when a value vector does not cover every variable.
	ErrValuesLength = errors.New("model: value vector length mismatch")

	// ErrNilSolver is returned by Solve when no solver is supplied.
	ErrNilSolver = errors.New("model: nil solver")

	// ErrNotOptimal is wrapped by SolverError for every non-optimal status.
	ErrNotOptimal = errors.New("model: solver did not reach optimality")
)

// SolverError surfaces a solver's non-optimal status unchanged.
type SolverError struct {
	Status Status
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("model: solver returned status %s", e.Status)
}

func (e *SolverError) Unwrap() error { return ErrNotOptimal }
