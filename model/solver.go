package model

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stoned/matrix"
)

// Status is the outcome reported by a solver. The zero value is StatusError.
type Status int

const (
	StatusError Status = iota
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "error"
	}
}

// Solution is a solver result. Values is indexed by VarID.
type Solution struct {
	Status    Status
	Values    []float64
	Objective float64
}

// IsOptimal reports whether Status is StatusOptimal.
func (s *Solution) IsOptimal() bool { return s.Status == StatusOptimal }

// Value returns x[id], or 0 when id is out of range.
func (s *Solution) Value(id VarID) float64 {
	if id < 0 || int(id) >= len(s.Values) {
		return 0
	}

	return s.Values[id]
}

// Block copies the values of b into a Rows()×Cols() matrix.
func (s *Solution) Block(b *Block) (*matrix.Dense, error) {
	end := int(b.offset) + b.Len()
	if end > len(s.Values) {
		return nil, fmt.Errorf("model: block %s needs %d values, have %d: %w", b.name, end, len(s.Values), ErrValuesLength)
	}
	out, err := matrix.NewDense(b.rows, b.cols)
	if err != nil {
		return nil, err
	}
	for k := 0; k < b.Len(); k++ {
		if err = out.Set(k/b.cols, k%b.cols, s.Values[int(b.offset)+k]); err != nil {
			return nil, fmt.Errorf("model: block %s: %w", b.name, err)
		}
	}

	return out, nil
}

// Solver is the external numerical collaborator.
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Solution, error)
}

// SolverFunc adapts a function to Solver.
type SolverFunc func(ctx context.Context, m *Model) (*Solution, error)

func (f SolverFunc) Solve(ctx context.Context, m *Model) (*Solution, error) { return f(ctx, m) }

// Solve hands m to s and returns an optimal solution. Any other status is
// returned as a *SolverError carrying the status unchanged; there is no
// retry and no substituted value.
func Solve(ctx context.Context, s Solver, m *Model) (*Solution, error) {
	if s == nil {
		return nil, ErrNilSolver
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sol, err := s.Solve(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("model: solve %s: %w", m.name, err)
	}
	if sol == nil {
		return nil, &SolverError{Status: StatusError}
	}
	if !sol.IsOptimal() {
		return nil, &SolverError{Status: sol.Status}
	}
	if len(sol.Values) != m.vars.Len() {
		return nil, fmt.Errorf("model: solve %s: got %d values, want %d: %w", m.name, len(sol.Values), m.vars.Len(), ErrValuesLength)
	}

	return sol, nil
}
