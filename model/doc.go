// Package model is a solver-neutral representation of a continuous
// optimization problem.
//
// A Model owns:
//
//   - Variables: named Blocks of contiguous VarIDs, each with fixed Bounds.
//   - Objective: linear plus diagonal or cross quadratic terms, minimized or maximized.
//   - Families: named groups of Constraints. A constraint body is a linear
//     expression optionally extended with Coef·log(linear) terms.
//
// Families are iterated with range-over-func (iter.Seq). StreamFamily
// regenerates its rows on every pass, so pairwise families of size n² never
// sit in memory.
//
// A Model is immutable once New returns and may be shared across goroutines.
//
// Solving is delegated to a Solver. Solve passes only optimal solutions
// through; every other status surfaces as *SolverError (errors.Is
// ErrNotOptimal). Post-solve helpers:
//
//	sol, err := model.Solve(ctx, solver, m)
//	beta, _ := m.Variables().Block("beta")
//	coef, err := sol.Block(beta) // n×m matrix
//	vs, err := m.Check(sol.Values, 1e-6)
//
// Fingerprint gives a structural xxhash digest for comparing assemblies.
package model
