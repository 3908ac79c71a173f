// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage used for observation
// data, direction vectors and prior weight matrices.
//
// What:
//
//   - Dense: r×c float64 buffer, offset i*c + j, finite-only writes.
//   - FromRows / FromColumn: copy caller slices into owned matrices.
//   - Fill / Broadcast: constant and repeated-row matrices.
//   - RowView: zero-copy row access for pairwise loops.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateRows, ValidateVecLen, ValidateFinite.
//
// Errors:
//
// All failures are sentinel errors (ErrInvalidDimensions, ErrDimensionMismatch,
// ErrOutOfRange, ErrNaNInf, ErrNilMatrix) wrapped with a call-site tag; match
// them with errors.Is. Public accessors never panic on bad indices.
//
// Determinism:
//
// Every loop runs in fixed row→column order; no map iteration.
package matrix
