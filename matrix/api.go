// SPDX-License-Identifier: MIT
// Constructors for Dense from plain Go slices.
//
// Purpose:
//   - Provide thin entry points that turn caller-owned slices into owned *Dense values.
//   - Copy on ingestion: the returned matrix never aliases caller memory.
//
// Determinism & Policy:
//   - Fixed row→column loop order; finite-only numeric policy on every cell.
//
// AI-Hints:
//   - FromColumn is the scalar-per-observation case (n×1).
//   - FromRows is the vector-per-observation case (n×k); rows must share one width.
//   - Broadcast/Fill build direction matrices from one value or one row.

package matrix

import (
	"fmt"
	"math"
)

// FromRows builds an owned len(rows)×k matrix from row slices.
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: width k = len(rows[0]); every row must match (ErrDimensionMismatch).
//   - Stage 3: copy values, rejecting NaN/±Inf (ErrNaNInf).
//
// Errors are wrapped with the offending row/column so callers can report them.
// Complexity: Time O(n*k), Space O(n*k).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	k := len(rows[0])
	d, err := newDenseZeroOK(len(rows), k)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != k {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(rows[i]), k, ErrDimensionMismatch)
		}
		for j = 0; j < k; j++ {
			v := rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromRows: cell (%d,%d): %w", i, j, ErrNaNInf)
			}
			d.data[i*k+j] = v
		}
	}

	return d, nil
}

// FromColumn builds an owned len(col)×1 matrix.
// Complexity: Time O(n), Space O(n).
func FromColumn(col []float64) (*Dense, error) {
	d, err := NewDense(len(col), 1)
	if err != nil {
		return nil, fmt.Errorf("FromColumn: %w", err)
	}
	for i, v := range col {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("FromColumn: cell (%d,0): %w", i, ErrNaNInf)
		}
		d.data[i] = v
	}

	return d, nil
}

// Fill returns a rows×cols matrix with every cell equal to v.
// Complexity: Time O(r*c), Space O(r*c).
func Fill(rows, cols int, v float64) (*Dense, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("Fill: %w", ErrNaNInf)
	}
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Fill: %w", err)
	}
	for k := range d.data {
		d.data[k] = v
	}

	return d, nil
}

// Broadcast repeats row for every one of rows lines (rows×len(row)).
// Complexity: Time O(r*c), Space O(r*c).
func Broadcast(rows int, row []float64) (*Dense, error) {
	d, err := NewDense(rows, len(row))
	if err != nil {
		return nil, fmt.Errorf("Broadcast: %w", err)
	}
	for j, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Broadcast: cell (0,%d): %w", j, ErrNaNInf)
		}
	}
	for i := 0; i < rows; i++ {
		copy(d.data[i*d.c:(i+1)*d.c], row)
	}

	return d, nil
}
