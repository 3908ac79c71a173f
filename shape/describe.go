package shape

import (
	"math"

	"github.com/katalvlaran/stoned/matrix"
)

// Undesirable classifies the undesirable-output column.
type Undesirable uint8

const (
	UndesirableNone Undesirable = iota
	UndesirableScalar
	UndesirableVector
)

func (u Undesirable) String() string {
	switch u {
	case UndesirableScalar:
		return "scalar"
	case UndesirableVector:
		return "vector"
	default:
		return "none"
	}
}

// Key is the discrete case key selected by the data dimensions.
// It depends on dimensions only, so a scalar column and a column of
// length-1 vectors resolve to the same key.
type Key struct {
	ScalarInputs  bool
	ScalarOutputs bool
	Undesirable   Undesirable
}

// Descriptor is the resolved shape of a dataset: dimensions plus owned,
// row-major copies of the columns. B is nil when Q is zero.
type Descriptor struct {
	N, M, P, Q int
	X, Y, B    *matrix.Dense
	Key        Key
}

// Describe resolves n, m, p and q from the columns and validates them eagerly.
// y and x are required; b may be None().
func Describe(y, x, b Column) (*Descriptor, error) {
	n := y.Len()
	if n == 0 {
		return nil, &Error{Column: "y", DMU: -1, Err: ErrEmpty}
	}
	if x.Len() == 0 {
		return nil, &Error{Column: "x", DMU: -1, Err: ErrEmpty}
	}

	Y, err := toDense("y", y, n)
	if err != nil {
		return nil, err
	}
	X, err := toDense("x", x, n)
	if err != nil {
		return nil, err
	}
	d := &Descriptor{N: n, M: X.Cols(), P: Y.Cols(), X: X, Y: Y}
	if b.Kind() != KindNone {
		if d.B, err = toDense("b", b, n); err != nil {
			return nil, err
		}
		d.Q = d.B.Cols()
	}

	d.Key = Key{ScalarInputs: d.M == 1, ScalarOutputs: d.P == 1}
	switch {
	case d.Q == 1:
		d.Key.Undesirable = UndesirableScalar
	case d.Q > 1:
		d.Key.Undesirable = UndesirableVector
	}

	return d, nil
}

// RequirePositive fails with ErrDomain unless every response is strictly positive.
func (d *Descriptor) RequirePositive() error {
	var err error
	d.Y.Do(func(i, _ int, v float64) bool {
		if v <= 0 {
			err = &Error{Column: "y", DMU: i, Err: ErrDomain}
			return false
		}
		return true
	})

	return err
}

// toDense validates one column against n and copies it into a matrix.
func toDense(name string, c Column, n int) (*matrix.Dense, error) {
	if c.Len() != n {
		return nil, &Error{Column: name, DMU: -1, Want: n, Got: c.Len(), Err: ErrLength}
	}
	if c.kind == KindScalar {
		for i, v := range c.scalars {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &Error{Column: name, DMU: i, Err: ErrNonFinite}
			}
		}
		return matrix.FromColumn(c.scalars)
	}

	width := len(c.vectors[0])
	if width == 0 {
		return nil, &Error{Column: name, DMU: 0, Want: 1, Got: 0, Err: ErrRagged}
	}
	for i, row := range c.vectors {
		if len(row) != width {
			return nil, &Error{Column: name, DMU: i, Want: width, Got: len(row), Err: ErrRagged}
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &Error{Column: name, DMU: i, Err: ErrNonFinite}
			}
		}
	}

	return matrix.FromRows(c.vectors)
}
