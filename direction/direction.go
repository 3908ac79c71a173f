package direction

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/stoned/matrix"
)

type kind uint8

const (
	kindUnspecified kind = iota
	kindScalar
	kindUniform
	kindPerDMU
)

// Component is the direction setting for one of gx, gy or gb.
// The zero value is Unspecified.
type Component struct {
	kind    kind
	scalar  float64
	uniform []float64
	perDMU  [][]float64
}

// Unspecified leaves the component to its default.
func Unspecified() Component { return Component{} }

// Scalar broadcasts v to every dimension of every DMU.
func Scalar(v float64) Component { return Component{kind: kindScalar, scalar: v} }

// Uniform repeats one vector for every DMU; its length must equal the dimension.
func Uniform(v []float64) Component { return Component{kind: kindUniform, uniform: v} }

// PerDMU uses an explicit n×dim array verbatim.
func PerDMU(v [][]float64) Component { return Component{kind: kindPerDMU, perDMU: v} }

// IsUnspecified reports whether c is the zero Component.
func (c Component) IsUnspecified() bool { return c.kind == kindUnspecified }

// Spec groups the three direction components.
type Spec struct {
	X, Y, B Component
}

// Directions holds resolved per-DMU direction rows: X is n×m, Y is n×p and
// B is n×q (nil when q is zero).
type Directions struct {
	X, Y, B *matrix.Dense
}

// Defaults for unspecified components: output-oriented.
const (
	DefaultX = 0.0
	DefaultY = 1.0
	DefaultB = 0.0
)

// Resolve turns spec into per-DMU direction matrices.
//
// Unspecified components default to gx = 0, gy = 1, gb = 0. Scalars and
// uniform vectors are broadcast to every DMU. Resolve fails with an *Error
// wrapping ErrLength, ErrNonFinite or ErrDegenerate; it is pure, so equal
// inputs give equal outputs.
func Resolve(spec Spec, n, m, p, q int) (*Directions, error) {
	gx, err := resolveComponent("gx", spec.X, DefaultX, n, m)
	if err != nil {
		return nil, err
	}
	gy, err := resolveComponent("gy", spec.Y, DefaultY, n, p)
	if err != nil {
		return nil, err
	}
	d := &Directions{X: gx, Y: gy}
	if q > 0 {
		if d.B, err = resolveComponent("gb", spec.B, DefaultB, n, q); err != nil {
			return nil, err
		}
	} else if !spec.B.IsUnspecified() {
		return nil, &Error{Component: "gb", DMU: -1, Want: 0, Got: 1, Err: ErrLength}
	}

	for i := 0; i < n; i++ {
		if d.isZero(i) {
			return nil, &Error{Component: "g", DMU: i, Err: ErrDegenerate}
		}
	}

	return d, nil
}

// Rows returns copies of DMU i's direction triple; gb is nil when q is zero.
// It panics when i is outside [0, n).
func (d *Directions) Rows(i int) (gx, gy, gb []float64) {
	gx, gy = mustRow(d.X, i), mustRow(d.Y, i)
	if d.B != nil {
		gb = mustRow(d.B, i)
	}

	return gx, gy, gb
}

func mustRow(m *matrix.Dense, i int) []float64 {
	row, err := m.Row(i)
	if err != nil {
		panic(err)
	}

	return row
}

func (d *Directions) isZero(i int) bool {
	gx, gy, gb := d.Rows(i)
	norm := floats.Norm(gx, 1) + floats.Norm(gy, 1)
	if gb != nil {
		norm += floats.Norm(gb, 1)
	}

	return norm == 0
}

func resolveComponent(name string, c Component, def float64, n, dim int) (*matrix.Dense, error) {
	switch c.kind {
	case kindScalar:
		if !finite(c.scalar) {
			return nil, &Error{Component: name, DMU: -1, Err: ErrNonFinite}
		}
		return matrix.Fill(n, dim, c.scalar)

	case kindUniform:
		if err := matrix.ValidateVecLen(c.uniform, dim); err != nil {
			return nil, &Error{Component: name, DMU: -1, Want: dim, Got: len(c.uniform), Err: ErrLength}
		}
		if err := matrix.ValidateFinite(c.uniform); err != nil {
			return nil, &Error{Component: name, DMU: -1, Err: ErrNonFinite}
		}
		return matrix.Broadcast(n, c.uniform)

	case kindPerDMU:
		if len(c.perDMU) != n {
			return nil, &Error{Component: name, DMU: -1, Want: n, Got: len(c.perDMU), Err: ErrLength}
		}
		for i, row := range c.perDMU {
			if err := matrix.ValidateVecLen(row, dim); err != nil {
				return nil, &Error{Component: name, DMU: i, Want: dim, Got: len(row), Err: ErrLength}
			}
			if err := matrix.ValidateFinite(row); err != nil {
				return nil, &Error{Component: name, DMU: i, Err: ErrNonFinite}
			}
		}
		return matrix.FromRows(c.perDMU)

	default:
		return matrix.Fill(n, dim, def)
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
