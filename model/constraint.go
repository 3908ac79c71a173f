package model

import (
	"iter"
	"math"
	"strconv"
)

// Sense is the relation between a constraint body and its right-hand side.
type Sense int8

const (
	EQ Sense = iota // body = rhs
	LE              // body <= rhs
	GE              // body >= rhs
)

func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return "="
	}
}

// Constraint is one row: Body Sense RHS.
// Row is the DMU index; Col is the partner DMU for pairwise rows and -1 otherwise.
type Constraint struct {
	Family string
	Row    int
	Col    int
	Body   Expr
	Sense  Sense
	RHS    float64
}

// Name renders "family[row]" or "family[row,col]".
func (c Constraint) Name() string {
	if c.Col < 0 {
		return c.Family + "[" + strconv.Itoa(c.Row) + "]"
	}

	return c.Family + "[" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + "]"
}

// Evaluate returns the body value at values.
func (c Constraint) Evaluate(values []float64) float64 { return c.Body.Evaluate(values) }

// Violation returns how far values are from satisfying c (0 when satisfied).
// An undefined body (NaN) is infinitely violated.
func (c Constraint) Violation(values []float64) float64 {
	lhs := c.Evaluate(values)
	if math.IsNaN(lhs) {
		return math.Inf(1)
	}
	switch c.Sense {
	case LE:
		return math.Max(0, lhs-c.RHS)
	case GE:
		return math.Max(0, c.RHS-lhs)
	default:
		return math.Abs(lhs - c.RHS)
	}
}

// Satisfied reports whether Violation(values) <= tol.
func (c Constraint) Satisfied(values []float64, tol float64) bool {
	return c.Violation(values) <= tol
}

// Format renders the row with variable labels, e.g. "regression[0]: alpha[0] + beta[0] + e[0] = 1".
func (c Constraint) Format(vars *Variables) string {
	return c.Name() + ": " + c.Body.Format(vars) + " " + c.Sense.String() + " " + formatNum(c.RHS)
}

// Family is a named group of constraints that can be iterated more than once.
type Family interface {
	Name() string
	Doc() string
	Len() int
	All() iter.Seq[Constraint]
}

type listFamily struct {
	name, doc string
	rows      []Constraint
}

// NewFamily returns a Family over an explicit row slice. All yields copies,
// so callers cannot modify the stored rows.
func NewFamily(name, doc string, rows []Constraint) Family {
	return &listFamily{name: name, doc: doc, rows: rows}
}

func (f *listFamily) Name() string { return f.name }
func (f *listFamily) Doc() string  { return f.doc }
func (f *listFamily) Len() int     { return len(f.rows) }

func (f *listFamily) All() iter.Seq[Constraint] {
	return func(yield func(Constraint) bool) {
		for _, c := range f.rows {
			c.Body = c.Body.clone()
			if !yield(c) {
				return
			}
		}
	}
}

type streamFamily struct {
	name, doc string
	n         int
	gen       iter.Seq[Constraint]
}

// StreamFamily returns a Family whose rows are produced by gen on every
// iteration. n must equal the number of rows gen yields; rows are never
// stored.
func StreamFamily(name, doc string, n int, gen iter.Seq[Constraint]) Family {
	return &streamFamily{name: name, doc: doc, n: n, gen: gen}
}

func (f *streamFamily) Name() string              { return f.name }
func (f *streamFamily) Doc() string               { return f.doc }
func (f *streamFamily) Len() int                  { return f.n }
func (f *streamFamily) All() iter.Seq[Constraint] { return f.gen }
