package model

import (
	"fmt"
	"iter"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
)

// Model is an immutable optimization problem: variables with bounds, one
// objective and an ordered list of constraint families.
type Model struct {
	name     string
	vars     *Variables
	obj      Objective
	families []Family
	byName   map[string]Family
	nRows    int
}

// New assembles a Model and freezes vars.
//
// Errors:
//   - ErrNilVariables when vars is nil.
//   - ErrUnknownVar when the objective references an undeclared id.
//   - ErrDuplicateFamily when two families share a name.
func New(name string, vars *Variables, obj Objective, families ...Family) (*Model, error) {
	if vars == nil {
		return nil, ErrNilVariables
	}
	for id := range obj.varIDs {
		if !vars.valid(id) {
			return nil, fmt.Errorf("model: objective references x%d: %w", id, ErrUnknownVar)
		}
	}

	m := &Model{
		name:     name,
		vars:     vars,
		obj:      obj.clone(),
		families: make([]Family, 0, len(families)),
		byName:   make(map[string]Family, len(families)),
	}
	for _, f := range families {
		if _, dup := m.byName[f.Name()]; dup {
			return nil, fmt.Errorf("model: family %q: %w", f.Name(), ErrDuplicateFamily)
		}
		m.byName[f.Name()] = f
		m.families = append(m.families, f)
		m.nRows += f.Len()
	}
	vars.frozen = true

	return m, nil
}

// Name returns the model name, e.g. "CNLS".
func (m *Model) Name() string { return m.name }

// Variables returns the frozen variable set.
func (m *Model) Variables() *Variables { return m.vars }

// Objective returns a copy of the objective; modifying it does not affect m.
func (m *Model) Objective() Objective { return m.obj.clone() }

// NumVariables returns the total number of scalar variables.
func (m *Model) NumVariables() int { return m.vars.Len() }

// NumConstraints returns the total number of rows over all families.
func (m *Model) NumConstraints() int { return m.nRows }

// Family returns the family named name, if present.
func (m *Model) Family(name string) (Family, bool) {
	f, ok := m.byName[name]
	return f, ok
}

// Families returns the constraint families in assembly order.
func (m *Model) Families() []Family {
	out := make([]Family, len(m.families))
	copy(out, m.families)

	return out
}

// Constraints iterates every row of every family in assembly order.
func (m *Model) Constraints() iter.Seq[Constraint] {
	return func(yield func(Constraint) bool) {
		for _, f := range m.families {
			for c := range f.All() {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Violation is one unsatisfied constraint or bound.
type Violation struct {
	Name   string
	Family string
	Amount float64
}

// BoundsFamily is the Family reported by Check for variable-bound violations.
const BoundsFamily = "bounds"

// Check evaluates every bound and constraint at values and returns those
// violated by more than tol, bounds first.
func (m *Model) Check(values []float64, tol float64) ([]Violation, error) {
	if len(values) != m.vars.Len() {
		return nil, fmt.Errorf("model: check: got %d values, want %d: %w", len(values), m.vars.Len(), ErrValuesLength)
	}

	var out []Violation
	for _, b := range m.vars.blocks {
		for k := 0; k < b.Len(); k++ {
			id := b.offset + VarID(k)
			if amt := b.bounds.Violation(values[id]); amt > tol {
				out = append(out, Violation{Name: b.Label(id), Family: BoundsFamily, Amount: amt})
			}
		}
	}
	for c := range m.Constraints() {
		if amt := c.Violation(values); amt > tol {
			out = append(out, Violation{Name: c.Name(), Family: c.Family, Amount: amt})
		}
	}

	return out, nil
}

// MaxViolation returns the largest amount in vs, or 0 when vs is empty.
func MaxViolation(vs []Violation) float64 {
	if len(vs) == 0 {
		return 0
	}
	amounts := make([]float64, len(vs))
	for i, v := range vs {
		amounts[i] = v.Amount
	}

	return floats.Max(amounts)
}

// BlockSummary describes one variable block.
type BlockSummary struct {
	Name   string
	Rows   int
	Cols   int
	Bounds Bounds
}

// FamilySummary describes one constraint family.
type FamilySummary struct {
	Name string
	Rows int
}

// Summary is a count-level description of a Model.
type Summary struct {
	Name           string
	Blocks         []BlockSummary
	Families       []FamilySummary
	NumVariables   int
	NumConstraints int
	Quadratic      bool
}

// Summary returns per-block and per-family counts.
func (m *Model) Summary() Summary {
	s := Summary{
		Name:           m.name,
		NumVariables:   m.vars.Len(),
		NumConstraints: m.nRows,
		Quadratic:      m.obj.IsQuadratic(),
	}
	for _, b := range m.vars.blocks {
		s.Blocks = append(s.Blocks, BlockSummary{Name: b.name, Rows: b.rows, Cols: b.cols, Bounds: b.bounds})
	}
	for _, f := range m.families {
		s.Families = append(s.Families, FamilySummary{Name: f.Name(), Rows: f.Len()})
	}

	return s
}

// String renders s as an aligned table.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "model %s: %d variables, %d constraints\n", s.Name, s.NumVariables, s.NumConstraints)
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, blk := range s.Blocks {
		fmt.Fprintf(w, "  var\t%s\t%d×%d\t%s\n", blk.Name, blk.Rows, blk.Cols, blk.Bounds)
	}
	for _, f := range s.Families {
		fmt.Fprintf(w, "  con\t%s\t%d\n", f.Name, f.Rows)
	}
	_ = w.Flush()

	return b.String()
}
