package model

// ObjSense selects minimization or maximization.
type ObjSense int8

const (
	Minimize ObjSense = iota
	Maximize
)

func (s ObjSense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// QuadTerm is Coef·x[I]·x[J].
type QuadTerm struct {
	I, J VarID
	Coef float64
}

// Objective is Linear + Σ Quadratic.
type Objective struct {
	Sense     ObjSense
	Linear    LinearExpr
	Quadratic []QuadTerm
}

// AddSquare appends c·x[v]²; zero coefficients are dropped.
func (o *Objective) AddSquare(v VarID, c float64) {
	if c == 0 {
		return
	}
	o.Quadratic = append(o.Quadratic, QuadTerm{I: v, J: v, Coef: c})
}

// IsQuadratic reports whether o has quadratic terms.
func (o Objective) IsQuadratic() bool { return len(o.Quadratic) > 0 }

// Evaluate returns the objective value at values.
func (o Objective) Evaluate(values []float64) float64 {
	s := o.Linear.Evaluate(values)
	for _, q := range o.Quadratic {
		s += q.Coef * values[q.I] * values[q.J]
	}

	return s
}

func (o Objective) clone() Objective {
	o.Linear = o.Linear.clone()
	if o.Quadratic != nil {
		o.Quadratic = append([]QuadTerm(nil), o.Quadratic...)
	}

	return o
}

func (o Objective) varIDs(yield func(VarID) bool) {
	for _, t := range o.Linear.Terms {
		if !yield(t.Var) {
			return
		}
	}
	for _, q := range o.Quadratic {
		if !yield(q.I) || !yield(q.J) {
			return
		}
	}
}
