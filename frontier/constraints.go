package frontier

import (
	"iter"
	"math"

	"github.com/katalvlaran/stoned/direction"
	"github.com/katalvlaran/stoned/matrix"
	"github.com/katalvlaran/stoned/model"
	"github.com/katalvlaran/stoned/shape"
)

// Family names.
const (
	FamilyRegression  = "regression"
	FamilyFrontier    = "frontier"
	FamilyTranslation = "translation"
	FamilyConcavity   = "concavity"
)

// assembly is the read-only state shared by the family builders of one call.
type assembly struct {
	cfg     Config
	desc    *shape.Descriptor
	dirs    *direction.Directions // nil for standard formulations
	weights *matrix.Dense         // nil unless isotonic
	vars    *schema
}

// familyBuilder builds one constraint family.
type familyBuilder interface {
	build(a *assembly) model.Family
}

// perDMU materializes one row per DMU.
func perDMU(name, doc string, n int, row func(i int) model.Constraint) model.Family {
	rows := make([]model.Constraint, n)
	for i := range rows {
		rows[i] = row(i)
		rows[i].Family, rows[i].Row, rows[i].Col = name, i, -1
	}

	return model.NewFamily(name, doc, rows)
}

// additiveRegression: [α_i] + ⟨β_i, x_i⟩ + ε_i = y_i.
type additiveRegression struct{}

func (additiveRegression) build(a *assembly) model.Family {
	d, s := a.desc, a.vars
	return perDMU(FamilyRegression, "regression", d.N, func(i int) model.Constraint {
		var body model.LinearExpr
		s.addSupport(&body, d, i, i, 1)
		s.res.add(&body, i, 1)
		return model.Constraint{Body: model.Expr{Linear: body}, Sense: model.EQ, RHS: valueOf(d.Y, i, 0)}
	})
}

// directionalRegression: ⟨γ_i, y_i⟩ − [α_i] − ⟨β_i, x_i⟩ − ⟨δ_i, b_i⟩ + ε_i = 0.
type directionalRegression struct{}

func (directionalRegression) build(a *assembly) model.Family {
	d, s := a.desc, a.vars
	return perDMU(FamilyRegression, "directional regression", d.N, func(i int) model.Constraint {
		var body model.LinearExpr
		s.addSupport(&body, d, i, i, -1)
		s.res.add(&body, i, 1)
		return model.Constraint{Body: model.Expr{Linear: body}, Sense: model.EQ, RHS: 0}
	})
}

// logRegression: ε_i + log(f_i + 1) = log(y_i).
type logRegression struct{}

func (logRegression) build(a *assembly) model.Family {
	d, s := a.desc, a.vars
	return perDMU(FamilyRegression, "log-transformed regression", d.N, func(i int) model.Constraint {
		var body model.LinearExpr
		s.res.add(&body, i, 1)
		arg := model.LinearExpr{Const: 1}
		arg.Add(s.f.ID(i, 0), 1)
		return model.Constraint{
			Body:  model.Expr{Linear: body, Logs: []model.LogTerm{{Coef: 1, Arg: arg}}},
			Sense: model.EQ,
			RHS:   math.Log(valueOf(d.Y, i, 0)),
		}
	})
}

// frontierLink: f_i − [α_i] − ⟨β_i, x_i⟩ = −1.
type frontierLink struct{}

func (frontierLink) build(a *assembly) model.Family {
	d, s := a.desc, a.vars
	return perDMU(FamilyFrontier, "estimated frontier", d.N, func(i int) model.Constraint {
		var body model.LinearExpr
		body.Add(s.f.ID(i, 0), 1)
		s.addSupport(&body, d, i, i, -1)
		return model.Constraint{Body: model.Expr{Linear: body}, Sense: model.EQ, RHS: -1}
	})
}

// translation: ⟨β_i, gx_i⟩ + ⟨γ_i, gy_i⟩ + ⟨δ_i, gb_i⟩ = 1.
type translation struct{}

func (translation) build(a *assembly) model.Family {
	s := a.vars
	return perDMU(FamilyTranslation, "translation property", a.desc.N, func(i int) model.Constraint {
		var body model.LinearExpr
		addDot(&body, s.beta, a.dirs.X, i, i, 1)
		addDot(&body, s.gamma, a.dirs.Y, i, i, 1)
		if s.delta != nil {
			addDot(&body, s.delta, a.dirs.B, i, i, 1)
		}
		return model.Constraint{Body: model.Expr{Linear: body}, Sense: model.EQ, RHS: 1}
	})
}

// concavity streams the Afriat rows over ordered pairs (i, h), i ≠ h:
//
//	w_ii·φ_i(i) − w_ih·φ_h(i) <= 0   (production)
//	w_ii·φ_i(i) − w_ih·φ_h(i) >= 0   (cost)
//
// w ≡ 1 without a weight matrix. With one, the pair is skipped iff
// w[i][h] == 0; w[h][i] is never consulted.
type concavity struct{}

func (concavity) build(a *assembly) model.Family {
	n := a.desc.N
	sense := model.LE
	if a.cfg.Frontier == Cost {
		sense = model.GE
	}

	count := n * (n - 1)
	if a.weights != nil {
		count -= skippedPairs(a.weights)
	}

	gen := func(yield func(model.Constraint) bool) {
		d, s := a.desc, a.vars
		for i := 0; i < n; i++ {
			wii := 1.0
			var wrow []float64
			if a.weights != nil {
				wrow = rowOf(a.weights, i)
				wii = wrow[i]
			}
			for h := 0; h < n; h++ {
				if h == i {
					continue
				}
				wih := 1.0
				if wrow != nil {
					if wrow[h] == 0 {
						continue
					}
					wih = wrow[h]
				}
				var body model.LinearExpr
				s.addSupport(&body, d, i, i, wii)
				s.addSupport(&body, d, h, i, -wih)
				c := model.Constraint{
					Family: FamilyConcavity,
					Row:    i,
					Col:    h,
					Body:   model.Expr{Linear: body},
					Sense:  sense,
				}
				if !yield(c) {
					return
				}
			}
		}
	}

	return model.StreamFamily(FamilyConcavity, "concavity (Afriat)", count, iter.Seq[model.Constraint](gen))
}

// skippedPairs counts off-diagonal zero weights.
func skippedPairs(w *matrix.Dense) int {
	skipped := 0
	w.Do(func(i, h int, v float64) bool {
		if i != h && v == 0 {
			skipped++
		}
		return true
	})

	return skipped
}
