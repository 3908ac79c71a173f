package frontier

import "github.com/katalvlaran/stoned/model"

// residuals is either a single free e or the split pair ep, em >= 0.
type residuals struct {
	e, ep, em *model.Block
}

// add appends sign·ε_i, where ε_i is e_i or ep_i − em_i.
func (r residuals) add(expr *model.LinearExpr, i int, sign float64) {
	if r.e != nil {
		expr.Add(r.e.ID(i, 0), sign)
		return
	}
	expr.Add(r.ep.ID(i, 0), sign)
	expr.Add(r.em.ID(i, 0), -sign)
}

// lossStrategy declares the residual blocks and builds the objective over them.
type lossStrategy interface {
	declare(vars *model.Variables, n int) (residuals, error)
	objective(r residuals, n int) model.Objective
}

func (l Loss) strategy() lossStrategy {
	switch l.Kind {
	case LossQuantile:
		return quantile{tau: l.Tau}
	case LossExpectile:
		return expectile{tau: l.Tau}
	default:
		return leastSquares{}
	}
}

type leastSquares struct{}

func (leastSquares) declare(vars *model.Variables, n int) (residuals, error) {
	e, err := vars.Declare(BlockE, "residuals", n, 1, model.Free)
	return residuals{e: e}, err
}

// objective is Σ e_i².
func (leastSquares) objective(r residuals, n int) model.Objective {
	obj := model.Objective{Sense: model.Minimize}
	for i := 0; i < n; i++ {
		obj.AddSquare(r.e.ID(i, 0), 1)
	}

	return obj
}

func declareSplit(vars *model.Variables, n int) (residuals, error) {
	ep, err := vars.Declare(BlockEP, "positive error term", n, 1, model.NonNegative)
	if err != nil {
		return residuals{}, err
	}
	em, err := vars.Declare(BlockEM, "negative error term", n, 1, model.NonNegative)

	return residuals{ep: ep, em: em}, err
}

type quantile struct{ tau float64 }

func (quantile) declare(vars *model.Variables, n int) (residuals, error) {
	return declareSplit(vars, n)
}

// objective is τ·Σ ep_i + (1−τ)·Σ em_i.
func (q quantile) objective(r residuals, n int) model.Objective {
	obj := model.Objective{Sense: model.Minimize}
	for i := 0; i < n; i++ {
		obj.Linear.Add(r.ep.ID(i, 0), q.tau)
	}
	for i := 0; i < n; i++ {
		obj.Linear.Add(r.em.ID(i, 0), 1-q.tau)
	}

	return obj
}

type expectile struct{ tau float64 }

func (expectile) declare(vars *model.Variables, n int) (residuals, error) {
	return declareSplit(vars, n)
}

// objective is τ·Σ ep_i² + (1−τ)·Σ em_i².
func (x expectile) objective(r residuals, n int) model.Objective {
	obj := model.Objective{Sense: model.Minimize}
	for i := 0; i < n; i++ {
		obj.AddSquare(r.ep.ID(i, 0), x.tau)
	}
	for i := 0; i < n; i++ {
		obj.AddSquare(r.em.ID(i, 0), 1-x.tau)
	}

	return obj
}
