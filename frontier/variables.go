package frontier

import (
	"github.com/katalvlaran/stoned/matrix"
	"github.com/katalvlaran/stoned/model"
	"github.com/katalvlaran/stoned/shape"
)

// Block names, stable across every formulation.
const (
	BlockAlpha = "alpha"
	BlockBeta  = "beta"
	BlockGamma = "gamma"
	BlockDelta = "delta"
	BlockE     = "e"
	BlockEP    = "ep"
	BlockEM    = "em"
	BlockF     = "f"
)

// schema holds the blocks declared for one assembly; absent blocks are nil.
type schema struct {
	vars  *model.Variables
	alpha *model.Block
	beta  *model.Block
	gamma *model.Block
	delta *model.Block
	res   residuals
	f     *model.Block
}

// declareVariables creates the blocks required by key for the dimensions in d.
// Slope blocks are always NonNegative.
func declareVariables(d *shape.Descriptor, key registryKey, loss lossStrategy) (*schema, error) {
	s := &schema{vars: model.NewVariables()}
	var err error

	if key.rts == VariableRTS {
		if s.alpha, err = s.vars.Declare(BlockAlpha, "intercept per DMU", d.N, 1, model.Free); err != nil {
			return nil, err
		}
	}
	if s.beta, err = s.vars.Declare(BlockBeta, "input slopes", d.N, d.M, model.NonNegative); err != nil {
		return nil, err
	}
	if key.formulation == directional {
		if s.gamma, err = s.vars.Declare(BlockGamma, "desirable-output slopes", d.N, d.P, model.NonNegative); err != nil {
			return nil, err
		}
		if d.Q > 0 {
			if s.delta, err = s.vars.Declare(BlockDelta, "undesirable-output slopes", d.N, d.Q, model.NonNegative); err != nil {
				return nil, err
			}
		}
	}
	if s.res, err = loss.declare(s.vars, d.N); err != nil {
		return nil, err
	}
	if key.errorModel == Multiplicative {
		if s.f, err = s.vars.Declare(BlockF, "estimated frontier", d.N, 1, model.NonNegative); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// addSupport adds w·φ_k(i): the hyperplane of DMU k evaluated at DMU i,
// [α_k] + ⟨β_k, x_i⟩ + ⟨δ_k, b_i⟩ − ⟨γ_k, y_i⟩.
func (s *schema) addSupport(e *model.LinearExpr, d *shape.Descriptor, k, i int, w float64) {
	if s.alpha != nil {
		e.Add(s.alpha.ID(k, 0), w)
	}
	addDot(e, s.beta, d.X, k, i, w)
	if s.gamma != nil {
		addDot(e, s.gamma, d.Y, k, i, -w)
	}
	if s.delta != nil {
		addDot(e, s.delta, d.B, k, i, w)
	}
}

// addDot adds w·⟨blk_k, data_i⟩.
func addDot(e *model.LinearExpr, blk *model.Block, data *matrix.Dense, k, i int, w float64) {
	for j, v := range rowOf(data, i) {
		e.Add(blk.ID(k, j), w*v)
	}
}

// rowOf is RowView for a row index already validated against n; it panics
// when out of range, like Block.ID.
func rowOf(d *matrix.Dense, i int) []float64 {
	row, err := d.RowView(i)
	if err != nil {
		panic(err)
	}

	return row
}

// valueOf is At for validated indices; it panics when out of range.
func valueOf(d *matrix.Dense, i, j int) float64 {
	v, err := d.At(i, j)
	if err != nil {
		panic(err)
	}

	return v
}
