package frontier

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/stoned/direction"
	"github.com/katalvlaran/stoned/matrix"
	"github.com/katalvlaran/stoned/model"
	"github.com/katalvlaran/stoned/shape"
)

// unknownModel labels failures that happen before a registry entry is resolved.
const unknownModel = "unknown"

// Assemble builds the optimization model for data under cfg.
//
// Stages, each failing the whole call with no partial model:
//  1. cfg.Validate (ConfigError).
//  2. shape.Describe (shape.Error).
//  3. weight matrix check (ConfigError wrapping ErrInvalidWeights).
//  4. registry lookup (ConfigError wrapping ErrUnsupported).
//  5. positivity of y for the log model (shape.Error wrapping shape.ErrDomain).
//  6. direction.Resolve for directional formulations (direction.Error).
//  7. variables, objective, constraint families, model.New.
//
// Assemble does no I/O beyond logging and never calls a solver.
func Assemble(data Data, cfg Config, opts ...Option) (*model.Model, error) {
	o := gatherOptions(opts...)
	start := time.Now()

	m, name, err := assemble(data, cfg, o)
	if err != nil {
		o.metrics.fail(name)
		o.logger.Debug("frontier assembly failed", zap.String("model", name), zap.Error(err))
		return nil, err
	}

	elapsed := time.Since(start)
	o.metrics.observe(m, name, elapsed)
	o.logger.Debug("assembled frontier model",
		zap.String("model", m.Name()),
		zap.Int("n", data.Y.Len()),
		zap.Int("variables", m.NumVariables()),
		zap.Int("constraints", m.NumConstraints()),
		zap.Duration("elapsed", elapsed),
	)

	return m, nil
}

func assemble(data Data, cfg Config, o Options) (*model.Model, string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, unknownModel, err
	}
	desc, err := shape.Describe(data.Y, data.X, data.B)
	if err != nil {
		return nil, unknownModel, err
	}
	weights, err := weightMatrix(data.Weights, desc.N)
	if err != nil {
		return nil, unknownModel, err
	}

	key := registryKey{
		formulation: standard,
		errorModel:  cfg.ErrorModel,
		rts:         cfg.ReturnsToScale,
		loss:        cfg.Loss.Kind,
		undesirable: desc.Q > 0,
		isotonic:    weights != nil,
	}
	if cfg.Direction != nil {
		key.formulation = directional
	}
	rc, ok := registry[key]
	if !ok {
		return nil, unknownModel, &ConfigError{Field: "config", Value: key.String(), Err: ErrUnsupported}
	}
	if key.formulation == standard && desc.P != 1 {
		return nil, rc.name, &ConfigError{Field: "y", Value: fmt.Sprintf("%d outputs", desc.P), Err: ErrUnsupported}
	}
	name := rc.name
	if o.name != "" {
		name = o.name
	}

	if cfg.ErrorModel == Multiplicative {
		if err = desc.RequirePositive(); err != nil {
			return nil, name, err
		}
	}

	a := &assembly{cfg: cfg, desc: desc, weights: weights}
	if key.formulation == directional {
		if a.dirs, err = direction.Resolve(*cfg.Direction, desc.N, desc.M, desc.P, desc.Q); err != nil {
			return nil, name, err
		}
	}

	loss := cfg.Loss.strategy()
	if a.vars, err = declareVariables(desc, key, loss); err != nil {
		return nil, name, err
	}
	obj := loss.objective(a.vars.res, desc.N)

	families := make([]model.Family, 0, len(rc.families))
	for _, fb := range rc.families {
		families = append(families, fb.build(a))
	}

	m, err := model.New(name, a.vars.vars, obj, families...)
	if err != nil {
		return nil, name, err
	}

	return m, name, nil
}

// weightMatrix validates the isotonic prior weights; nil or empty means none.
func weightMatrix(w [][]float64, n int) (*matrix.Dense, error) {
	if len(w) == 0 {
		return nil, nil
	}
	d, err := matrix.FromRows(w)
	if err != nil {
		return nil, &ConfigError{Field: "weights", Value: err.Error(), Err: ErrInvalidWeights}
	}
	if err = matrix.ValidateSquare(d); err == nil {
		err = matrix.ValidateRows(d, n)
	}
	if err != nil {
		return nil, &ConfigError{Field: "weights", Value: fmt.Sprintf("%d×%d for n=%d", d.Rows(), d.Cols(), n), Err: ErrInvalidWeights}
	}

	return d, nil
}
