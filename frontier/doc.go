// Package frontier assembles shape-constrained frontier estimation models
// (convex nonparametric least squares and its relatives) for an external
// solver.
//
// # Overview
//
// Assemble takes observed data (inputs x, desirable outputs y, optional
// undesirable outputs b, optional isotonic weights) and a Config, and
// returns an immutable *model.Model containing:
//
//   - variables: alpha (free, VRS only), beta, gamma, delta (all >= 0),
//     residuals e (free) or ep, em (>= 0), and f (>= 0, log model only);
//   - an objective: least squares, quantile or expectile;
//   - constraint families: regression, frontier (log model), translation
//     (directional distance), and concavity over every ordered DMU pair.
//
// # Supported configurations
//
// Configurations are resolved through a declarative registry; Supported
// lists the entries. Frontier orientation (production or cost) is free in
// every entry:
//
//	standard,    additive,       VRS,     LS|Q|E, isotonic or not   CNLS, CQR, CER (+ I-prefix)
//	standard,    multiplicative, VRS|CRS, LS|Q|E, isotonic or not
//	directional, additive,       VRS,     LS|Q|E, with or without b CNLS-DDF, CQR-DDF, CER-DDF
//
// Anything else fails with a *ConfigError wrapping ErrUnsupported before a
// single variable is declared.
//
// # Concavity
//
// The concavity family has n(n−1) rows, minus the pairs (i, h) whose weight
// w[i][h] is exactly zero when a weight matrix is supplied. Rows are
// streamed on iteration and never stored.
//
// # Concurrency
//
// Assemble shares no state between calls. AssembleAll runs several
// configurations over one read-only dataset with errgroup.
//
// # Example
//
//	m, err := frontier.Assemble(frontier.Data{
//		X: shape.Scalars([]float64{1, 2, 3}),
//		Y: shape.Scalars([]float64{1, 2, 2}),
//	}, frontier.Config{Loss: frontier.LeastSquares()})
package frontier
