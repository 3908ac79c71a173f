// Package stoned assembles shape-constrained frontier estimation models:
// convex nonparametric least squares (CNLS) and its quantile, expectile,
// isotonic, multiplicative and directional-distance relatives, as used in
// StoNED efficiency analysis.
//
// 🚀 What is stoned?
//
//	A model builder, not a solver. Given observed inputs x, desirable
//	outputs y and optional undesirable outputs b for n decision-making
//	units (DMUs), it produces an immutable optimization model:
//		• Variables: alpha, beta, gamma, delta, residuals e / ep, em, f
//		• Objective: least squares, quantile (τ) or expectile (τ)
//		• Constraints: regression, frontier link, translation, concavity
//
// Any QP/LP/NLP solver can consume the result through model.Solver.
//
// ✨ Guarantees
//
//   - Deterministic: same data and config give the same rows in the same
//     order (model.(*Model).Fingerprint proves it)
//   - Atomic: a rejected configuration or malformed column returns an
//     error and no partial model
//   - Streamed concavity: the n(n−1) pairwise rows are generated on
//     iteration, never stored
//
// Packages:
//
//	matrix/: row-major Dense storage and validators for the data
//	shape/: classifies x, y, b columns into (n, m, p, q)
//	direction/: resolves directional vectors gx, gy, gb
//	model/: variables, expressions, constraint families, solver boundary
//	frontier/: configuration registry and the assembler
//	cmd/stoned: CLI: CSV + YAML in, summary and JSON-lines model out
package stoned
