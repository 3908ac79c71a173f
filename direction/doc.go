// Package direction resolves the direction vectors (gx, gy, gb) used by
// directional distance function formulations.
//
// A Spec gives each component as Unspecified, a Scalar, a Uniform vector
// or an explicit PerDMU array. Resolve broadcasts scalars and uniform
// vectors into per-DMU rows, fills unspecified components with the
// output-oriented defaults (gx = 0, gy = 1, gb = 0) and rejects length
// mismatches and all-zero triples before any constraint is built.
package direction
