// Package geom provides the vector and cubic Bézier arithmetic the
// rest of the project is built on.
//
// Everything here is a pure, total function over finite floats:
//
//   - [Vec]: immutable 2D value type with the usual operations
//   - [CurvePoint]: cubic Bézier position B(t)
//   - [CurveTangent]: cubic Bézier derivative B'(t)
//
// The only degenerate case is normalizing a zero-length vector, which
// returns the zero vector instead of failing.
package geom
