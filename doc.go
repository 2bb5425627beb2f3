// Package curve3 provides a small set of 3D parametric curves and routines
// for working with heterogeneous collections of them.
//
// # Curves
//
// [SpaceCurve] describes curves in 3D space parametrized by a scalar. A
// curve can be evaluated at any parameter t, returning a [Vec3], commonly
// interpreted as a point in a Cartesian coordinate system, and it can report
// the first derivative of its position with respect to t. For the angular
// curves, t is an angle in radians.
//
// This package includes the following curves:
//   - [Circle]
//   - [Ellipse]
//   - [Helix]
//
// The set of curve variants is closed. Every curve reports its variant via
// [SpaceCurve.Kind], which allows selecting concrete variants from a mixed
// collection without resorting to open type switches. See [Circles] for an
// example of this.
//
// Curves are immutable value types. Their shape parameters are fixed at
// construction time, and the constructors replace non-positive radii with a
// default of 1. Evaluation is a pure function of the curve and t.
//
// # Collections
//
// [RandomCurves] generates mixed collections of curves, [Circles] extracts
// one variant, and [SortCirclesByRadius], [SumRadii] and [MeanRadius]
// reorder and aggregate the result. [Demo] strings these together and
// writes a human-readable report to a writer.
package curve3
