package curve3

import "fmt"

// Kind identifies the concrete variant of a [SpaceCurve].
type Kind uint8

const (
	KindCircle Kind = iota
	KindEllipse
	KindHelix
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "Circle"
	case KindEllipse:
		return "Ellipse"
	case KindHelix:
		return "Helix"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// SpaceCurve describes a curve in 3D space parametrized by a scalar.
//
// Both evaluation methods are pure functions of the curve's shape parameters
// and t, and they are defined for all real t.
type SpaceCurve interface {
	// Eval evaluates the curve at parameter t. For the angular curves, t is
	// an angle in radians.
	Eval(t float64) Vec3

	// Deriv evaluates the first derivative of the curve's position with
	// respect to t, at parameter t.
	Deriv(t float64) Vec3

	// Kind returns the variant tag of the curve.
	Kind() Kind
}

// clampRadius implements the constructor policy for radius-like shape
// parameters: non-positive values are silently replaced with 1.
func clampRadius(r float64) float64 {
	if r <= 0 {
		return 1
	}
	return r
}
