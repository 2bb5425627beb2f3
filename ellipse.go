package curve3

import "math"

// Ellipse is an axis-aligned ellipse in the z = 0 plane, centered on the
// origin and parametrized by angle.
type Ellipse struct {
	// RadiusX is the semi-axis along x.
	RadiusX float64
	// RadiusY is the semi-axis along y.
	RadiusY float64
}

var _ SpaceCurve = Ellipse{}

// NewEllipse returns an ellipse with the given semi-axes. Each non-positive
// semi-axis is independently replaced with 1.
func NewEllipse(rx, ry float64) Ellipse {
	return Ellipse{
		RadiusX: clampRadius(rx),
		RadiusY: clampRadius(ry),
	}
}

// Radii returns the two semi-axes of the ellipse.
func (e Ellipse) Radii() (float64, float64) {
	return e.RadiusX, e.RadiusY
}

// Eval implements SpaceCurve. The point at t is
// (rx cos t, ry sin t, 0).
func (e Ellipse) Eval(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{X: e.RadiusX * cos, Y: e.RadiusY * sin}
}

// Deriv implements SpaceCurve. The derivative at t is
// (−rx sin t, ry cos t, 0).
func (e Ellipse) Deriv(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{X: -e.RadiusX * sin, Y: e.RadiusY * cos}
}

// Kind implements SpaceCurve.
func (e Ellipse) Kind() Kind { return KindEllipse }

func (e Ellipse) Area() float64 {
	return math.Pi * e.RadiusX * e.RadiusY
}

// Eccentricity returns the eccentricity of the ellipse, in [0, 1). It is 0
// for a circle.
func (e Ellipse) Eccentricity() float64 {
	a := max(e.RadiusX, e.RadiusY)
	b := min(e.RadiusX, e.RadiusY)
	return math.Sqrt(1 - (b*b)/(a*a))
}

func (e Ellipse) IsInf() bool {
	return math.IsInf(e.RadiusX, 0) || math.IsInf(e.RadiusY, 0)
}

func (e Ellipse) IsNaN() bool {
	return math.IsNaN(e.RadiusX) || math.IsNaN(e.RadiusY)
}
