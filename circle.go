package curve3

import "math"

// Circle is a circle in the z = 0 plane, centered on the origin and
// parametrized by angle.
type Circle struct {
	Radius float64
}

var _ SpaceCurve = Circle{}

// NewCircle returns a circle with the given radius. A non-positive radius is
// replaced with 1.
func NewCircle(radius float64) Circle {
	return Circle{Radius: clampRadius(radius)}
}

// Eval implements SpaceCurve. The point at t is
// (r cos t, r sin t, 0).
func (c Circle) Eval(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{X: c.Radius * cos, Y: c.Radius * sin}
}

// Deriv implements SpaceCurve. The derivative at t is
// (−r sin t, r cos t, 0).
func (c Circle) Deriv(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{X: -c.Radius * sin, Y: c.Radius * cos}
}

// Kind implements SpaceCurve.
func (c Circle) Kind() Kind { return KindCircle }

// Circumference returns the length of one full turn of the circle.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) IsInf() bool {
	return math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return math.IsNaN(c.Radius)
}
