package curve3

import "math"

// Helix is a circular helix around the z axis, parametrized by angle. It
// advances by Step along z per full turn.
type Helix struct {
	Radius float64
	// Step is the z advance per turn of 2π radians. Unlike the radius it is
	// not validated: negative and zero values are meaningful and describe
	// helices that descend or degenerate into a circle.
	Step float64
}

var _ SpaceCurve = Helix{}

// NewHelix returns a helix with the given radius and step. A non-positive
// radius is replaced with 1; the step is kept as is.
func NewHelix(radius, step float64) Helix {
	return Helix{
		Radius: clampRadius(radius),
		Step:   step,
	}
}

// Pitch returns the z advance per full turn. It is an alias for the Step
// field.
func (h Helix) Pitch() float64 { return h.Step }

// Eval implements SpaceCurve. The point at t is
// (r cos t, r sin t, step·t / 2π).
func (h Helix) Eval(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{
		X: h.Radius * cos,
		Y: h.Radius * sin,
		Z: h.Step * t / (2 * math.Pi),
	}
}

// Deriv implements SpaceCurve. The derivative at t is
// (−r sin t, r cos t, step / 2π).
func (h Helix) Deriv(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{
		X: -h.Radius * sin,
		Y: h.Radius * cos,
		Z: h.Step / (2 * math.Pi),
	}
}

// Kind implements SpaceCurve.
func (h Helix) Kind() Kind { return KindHelix }

func (h Helix) IsInf() bool {
	return math.IsInf(h.Radius, 0) || math.IsInf(h.Step, 0)
}

func (h Helix) IsNaN() bool {
	return math.IsNaN(h.Radius) || math.IsNaN(h.Step)
}
