package curve3

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(x, y, tol float64) bool {
	return math.Abs(x-y) < tol
}

func approxVec3(a, b Vec3, tol float64) bool {
	return approxEqual(a.X, b.X, tol) &&
		approxEqual(a.Y, b.Y, tol) &&
		approxEqual(a.Z, b.Z, tol)
}

// finiteDiff approximates the derivative of c's position at t with a central
// difference.
func finiteDiff(c SpaceCurve, t float64) Vec3 {
	const h = 1e-6
	return c.Eval(t + h).Sub(c.Eval(t - h)).Div(2 * h)
}

// checkDeriv verifies that c's analytic derivative matches the finite
// difference of its position over a range of parameters.
func checkDeriv(t *testing.T, c SpaceCurve) {
	t.Helper()
	for _, tt := range []float64{-7.5, -math.Pi, -1, 0, 0.25, math.Pi / 4, 1, math.Pi, 2 * math.Pi, 42} {
		got := c.Deriv(tt)
		want := finiteDiff(c, tt)
		if !approxVec3(got, want, 1e-4) {
			t.Errorf("%v: derivative at t=%v is %v, finite difference gives %v", c.Kind(), tt, got, want)
		}
	}
}
