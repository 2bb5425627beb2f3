package curve3

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RandomCurves returns n curves. Each curve's variant is drawn uniformly
// from the three kinds and each shape parameter is drawn independently and
// uniformly from [1, 10]. The caller owns the randomness source and its
// seeding.
func RandomCurves(rng *rand.Rand, n int) []SpaceCurve {
	param := func() float64 {
		return 1 + 9*rng.Float64()
	}
	curves := make([]SpaceCurve, 0, n)
	for range n {
		switch rng.IntN(3) {
		case 0:
			curves = append(curves, NewCircle(param()))
		case 1:
			curves = append(curves, NewEllipse(param(), param()))
		default:
			curves = append(curves, NewHelix(param(), param()))
		}
	}
	return curves
}

// Circles returns the circles in curves, preserving their relative order.
func Circles(curves []SpaceCurve) []Circle {
	var circles []Circle
	for _, c := range curves {
		if c.Kind() == KindCircle {
			circles = append(circles, c.(Circle))
		}
	}
	return circles
}

// SortCirclesByRadius sorts circles in place by ascending radius. The sort
// is stable: circles of equal radius keep their relative order.
func SortCirclesByRadius(circles []Circle) {
	slices.SortStableFunc(circles, func(a, b Circle) int {
		return cmp.Compare(a.Radius, b.Radius)
	})
}

// SumRadii returns the sum of the radii of circles.
func SumRadii(circles []Circle) float64 {
	return floats.Sum(radii(circles))
}

// MeanRadius returns the mean radius of circles. It reports false if
// circles is empty.
func MeanRadius(circles []Circle) (float64, bool) {
	if len(circles) == 0 {
		return 0, false
	}
	return stat.Mean(radii(circles), nil), true
}

func radii(circles []Circle) []float64 {
	rs := make([]float64, len(circles))
	for i, c := range circles {
		rs[i] = c.Radius
	}
	return rs
}
