package curve3

import (
	"math/rand/v2"
	"testing"
)

func TestCircles(t *testing.T) {
	curves := []SpaceCurve{
		NewCircle(3),
		NewEllipse(2, 5),
		NewHelix(1, 4),
		NewCircle(0.5),
		NewEllipse(9, 9),
		NewCircle(7),
	}

	// The filter keeps exactly the circles, in their original order.
	diff(t, []Circle{{3}, {0.5}, {7}}, Circles(curves))

	diff(t, []Circle(nil), Circles(nil))
	diff(t, []Circle(nil), Circles([]SpaceCurve{NewHelix(1, 1), NewEllipse(2, 2)}))
}

func TestSortCirclesByRadius(t *testing.T) {
	circles := []Circle{{4}, {1}, {8}, {1}, {2.5}}
	SortCirclesByRadius(circles)
	diff(t, []Circle{{1}, {1}, {2.5}, {4}, {8}}, circles)

	for i := 0; i < len(circles)-1; i++ {
		if circles[i].Radius > circles[i+1].Radius {
			t.Errorf("circles out of order at %d: %v > %v", i, circles[i].Radius, circles[i+1].Radius)
		}
	}
}

func TestSumRadii(t *testing.T) {
	if got := SumRadii(nil); got != 0 {
		t.Errorf("got sum %v for no circles, expected 0", got)
	}
	circles := []Circle{{3}, {1}, {0.5}}
	if got, want := SumRadii(circles), 4.5; !approxEqual(got, want, 1e-12) {
		t.Errorf("got sum %v, expected %v", got, want)
	}

	// The sum doesn't depend on the order of the circles, up to floating
	// point tolerance.
	SortCirclesByRadius(circles)
	if got, want := SumRadii(circles), 4.5; !approxEqual(got, want, 1e-12) {
		t.Errorf("got sum %v after sorting, expected %v", got, want)
	}
}

func TestMeanRadius(t *testing.T) {
	if _, ok := MeanRadius(nil); ok {
		t.Error("got a mean for no circles")
	}
	mean, ok := MeanRadius([]Circle{{3}, {1}, {0.5}})
	if !ok {
		t.Fatal("got no mean for three circles")
	}
	if want := 1.5; !approxEqual(mean, want, 1e-12) {
		t.Errorf("got mean %v, expected %v", mean, want)
	}
}

func TestRandomCurves(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	curves := RandomCurves(rng, 200)
	if len(curves) != 200 {
		t.Fatalf("got %d curves, expected 200", len(curves))
	}

	seen := make(map[Kind]int)
	for _, c := range curves {
		seen[c.Kind()]++

		var params []float64
		switch c := c.(type) {
		case Circle:
			params = []float64{c.Radius}
		case Ellipse:
			params = []float64{c.RadiusX, c.RadiusY}
		case Helix:
			params = []float64{c.Radius, c.Step}
		default:
			t.Fatalf("unexpected curve type %T", c)
		}
		for _, p := range params {
			if p < 1 || p > 10 {
				t.Errorf("%v has shape parameter %v outside [1, 10]", c.Kind(), p)
			}
		}
	}

	// With 200 draws, all three variants all but certainly occur.
	for _, k := range []Kind{KindCircle, KindEllipse, KindHelix} {
		if seen[k] == 0 {
			t.Errorf("no %v in 200 random curves", k)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCircle, "Circle"},
		{KindEllipse, "Ellipse"},
		{KindHelix, "Helix"},
		{Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("got %q, expected %q", got, tt.want)
		}
	}
}
