package curve3

import (
	"fmt"
	"io"
	"math"
)

// Demo writes a report on curves to w. It evaluates every curve at t = π/4,
// then extracts the circles, sorts them by ascending radius, and sums their
// radii. The report consists of three blocks separated by blank lines: one
// evaluation line per curve in collection order, one radius line per circle
// in ascending order, and the total.
func Demo(w io.Writer, curves []SpaceCurve) error {
	const t = math.Pi / 4

	var err error
	printf := func(format string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}

	printf("Curves at t = PI/4:\n")
	for _, c := range curves {
		printf("Point: %v | Derivative: %v\n", c.Eval(t), c.Deriv(t))
	}

	circles := Circles(curves)
	SortCirclesByRadius(circles)

	printf("\nSorted circles by radius:\n")
	for _, c := range circles {
		printf("Radius: %g\n", c.Radius)
	}

	printf("\nTotal sum of radii: %g\n", SumRadii(circles))
	return err
}
