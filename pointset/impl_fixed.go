package pointset

import (
	"fmt"
	"math"

	"github.com/hyfi06/ppt4/geom"
)

// Triangle returns a Constructor building a fixed non-degenerate
// triangle, the minimal input spec.md's examples work through.
func Triangle() Constructor {
	return func(cfg pointConfig) ([]geom.Point, error) {
		return []geom.Point{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 5, Y: 9},
		}, nil
	}
}

// Square returns a Constructor building an axis-aligned square with
// the given side length, seeded CCW from the origin.
func Square(side int32) Constructor {
	return func(cfg pointConfig) ([]geom.Point, error) {
		if side <= 0 {
			return nil, fmt.Errorf("Square: side=%d: %w", side, ErrInvalidRadius)
		}
		return []geom.Point{
			{X: 0, Y: 0},
			{X: side, Y: 0},
			{X: side, Y: side},
			{X: 0, Y: side},
		}, nil
	}
}

// RegularPolygon returns a Constructor building n points laid out on a
// circle of the given integer radius (rounded to the nearest lattice
// point, since geom.Point uses exact integer coordinates), optionally
// adding a center point — the pentagon-with-center shape spec.md's
// face-enumeration example uses.
//
// n must be at least 3. Coordinates are computed with float64 trig and
// rounded, so for very small radii adjacent vertices may coincide or
// become collinear with the center. With withCenter and an even n,
// each pair of opposite vertices is collinear with the center at any
// radius. Callers needing a guaranteed
// general-position set should verify with a validity check downstream
// (ptgraph.NewFromPoints already does this) or prefer a larger radius.
func RegularPolygon(n int, radius int32, withCenter bool) Constructor {
	return func(cfg pointConfig) ([]geom.Point, error) {
		if n < 3 {
			return nil, fmt.Errorf("RegularPolygon: n=%d: %w", n, ErrTooFewPoints)
		}
		if radius <= 0 {
			return nil, fmt.Errorf("RegularPolygon: radius=%d: %w", radius, ErrInvalidRadius)
		}

		pts := make([]geom.Point, 0, n+1)
		if withCenter {
			pts = append(pts, geom.Point{X: 0, Y: 0})
		}
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			pts = append(pts, geom.Point{
				X: int32(math.Round(float64(radius) * math.Cos(theta))),
				Y: int32(math.Round(float64(radius) * math.Sin(theta))),
			})
		}
		return pts, nil
	}
}
