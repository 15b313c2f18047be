// File: construct.go
// Role: NewFromPoints — the graph_from_points operation of spec.md §6:
// validates general position, then seeds the convex hull boundary.
package ptgraph

import (
	"github.com/hyfi06/ppt4/geom"
	"github.com/hyfi06/ppt4/hull"
)

// NewFromPoints builds a PartialGraph over points, seeded with the
// convex-hull boundary edges (spec.md §4.3, invariant I5).
//
// spec.md §9 Open Question (c) left collinear-input handling
// undefined; this implementation resolves it by rejecting any input
// containing three collinear points with ErrCollinearInput, since
// general position is declared a precondition throughout spec.md and
// the core is better served failing fast than producing degenerate
// faces silently (spec.md §7).
//
// Complexity: O(N³) for the collinearity scan, O(N log N) for the
// hull, O(H) for seeding (H = hull size).
func NewFromPoints(points []geom.Point, bounds DegreeBounds) (*PartialGraph, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}
	if err := checkGeneralPosition(points); err != nil {
		return nil, err
	}

	g := New(points, bounds)
	h := hull.ConvexHull(points)
	for i := range h {
		u, v := h[i], h[(i+1)%len(h)]
		if err := g.AddEdge(u, v); err != nil {
			// Seeding the hull can only fail if the hull itself is
			// inconsistent (e.g. a degenerate 2-point "hull"), which
			// checkGeneralPosition and the len(points)<3 guard above
			// already rule out.
			return nil, err
		}
	}

	return g, nil
}

// checkGeneralPosition reports ErrCollinearInput if any three points
// in the set are collinear.
func checkGeneralPosition(points []geom.Point) error {
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if geom.Orient(points[i], points[j], points[k]) == geom.Collinear {
					return ErrCollinearInput
				}
			}
		}
	}

	return nil
}
