// File: validate.go
// Role: PPT-candidate, full-PPT, and 4-PPT classification.
package ppt

import (
	"github.com/hyfi06/ppt4/geom"
	"github.com/hyfi06/ppt4/pface"
	"github.com/hyfi06/ppt4/ptgraph"
)

// IsPPTCandidate reports whether g's edge count equals 2N-3, the
// necessary (but not sufficient) cardinality condition of spec.md
// §4.5. It is cheap — O(1) given ptgraph tracks edge count via slice
// length — and is meant for pruning before the more expensive face
// shape check in IsPPT.
func IsPPTCandidate(g *ptgraph.PartialGraph) bool {
	return len(g.Edges()) == 2*g.N()-3
}

// IsPPT reports whether g is a valid pointed pseudo-triangulation:
// IsPPTCandidate holds and every bounded face is a pseudo-triangle
// (spec.md §9 Open Question (a): the face-shape check is required, not
// optional, for admission).
func IsPPT(g *ptgraph.PartialGraph) bool {
	if !IsPPTCandidate(g) {
		return false
	}

	faces := pface.Faces(g)
	for _, f := range faces {
		if !isPseudoTriangle(g.Points(), f) {
			return false
		}
	}

	return true
}

// Is4PPT reports whether g is a valid PPT and every vertex degree
// falls within g.Bounds() (default [2, 5], spec.md §4.5/§9 Open
// Question (b)).
func Is4PPT(g *ptgraph.PartialGraph) bool {
	if !IsPPT(g) {
		return false
	}

	bounds := g.Bounds()
	for _, d := range g.Degrees() {
		if d < bounds.Min || d > bounds.Max {
			return false
		}
	}

	return true
}

// isPseudoTriangle reports whether the CCW-oriented face cycle has
// exactly three convex corners (all others reflex). A corner is
// convex when the turn at that vertex matches the face's own CCW
// orientation (geom.Orient == CCW); general position (no three
// collinear points, ptgraph.ErrCollinearInput at construction)
// guarantees every corner is strictly convex or reflex.
func isPseudoTriangle(points []geom.Point, cycle []int) bool {
	n := len(cycle)
	if n < 3 {
		return false
	}

	convex := 0
	for i := 0; i < n; i++ {
		prev := points[cycle[(i-1+n)%n]]
		cur := points[cycle[i]]
		next := points[cycle[(i+1)%n]]
		if geom.Orient(prev, cur, next) == geom.CCW {
			convex++
		}
	}

	return convex == 3
}
