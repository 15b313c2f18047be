// File: hull.go
// Role: monotone-chain convex hull over point indices.
package hull

import (
	"sort"

	"github.com/hyfi06/ppt4/geom"
)

// ConvexHull returns the indices of points forming the convex hull of
// the given point set, ordered counter-clockwise and starting at the
// lexicographically smallest point (ascending (X,Y)), without
// repeating the first index at the end.
//
// Algorithm (spec.md §4.3): sort indices lexicographically; build the
// lower chain scanning ascending, popping while the last three points
// do not make a strict CCW turn; build the upper chain scanning
// descending with the same rule; drop the seam element of each chain
// and concatenate. Collinear points on a hull edge are excluded by the
// strict-CCW popping rule.
//
// Complexity: O(N log N) for the sort, O(N) for the two chain builds.
func ConvexHull(points []geom.Point) []int {
	n := len(points)
	if n < 3 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		pi, pj := points[idx[i]], points[idx[j]]
		if pi.X != pj.X {
			return pi.X < pj.X
		}
		return pi.Y < pj.Y
	})

	lower := buildChain(points, idx)
	upperIdx := make([]int, len(idx))
	for i, v := range idx {
		upperIdx[len(idx)-1-i] = v
	}
	upper := buildChain(points, upperIdx)

	// Drop the seam (last element) of each chain before concatenating.
	hullPts := make([]int, 0, len(lower)+len(upper)-2)
	hullPts = append(hullPts, lower[:len(lower)-1]...)
	hullPts = append(hullPts, upper[:len(upper)-1]...)

	return hullPts
}

// buildChain scans order (already sorted by the caller) and builds
// one monotone chain, popping the last accepted point whenever the
// triple (second-last, last, current) is not a strict CCW turn.
func buildChain(points []geom.Point, order []int) []int {
	chain := make([]int, 0, len(order))
	for _, i := range order {
		for len(chain) >= 2 {
			a, b := points[chain[len(chain)-2]], points[chain[len(chain)-1]]
			if geom.Orient(a, b, points[i]) == geom.CCW {
				break
			}
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, i)
	}

	return chain
}
