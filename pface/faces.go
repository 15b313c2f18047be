// File: faces.go
// Role: half-edge face walk and bounded/unbounded classification.
package pface

import (
	"sort"

	"github.com/hyfi06/ppt4/geom"
	"github.com/hyfi06/ppt4/ptgraph"
)

type halfEdge struct{ u, v int }

// Faces returns the bounded faces of g as vertex cycles in traversal
// order, each of length ≥ 3. The unbounded (outer) face is identified
// by its negative signed area and discarded (spec.md §4.4).
//
// Complexity: O(E log E) for the per-vertex neighbor sort (E total
// neighbor entries across all vertices, sorted independently), O(E)
// for the half-edge walk (each of the 2E half-edges is visited once).
func Faces(g *ptgraph.PartialGraph) [][]int {
	order, pos := neighborOrder(g)
	visited := make(map[halfEdge]bool, 2*len(g.Edges()))

	var faces [][]int
	for _, e := range g.Edges() {
		for _, start := range [2]halfEdge{{e.A, e.B}, {e.B, e.A}} {
			if visited[start] {
				continue
			}
			cycle := walk(order, pos, visited, start)
			if len(cycle) < 3 {
				continue
			}
			if signedArea2(g.Points(), cycle) > 0 {
				faces = append(faces, cycle)
			}
		}
	}

	return faces
}

// neighborOrder returns, for each vertex v, its neighbors sorted in a
// single consistent CCW cyclic order (split at the positive-x
// half-plane, orientation tie-break within a half — spec.md §4.4),
// plus the inverse index (neighbor → position in order[v]) used by
// walk to find "the neighbor immediately clockwise from u."
func neighborOrder(g *ptgraph.PartialGraph) (order [][]int, pos []map[int]int) {
	n := g.N()
	order = make([][]int, n)
	pos = make([]map[int]int, n)

	for _, e := range g.Edges() {
		order[e.A] = append(order[e.A], e.B)
		order[e.B] = append(order[e.B], e.A)
	}

	pts := g.Points()
	for v := 0; v < n; v++ {
		vp := pts[v]
		nb := order[v]
		sort.Slice(nb, func(i, j int) bool {
			return less(vp, pts[nb[i]], pts[nb[j]])
		})
		pos[v] = make(map[int]int, len(nb))
		for i, w := range nb {
			pos[v][w] = i
		}
	}

	return order, pos
}

// less orders two points a, b around the common vertex v: first by
// half-plane (upper half including +x axis, then lower half), then by
// geom.Orient(v,a,b) within a half. geom.Orient(v,a,b) == CCW is
// equivalent to the standard cross product (a-v)×(b-v) being
// positive, which places a before b in a CCW sweep.
func less(v, a, b geom.Point) bool {
	ha, hb := half(v, a), half(v, b)
	if ha != hb {
		return ha < hb
	}

	return geom.Orient(v, a, b) == geom.CCW
}

// half returns 0 for directions in the upper half-plane (dy > 0) or
// along the positive X axis (dy == 0, dx > 0), 1 otherwise.
func half(v, p geom.Point) int {
	dx, dy := p.X-v.X, p.Y-v.Y
	if dy > 0 || (dy == 0 && dx > 0) {
		return 0
	}
	return 1
}

// walk follows half-edges starting at start until it returns to
// start, marking every half-edge it traverses as visited, and returns
// the vertex sequence (without repeating the first vertex at the end).
func walk(order [][]int, pos []map[int]int, visited map[halfEdge]bool, start halfEdge) []int {
	cycle := []int{start.u}
	cur := start
	for {
		visited[cur] = true
		cycle = append(cycle, cur.v)

		deg := len(order[cur.v])
		p := pos[cur.v][cur.u]
		w := order[cur.v][(p-1+deg)%deg]
		next := halfEdge{cur.v, w}
		if next == start {
			break
		}
		cur = next
	}

	return cycle[:len(cycle)-1]
}

// signedArea2 returns twice the signed area of the polygon described
// by cycle (indices into points), using the standard shoelace sum.
// Positive for a CCW-oriented cycle, negative for CW.
func signedArea2(points []geom.Point, cycle []int) int64 {
	var sum int64
	n := len(cycle)
	for i := 0; i < n; i++ {
		a := points[cycle[i]]
		b := points[cycle[(i+1)%n]]
		sum += int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
	}

	return sum
}
