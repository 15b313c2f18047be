// File: methods.go
// Role: edge insertion/removal — the only mutators of PartialGraph.
// Determinism:
//   - AddEdge either leaves the graph byte-identical (on failure) or
//     inserts at the binary-searched position, preserving I1/I2/I3.
//   - UndoLast removes the named edge; called with the edge of the last
//     successful AddEdge, it is the undo-on-return half of spec.md §9's
//     "branch copying vs undo" design note and is the mechanism package
//     search uses for O(N) backtracking instead of O(N²) cloning.
package ptgraph

import (
	"sort"

	"github.com/hyfi06/ppt4/geom"
)

// canonical returns (min(u,v), max(u,v)).
func canonical(u, v int) (int, int) {
	if u < v {
		return u, v
	}
	return v, u
}

// search returns the index at which Edge{a,b} is, or should be
// inserted to keep g.edges sorted, and whether it is already present.
func (g *PartialGraph) search(a, b int) (pos int, found bool) {
	pos = sort.Search(len(g.edges), func(i int) bool {
		e := g.edges[i]
		return e.A > a || (e.A == a && e.B >= b)
	})
	found = pos < len(g.edges) && g.edges[pos].A == a && g.edges[pos].B == b

	return pos, found
}

// ContainsEdge reports whether the canonical edge (min(u,v),max(u,v))
// is currently stored.
func (g *PartialGraph) ContainsEdge(u, v int) bool {
	a, b := canonical(u, v)
	_, found := g.search(a, b)

	return found
}

// AddEdge attempts to insert the edge {u, v}.
//
// Contract (spec.md §4.2): on success, all invariants hold and the new
// edge is present; on failure, the graph is byte-identical to its
// pre-call state.
//
// Procedure: canonicalize, binary-search for position. If found,
// ErrAlreadyPresent. Otherwise scan existing edges, skipping any that
// share an endpoint with the candidate (the shared-endpoint exemption
// is applied here, not inside geom.SegmentsCross), and test the rest
// with geom.SegmentsCross. Any crossing rejects with ErrCrosses.
// Otherwise insert at the located position.
//
// Complexity: O(log E) to locate the position, O(E) to scan for
// crossings, O(E) worst case to shift the slice on insert.
func (g *PartialGraph) AddEdge(u, v int) error {
	if u == v || u < 0 || v < 0 || u >= g.N() || v >= g.N() {
		return ErrOutOfRange
	}

	a, b := canonical(u, v)
	pos, found := g.search(a, b)
	if found {
		return ErrAlreadyPresent
	}

	pa, pb := g.points[a], g.points[b]
	for _, e := range g.edges {
		if e.A == a || e.A == b || e.B == a || e.B == b {
			continue // shared-endpoint exemption: a touch, not a cross
		}
		if geom.SegmentsCross(pa, pb, g.points[e.A], g.points[e.B]) {
			return ErrCrosses
		}
	}

	g.edges = append(g.edges, Edge{})
	copy(g.edges[pos+1:], g.edges[pos:])
	g.edges[pos] = Edge{A: a, B: b}
	g.degree[a]++
	g.degree[b]++

	return nil
}

// UndoLast removes the edge {u, v} and decrements both endpoint
// degrees; if that edge is not present it does nothing. Package search
// calls it with the edge it just inserted, as a strict LIFO undo within
// one branch. It does not check that {u, v} was the most recently
// inserted edge.
//
// Complexity: O(E) to shift the slice.
func (g *PartialGraph) UndoLast(u, v int) {
	a, b := canonical(u, v)
	pos, found := g.search(a, b)
	if !found {
		return
	}

	copy(g.edges[pos:], g.edges[pos+1:])
	g.edges = g.edges[:len(g.edges)-1]
	g.degree[a]--
	g.degree[b]--
}

