// File: methods_clone.go
// Role: cloning, the alternative branching strategy to UndoLast
// (spec.md §9 "Branch copying vs undo"). The search driver's default
// path is undo-on-return; Clone exists for callers that need
// independent graph state — notably search's optional Parallel mode,
// which gives each goroutine its own Clone of the seeded graph.
package ptgraph

// Clone returns a deep copy: an independent point slice reference
// (points are never mutated so sharing the backing array is safe) and
// independently owned edges/degree slices.
//
// Complexity: O(E) to copy edges and degrees.
func (g *PartialGraph) Clone() *PartialGraph {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	degree := make([]int, len(g.degree))
	copy(degree, g.degree)

	return &PartialGraph{
		points: g.points, // shared, read-only backing array
		edges:  edges,
		bounds: g.bounds,
		degree: degree,
	}
}

// CloneEmpty returns a copy with the same point set and degree bounds
// but no edges, mirroring Clone's signature without the edge payload.
func (g *PartialGraph) CloneEmpty() *PartialGraph {
	return New(g.points, g.bounds)
}
