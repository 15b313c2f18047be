// File: methods_edges.go
// Role: candidate-edge enumeration and degree-bound feasibility
// queries used by package search for pruning.
package ptgraph

// CandidateEdges returns the ordered sequence of canonical pairs
// (i,j), i<j, not currently present in the graph — spec.md §3's
// "candidate edge list," the monotone frontier the search driver
// branches over.
//
// Complexity: O(N² ) time and space; this is the O(N²) frontier memory
// spec.md §5 budgets per search depth (by index, not by copy — callers
// slice into the result rather than copying it per branch).
func (g *PartialGraph) CandidateEdges() []Edge {
	n := g.N()
	out := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.ContainsEdge(i, j) {
				out = append(out, Edge{A: i, B: j})
			}
		}
	}

	return out
}

// Degrees returns a copy of the current per-vertex degree slice.
func (g *PartialGraph) Degrees() []int {
	out := make([]int, len(g.degree))
	copy(out, g.degree)

	return out
}

// MinMaxDegree returns the minimum and maximum vertex degree
// currently in the graph. Returns (0, 0) for a graph with no
// vertices.
func (g *PartialGraph) MinMaxDegree() (min, max int) {
	if len(g.degree) == 0 {
		return 0, 0
	}

	min, max = g.degree[0], g.degree[0]
	for _, d := range g.degree[1:] {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	return min, max
}
