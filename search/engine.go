// File: engine.go
// Role: the backtracking enumeration engine (spec.md §4.6).
//
// We use a dedicated engine struct (instead of ad hoc recursion over
// loose parameters) to keep dependencies explicit and the hot path's
// mutable state predictable, in the same spirit as this module's
// branch-and-bound ancestry: one struct, one frontier slice, explicit
// undo on the way back up.
package search

import (
	"github.com/hyfi06/ppt4/ppt"
	"github.com/hyfi06/ppt4/ptgraph"
)

type engine struct {
	graph   *ptgraph.PartialGraph
	opts    Options
	target  int // 2N - 3
	result  Result
	stopped bool
}

// Enumerate runs the backtracking search from g's current edge set
// (typically a freshly hull-seeded graph) and returns every reachable
// 4-PPT. g is mutated during the search but restored to its original
// edge set before Enumerate returns (undo-on-return, spec.md §9).
func Enumerate(g *ptgraph.PartialGraph, opts Options) (*Result, error) {
	if opts.Parallel {
		return enumerateParallel(g, opts)
	}

	e := &engine{
		graph:  g,
		opts:   opts,
		target: 2*g.N() - 3,
	}
	e.result.Ordered = true

	candidates := g.CandidateEdges()
	e.search(candidates)
	e.result.Stopped = e.stopped

	return &e.result, nil
}

// search explores candidates[i:] for every i, following the monotone
// frontier rule: once candidates[i] is chosen, the recursive call only
// considers candidates[i+1:], which eliminates permutation duplicates
// without an explicit visited set (spec.md §4.6).
func (e *engine) search(candidates []ptgraph.Edge) {
	if e.stopped {
		return
	}
	if e.opts.shouldStop() {
		e.stopped = true
		return
	}
	e.opts.nodeVisited()

	if ppt.Is4PPT(e.graph) {
		e.result.Solutions = append(e.result.Solutions, e.graph.Clone())
		e.opts.solutionFound()
		return
	}
	if len(e.graph.Edges()) > e.target {
		e.opts.pruned(PruneOvershoot)
		return
	}
	if !e.opts.DisableShapePruning && !degreeFeasible(e.graph, candidates) {
		e.opts.pruned(PruneShape)
		return
	}

	for i, c := range candidates {
		if err := e.graph.AddEdge(c.A, c.B); err != nil {
			e.opts.pruned(PruneInsertion)
			continue
		}

		e.search(candidates[i+1:])
		e.graph.UndoLast(c.A, c.B)

		if e.stopped {
			return
		}
	}
}

// degreeFeasible reports whether every vertex can still reach its
// degree floor using only the edges remaining in candidates, and that
// no vertex has already exceeded the degree ceiling. Both checks are
// the "shape pruning" spec.md §4.6 describes as optional; enabled by
// default via Options.DisableShapePruning == false.
//
// Complexity: O(N + len(candidates)).
func degreeFeasible(g *ptgraph.PartialGraph, candidates []ptgraph.Edge) bool {
	bounds := g.Bounds()
	degrees := g.Degrees()
	need := make([]int, len(degrees))
	for v, d := range degrees {
		if d > bounds.Max {
			return false
		}
		if d < bounds.Min {
			need[v] = bounds.Min - d
		}
	}

	for _, c := range candidates {
		if need[c.A] > 0 {
			need[c.A]--
		}
		if need[c.B] > 0 {
			need[c.B]--
		}
	}

	for _, r := range need {
		if r > 0 {
			return false
		}
	}

	return true
}
