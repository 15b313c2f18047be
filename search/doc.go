// Package search implements the backtracking enumeration driver of
// spec.md §4.6: starting from a hull-seeded ptgraph.PartialGraph, it
// explores the monotone frontier of candidate edges, admitting a
// branch only when ppt.Is4PPT holds, and pruning branches where
// AddEdge fails (crossing or duplicate), where the edge count has
// overshot 2N-3, or — optionally — where a vertex can no longer reach
// its degree floor from the remaining candidates.
//
// The driver is single-threaded and synchronous by contract (spec.md
// §5): Enumerate mutates its input graph during the search and
// restores it via PartialGraph.UndoLast before returning, following
// spec.md §9's "undo-on-return" design note rather than cloning a
// graph per branch. The sole exception is Options.Parallel, which
// gives each first-level branch its own Clone so independent
// goroutines never touch shared graph state (spec.md §5's permitted
// parallel extension).
//
//	go get github.com/hyfi06/ppt4/search
package search
