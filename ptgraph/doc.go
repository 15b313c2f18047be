// Package ptgraph defines PartialGraph: the planar-graph state that
// supports incremental non-crossing edge insertion on a fixed point
// set, and the invariants it preserves at every public boundary.
//
// Invariants (hold after every successful call, per spec.md §3):
//
//	I1 (canonical) — every stored edge (a,b) satisfies a < b.
//	I2 (sorted, unique) — the edge slice is strictly increasing.
//	I3 (planar) — no two stored edges cross (geom.SegmentsCross, with
//	              the shared-endpoint exemption applied by AddEdge).
//	I4 (bounded) — every edge references indices in [0, N).
//	I5 (hull closure) — after NewFromPoints, the hull polygon is a
//	              subset of the edges.
//
// PartialGraph is deliberately not safe for concurrent mutation: the
// enumeration engine in package search is single-threaded and
// synchronous by contract (spec.md §5), and each branch of its search
// either clones a PartialGraph or mutates-then-undoes it on a single
// goroutine. The one exception is search's optional Parallel mode,
// which hands each goroutine its own Clone() rather than sharing one.
//
//	go get github.com/hyfi06/ppt4/ptgraph
package ptgraph
