package ptgraph

import "github.com/hyfi06/ppt4/geom"

// Edge is an unordered pair of vertex indices stored in canonical form:
// A < B always holds for any Edge produced or accepted by this
// package (invariant I1).
type Edge struct {
	A, B int
}

// DegreeBounds configures the vertex-degree range a 4-PPT must satisfy
// (spec.md §4.5 and §9 Open Question (b)). The zero value is invalid;
// use DefaultDegreeBounds() or construct explicitly.
type DegreeBounds struct {
	Min, Max int
}

// DefaultDegreeBounds returns the [2, 5] range spec.md fixes as the
// default 4-PPT definition.
func DefaultDegreeBounds() DegreeBounds {
	return DegreeBounds{Min: 2, Max: 5}
}

// PartialGraph is the planar graph state of spec.md §3: a fixed point
// set plus a canonically ordered, non-crossing set of inserted edges.
//
// Zero value is not useful; construct via New or NewFromPoints.
type PartialGraph struct {
	points []geom.Point // vertex index i ↔ points[i], fixed for the graph's lifetime
	edges  []Edge       // sorted strictly increasing by (A, B); invariant I1/I2
	bounds DegreeBounds
	degree []int // degree[i] = current degree of vertex i, kept in lockstep with edges
}

// Points returns the graph's fixed point set. The returned slice must
// not be mutated by callers.
func (g *PartialGraph) Points() []geom.Point { return g.points }

// N returns the number of vertices.
func (g *PartialGraph) N() int { return len(g.points) }

// Bounds returns the configured degree bounds.
func (g *PartialGraph) Bounds() DegreeBounds { return g.bounds }

// Edges returns the current sorted, canonical edge slice. The
// returned slice must not be mutated by callers; use Clone if you
// need an independent, mutable copy.
func (g *PartialGraph) Edges() []Edge { return g.edges }

// Degree returns the current degree of vertex v. Panics if v is out
// of range, matching Go slice-index semantics (ptgraph treats an
// out-of-range vertex index as a programming bug at this query layer,
// per spec.md §7; only AddEdge reports OutOfRange as a value).
func (g *PartialGraph) Degree(v int) int { return g.degree[v] }

// New constructs an empty PartialGraph over points with no edges and
// no hull seeding. Most callers want NewFromPoints instead; New is
// exposed for tests and for building graphs incrementally outside the
// spec.md seeding contract.
func New(points []geom.Point, bounds DegreeBounds) *PartialGraph {
	capHint := 2*len(points) - 3
	if capHint < 0 {
		capHint = 0
	}

	return &PartialGraph{
		points: points,
		edges:  make([]Edge, 0, capHint),
		bounds: bounds,
		degree: make([]int, len(points)),
	}
}
