package ptgraph

import "errors"

// Sentinel errors for PartialGraph operations. AddEdge only ever fails
// with one of the first three; NewFromPoints fails with
// ErrTooFewPoints or ErrCollinearInput (or, in principle, an AddEdge
// error while seeding the hull).
var (
	// ErrOutOfRange indicates u or v is not a valid vertex index, or u == v.
	ErrOutOfRange = errors.New("ptgraph: vertex index out of range")

	// ErrAlreadyPresent indicates the canonical edge (min(u,v), max(u,v))
	// is already stored in the graph.
	ErrAlreadyPresent = errors.New("ptgraph: edge already present")

	// ErrCrosses indicates the candidate segment crosses an existing
	// edge that does not share an endpoint with it.
	ErrCrosses = errors.New("ptgraph: edge crosses an existing edge")

	// ErrCollinearInput indicates three or more input points are
	// collinear, violating the general-position precondition the core
	// requires (spec.md §9, Open Question (c)).
	ErrCollinearInput = errors.New("ptgraph: input points are not in general position (collinear triple)")

	// ErrTooFewPoints indicates fewer than 3 points were supplied; a
	// convex hull and a pseudo-triangulation both require at least a
	// triangle.
	ErrTooFewPoints = errors.New("ptgraph: at least 3 points are required")
)
