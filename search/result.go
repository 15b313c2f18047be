package search

import "github.com/hyfi06/ppt4/ptgraph"

// Result holds the outcome of Enumerate.
type Result struct {
	// Solutions is the list of valid 4-PPTs found, each an
	// independent PartialGraph clone. In serial mode (Options.Parallel
	// == false) the order is the lexicographic order of the solutions'
	// full edge sequences (spec.md §5). In parallel mode the order is
	// whatever goroutine scheduling produced.
	Solutions []*ptgraph.PartialGraph

	// Ordered reports whether Solutions is in the deterministic
	// lexicographic order spec.md §5 guarantees for serial search.
	// False whenever Options.Parallel was set.
	Ordered bool

	// Stopped reports whether the search unwound early because
	// Options.ShouldStop returned true, as opposed to exhausting the
	// frontier.
	Stopped bool
}
