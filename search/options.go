package search

// Options configures a call to Enumerate. The zero value is valid and
// enables degree-floor/ceiling shape pruning, disables the dedup hash
// (per spec.md §9, redundant under the monotone frontier rule),
// disables parallel search, and never stops early.
type Options struct {
	// ShouldStop is checked at the top of every recursive invocation
	// (spec.md §5's cancellation predicate). A nil ShouldStop never
	// stops the search early. On a true result, the search unwinds
	// immediately and Enumerate returns the solutions gathered so far.
	ShouldStop func() bool

	// DisableShapePruning turns off the degree-floor/ceiling pruning
	// rule of spec.md §4.6, leaving only insertion-failure pruning and
	// overshoot pruning. Exists mainly so tests can exercise the
	// unpruned search tree; leave false in production use.
	DisableShapePruning bool

	// EnableDedupHash is accepted but not read by Enumerate: no
	// content-hash visited set is kept in either setting. The monotone
	// frontier rule alone keeps duplicate edge sets from being explored.
	EnableDedupHash bool

	// Parallel fans the first candidate edge out across an
	// errgroup.Group, one cloned PartialGraph per goroutine (spec.md
	// §5's permitted concurrent extension). When true, Result.Ordered
	// is false: the lexicographic output guarantee is explicitly
	// dropped, matching spec.md §5's note that parallel output is
	// "merely set-equivalent."
	Parallel bool

	// OnNodeVisited, OnPruned, and OnSolution are optional
	// instrumentation hooks, in the style of the traversal hooks
	// elsewhere in this module's ancestry (OnVisit/OnEnqueue). They
	// are called synchronously from the search goroutine(s); nil hooks
	// are simply skipped. ppmetrics.Collector binds all three to
	// Prometheus counters.
	OnNodeVisited func()
	OnPruned      func(kind string)
	OnSolution    func()
}

// Pruning-kind labels passed to Options.OnPruned.
const (
	PruneOvershoot = "overshoot"
	PruneInsertion = "insertion"
	PruneShape     = "shape"
)

func (o Options) shouldStop() bool {
	return o.ShouldStop != nil && o.ShouldStop()
}

func (o Options) nodeVisited() {
	if o.OnNodeVisited != nil {
		o.OnNodeVisited()
	}
}

func (o Options) pruned(kind string) {
	if o.OnPruned != nil {
		o.OnPruned(kind)
	}
}

func (o Options) solutionFound() {
	if o.OnSolution != nil {
		o.OnSolution()
	}
}
