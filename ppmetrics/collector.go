package ppmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector wraps a dedicated prometheus.Registry with the counters
// and gauge a search run updates. Each Collector owns its own
// registry rather than registering against the global default, so a
// CLI invocation or a test can create as many independent Collectors
// as it needs without a duplicate-registration panic.
type Collector struct {
	registry *prometheus.Registry

	nodesVisited prometheus.Counter
	pruned       *prometheus.CounterVec
	solutions    prometheus.Counter
	depth        prometheus.Gauge
}

// NewCollector builds a Collector with a fresh registry and all
// metrics pre-registered.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		nodesVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ppt_search_nodes_visited_total",
			Help: "Total number of search-tree nodes visited.",
		}),
		pruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ppt_search_branches_pruned_total",
			Help: "Total number of branches pruned, labeled by prune kind.",
		}, []string{"kind"}),
		solutions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ppt_search_solutions_found_total",
			Help: "Total number of valid 4-PPT solutions found.",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ppt_search_current_depth",
			Help: "Current recursion depth of the in-flight search.",
		}),
	}

	reg.MustRegister(c.nodesVisited, c.pruned, c.solutions, c.depth)
	return c
}

// Registry exposes the underlying registry, e.g. for promhttp.HandlerFor.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// OnNodeVisited is bound to search.Options.OnNodeVisited.
func (c *Collector) OnNodeVisited() {
	c.nodesVisited.Inc()
}

// OnPruned is bound to search.Options.OnPruned.
func (c *Collector) OnPruned(kind string) {
	c.pruned.WithLabelValues(kind).Inc()
}

// OnSolution is bound to search.Options.OnSolution.
func (c *Collector) OnSolution() {
	c.solutions.Inc()
}

// SetDepth updates the current-depth gauge; the search engine does not
// call this itself (spec.md's driver is node/prune/solution events
// only), but a caller instrumenting a custom wrapper around
// search.Enumerate may use it.
func (c *Collector) SetDepth(d int) {
	c.depth.Set(float64(d))
}
