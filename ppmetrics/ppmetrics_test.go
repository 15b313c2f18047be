package ppmetrics_test

import (
	"testing"

	"github.com/hyfi06/ppt4/geom"
	"github.com/hyfi06/ppt4/ppmetrics"
	"github.com/hyfi06/ppt4/ptgraph"
	"github.com/hyfi06/ppt4/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricValue(t *testing.T, c *ppmetrics.Collector, name string) float64 {
	t.Helper()
	families, err := c.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		var total float64
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestCollector_BoundToSearchHooks(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	g, err := ptgraph.NewFromPoints(pts, ptgraph.DefaultDegreeBounds())
	require.NoError(t, err)

	c := ppmetrics.NewCollector()
	_, err = search.Enumerate(g, search.Options{
		OnNodeVisited: c.OnNodeVisited,
		OnPruned:      c.OnPruned,
		OnSolution:    c.OnSolution,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(2), metricValue(t, c, "ppt_search_solutions_found_total"))
	assert.Greater(t, metricValue(t, c, "ppt_search_nodes_visited_total"), float64(0))
}
