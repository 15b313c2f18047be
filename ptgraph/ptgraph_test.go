package ptgraph_test

import (
	"testing"

	"github.com/hyfi06/ppt4/geom"
	"github.com/hyfi06/ppt4/ptgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trianglePoints() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 9}}
}

func squarePoints() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
}

func TestNewFromPoints_Triangle(t *testing.T) {
	g, err := ptgraph.NewFromPoints(trianglePoints(), ptgraph.DefaultDegreeBounds())
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, []ptgraph.Edge{{A: 0, B: 1}, {A: 0, B: 2}, {A: 1, B: 2}}, g.Edges())
}

func TestNewFromPoints_Square(t *testing.T) {
	g, err := ptgraph.NewFromPoints(squarePoints(), ptgraph.DefaultDegreeBounds())
	require.NoError(t, err)
	assert.Equal(t, []ptgraph.Edge{{A: 0, B: 1}, {A: 0, B: 3}, {A: 1, B: 2}, {A: 2, B: 3}}, g.Edges())
}

func TestNewFromPoints_RejectsCollinear(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}
	_, err := ptgraph.NewFromPoints(pts, ptgraph.DefaultDegreeBounds())
	assert.ErrorIs(t, err, ptgraph.ErrCollinearInput)
}

func TestNewFromPoints_TooFewPoints(t *testing.T) {
	_, err := ptgraph.NewFromPoints([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, ptgraph.DefaultDegreeBounds())
	assert.ErrorIs(t, err, ptgraph.ErrTooFewPoints)
}

func TestAddEdge_DuplicateRejected(t *testing.T) {
	g, _ := ptgraph.NewFromPoints(squarePoints(), ptgraph.DefaultDegreeBounds())
	before := append([]ptgraph.Edge{}, g.Edges()...)

	err := g.AddEdge(0, 1)
	assert.ErrorIs(t, err, ptgraph.ErrAlreadyPresent)
	assert.Equal(t, before, g.Edges(), "failing AddEdge must not mutate the graph")
}

func TestAddEdge_CrossingRejectedAndIdempotentOnFailure(t *testing.T) {
	g, _ := ptgraph.NewFromPoints(squarePoints(), ptgraph.DefaultDegreeBounds())
	require.NoError(t, g.AddEdge(0, 2))

	before := append([]ptgraph.Edge{}, g.Edges()...)
	err := g.AddEdge(1, 3)
	assert.ErrorIs(t, err, ptgraph.ErrCrosses)
	assert.Equal(t, before, g.Edges())
	assert.Equal(t, 5, len(g.Edges()))
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, _ := ptgraph.NewFromPoints(squarePoints(), ptgraph.DefaultDegreeBounds())
	assert.ErrorIs(t, g.AddEdge(0, 0), ptgraph.ErrOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 99), ptgraph.ErrOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 1), ptgraph.ErrOutOfRange)
}

func TestAddEdge_MonotonicityAndUndo(t *testing.T) {
	g, _ := ptgraph.NewFromPoints(squarePoints(), ptgraph.DefaultDegreeBounds())
	n := len(g.Edges())

	require.NoError(t, g.AddEdge(0, 2))
	assert.Equal(t, n+1, len(g.Edges()))
	assert.True(t, g.ContainsEdge(0, 2))
	for _, e := range []ptgraph.Edge{{A: 0, B: 1}, {A: 0, B: 3}, {A: 1, B: 2}, {A: 2, B: 3}} {
		assert.True(t, g.ContainsEdge(e.A, e.B), "prior edges must remain present")
	}

	g.UndoLast(0, 2)
	assert.Equal(t, n, len(g.Edges()))
	assert.False(t, g.ContainsEdge(0, 2))
}

func TestClone_IsIndependent(t *testing.T) {
	g, _ := ptgraph.NewFromPoints(squarePoints(), ptgraph.DefaultDegreeBounds())
	clone := g.Clone()
	require.NoError(t, clone.AddEdge(0, 2))

	assert.False(t, g.ContainsEdge(0, 2), "mutating the clone must not affect the original")
	assert.True(t, clone.ContainsEdge(0, 2))
}

func TestCanonicalInvariant(t *testing.T) {
	g, _ := ptgraph.NewFromPoints(squarePoints(), ptgraph.DefaultDegreeBounds())
	require.NoError(t, g.AddEdge(2, 0))
	for _, e := range g.Edges() {
		assert.Less(t, e.A, e.B)
	}
}

func TestSortedUniqueInvariant(t *testing.T) {
	g, _ := ptgraph.NewFromPoints(squarePoints(), ptgraph.DefaultDegreeBounds())
	require.NoError(t, g.AddEdge(1, 3))
	edges := g.Edges()
	for i := 1; i < len(edges); i++ {
		prev, cur := edges[i-1], edges[i]
		less := prev.A < cur.A || (prev.A == cur.A && prev.B < cur.B)
		assert.True(t, less, "edges must be strictly increasing")
	}
}
