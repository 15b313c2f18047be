package ppt_test

import (
	"testing"

	"github.com/hyfi06/ppt4/geom"
	"github.com/hyfi06/ppt4/ppt"
	"github.com/hyfi06/ppt4/ptgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPPTCandidate_And_Is4PPT_Triangle(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 9}}
	g, err := ptgraph.NewFromPoints(pts, ptgraph.DefaultDegreeBounds())
	require.NoError(t, err)

	assert.True(t, ppt.IsPPTCandidate(g))
	assert.True(t, ppt.IsPPT(g))
	assert.True(t, ppt.Is4PPT(g))
}

func TestIs4PPT_Square_NoDiagonal_NotCandidate(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	g, err := ptgraph.NewFromPoints(pts, ptgraph.DefaultDegreeBounds())
	require.NoError(t, err)

	assert.False(t, ppt.IsPPTCandidate(g), "2N-3=5 but only 4 hull edges are seeded")
	assert.False(t, ppt.Is4PPT(g))
}

func TestIs4PPT_Square_WithOneDiagonal(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	g, err := ptgraph.NewFromPoints(pts, ptgraph.DefaultDegreeBounds())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2))

	assert.True(t, ppt.IsPPTCandidate(g))
	assert.True(t, ppt.IsPPT(g))
	assert.True(t, ppt.Is4PPT(g))
}

func TestIs4PPT_DegreeBoundViolation(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	bounds := ptgraph.DegreeBounds{Min: 3, Max: 5}
	g, err := ptgraph.NewFromPoints(pts, bounds)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2))

	// Every hull vertex has degree 2 here (two hull edges), plus one
	// more for the two diagonal endpoints; the other two stay at 2,
	// below the raised Min of 3.
	assert.True(t, ppt.IsPPT(g))
	assert.False(t, ppt.Is4PPT(g))
}
