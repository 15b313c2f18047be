package pface_test

import (
	"testing"

	"github.com/hyfi06/ppt4/geom"
	"github.com/hyfi06/ppt4/pface"
	"github.com/hyfi06/ppt4/ptgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaces_Triangle(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 9}}
	g, err := ptgraph.NewFromPoints(pts, ptgraph.DefaultDegreeBounds())
	require.NoError(t, err)

	faces := pface.Faces(g)
	require.Len(t, faces, 1, "a triangle has exactly one bounded face")
	assert.Equal(t, []int{0, 1, 2}, pface.CanonicalCycle(faces[0]))
}

func TestFaces_SquareWithDiagonal(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	g, err := ptgraph.NewFromPoints(pts, ptgraph.DefaultDegreeBounds())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2))

	faces := pface.Faces(g)
	require.Len(t, faces, 2)

	got := map[string]bool{}
	for _, f := range faces {
		got[cycleKey(pface.CanonicalCycle(f))] = true
	}
	assert.True(t, got[cycleKey([]int{0, 1, 2})])
	assert.True(t, got[cycleKey([]int{0, 2, 3})])
}

func TestFaces_EulerFormula(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 4, Y: 5},
	}
	g, err := ptgraph.NewFromPoints(pts, ptgraph.DefaultDegreeBounds())
	require.NoError(t, err)
	for _, sp := range [][2]int{{4, 0}, {4, 1}, {4, 2}, {4, 3}} {
		require.NoError(t, g.AddEdge(sp[0], sp[1]))
	}

	faces := pface.Faces(g)
	// V - E + F = 2 total (including the unbounded face), so
	// bounded faces F_b satisfy V - E + (F_b+1) = 2.
	v, e := g.N(), len(g.Edges())
	assert.Equal(t, 2, v-e+(len(faces)+1))

	sumEdges := 0
	for _, f := range faces {
		sumEdges += len(f)
	}
	hullLen := 4
	assert.Equal(t, 2*e-hullLen, sumEdges)
}

func cycleKey(c []int) string {
	s := ""
	for _, v := range c {
		s += string(rune('a' + v))
	}
	return s
}
