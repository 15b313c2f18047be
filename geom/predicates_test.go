package geom_test

import (
	"testing"

	"github.com/hyfi06/ppt4/geom"
	"github.com/stretchr/testify/assert"
)

func TestOrient(t *testing.T) {
	p := geom.Point{X: 0, Y: 0}
	q := geom.Point{X: 10, Y: 0}

	assert.Equal(t, geom.CCW, geom.Orient(p, q, geom.Point{X: 5, Y: 9}), "upward turn is CCW")
	assert.Equal(t, geom.CW, geom.Orient(p, q, geom.Point{X: 5, Y: -9}), "downward turn is CW")
	assert.Equal(t, geom.Collinear, geom.Orient(p, q, geom.Point{X: 20, Y: 0}), "colinear points")
}

func TestOnSegment(t *testing.T) {
	p := geom.Point{X: 0, Y: 0}
	r := geom.Point{X: 10, Y: 10}

	assert.True(t, geom.OnSegment(p, geom.Point{X: 5, Y: 5}, r))
	assert.True(t, geom.OnSegment(p, geom.Point{X: 0, Y: 0}, r), "inclusive of endpoints")
	assert.False(t, geom.OnSegment(p, geom.Point{X: 11, Y: 11}, r))
}

func TestSegmentsCross(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d geom.Point
		want       bool
	}{
		{
			name: "proper X crossing",
			a:    geom.Point{X: 0, Y: 0}, b: geom.Point{X: 10, Y: 10},
			c: geom.Point{X: 0, Y: 10}, d: geom.Point{X: 10, Y: 0},
			want: true,
		},
		{
			name: "parallel, no crossing",
			a:    geom.Point{X: 0, Y: 0}, b: geom.Point{X: 10, Y: 0},
			c: geom.Point{X: 0, Y: 5}, d: geom.Point{X: 10, Y: 5},
			want: false,
		},
		{
			name: "collinear overlap",
			a:    geom.Point{X: 0, Y: 0}, b: geom.Point{X: 10, Y: 0},
			c: geom.Point{X: 5, Y: 0}, d: geom.Point{X: 15, Y: 0},
			want: true,
		},
		{
			name: "collinear disjoint",
			a:    geom.Point{X: 0, Y: 0}, b: geom.Point{X: 5, Y: 0},
			c: geom.Point{X: 10, Y: 0}, d: geom.Point{X: 15, Y: 0},
			want: false,
		},
		{
			name: "touching endpoint treated as crossing by the raw predicate",
			a:    geom.Point{X: 0, Y: 0}, b: geom.Point{X: 10, Y: 10},
			c: geom.Point{X: 10, Y: 10}, d: geom.Point{X: 20, Y: 0},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.SegmentsCross(tc.a, tc.b, tc.c, tc.d))
		})
	}
}
