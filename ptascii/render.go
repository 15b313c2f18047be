package ptascii

import (
	"strings"

	"github.com/hyfi06/ppt4/geom"
	"github.com/hyfi06/ppt4/ptgraph"
)

const (
	emptyCell  = '.'
	edgeCell   = '*'
	vertexCell = 'o'
)

// Render rasterizes g onto a width x height character grid and
// returns it as newline-joined rows, row 0 at the top of the output.
// It never panics: a non-positive width or height yields an empty
// string, and a degenerate (single-point-wide or single-point-tall)
// point set is projected onto the grid's center row/column instead of
// dividing by zero.
func Render(g *ptgraph.PartialGraph, width, height int) string {
	if width <= 0 || height <= 0 || g == nil {
		return ""
	}

	points := g.Points()
	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = make([]byte, width)
		for c := range grid[r] {
			grid[r][c] = emptyCell
		}
	}

	minX, maxX, minY, maxY := bounds(points)

	// screenCol/screenRow map a point index directly to grid
	// coordinates, with row 0 at the top (larger Y renders higher).
	screenCol := func(i int) int { return project(points[i].X, minX, maxX, width) }
	screenRow := func(i int) int { return height - 1 - project(points[i].Y, minY, maxY, height) }

	for _, e := range g.Edges() {
		drawLine(grid, screenCol(e.A), screenRow(e.A), screenCol(e.B), screenRow(e.B))
	}
	for i := range points {
		grid[screenRow(i)][screenCol(i)] = vertexCell
	}

	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(row)
	}
	return b.String()
}

func bounds(points []geom.Point) (minX, maxX, minY, maxY int32) {
	minX, maxX = points[0].X, points[0].X
	minY, maxY = points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

func project(v, lo, hi int32, span int) int {
	if hi == lo {
		return (span - 1) / 2
	}
	scaled := int64(v-lo) * int64(span-1) / int64(hi-lo)
	if scaled < 0 {
		scaled = 0
	}
	if scaled >= int64(span) {
		scaled = int64(span) - 1
	}
	return int(scaled)
}

// drawLine plots an integer Bresenham line from (c0,r0) to (c1,r1)
// onto grid. Both endpoints are guaranteed in-bounds by project, and
// the stepping invariant keeps every intermediate point in-bounds too.
func drawLine(grid [][]byte, c0, r0, c1, r1 int) {
	dx := abs(c1 - c0)
	dy := -abs(r1 - r0)
	sx, sy := 1, 1
	if c0 > c1 {
		sx = -1
	}
	if r0 > r1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(grid, c0, r0)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c0 += sx
		}
		if e2 <= dx {
			err += dx
			r0 += sy
		}
	}
}

func plot(grid [][]byte, c, r int) {
	if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[r]) {
		return
	}
	if grid[r][c] == emptyCell {
		grid[r][c] = edgeCell
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
