package search

import (
	"strconv"
	"strings"

	"github.com/hyfi06/ppt4/ptgraph"
)

// Signature renders g's edge set as a deterministic string, suitable
// for CLI output or for comparing two solutions by value regardless of
// which goroutine or search order produced them. ptgraph.PartialGraph
// already keeps edges sorted in canonical (min,max) order, so
// Signature only needs to format, not sort.
func Signature(g *ptgraph.PartialGraph) string {
	edges := g.Edges()
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = strconv.Itoa(e.A) + "-" + strconv.Itoa(e.B)
	}
	return strings.Join(parts, ",")
}
