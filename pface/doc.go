// Package pface enumerates the bounded faces of a ptgraph.PartialGraph
// as vertex cycles, by walking directed half-edges in the cyclic
// neighbor order spec.md §4.4 describes: around each vertex, sort
// neighbors by polar angle (no floating point — integer coordinate
// signs give the half-plane split and geom.Orient the within-half
// order), then
// follow "next half-edge on the left" until every half-edge has been
// visited exactly once.
//
//	go get github.com/hyfi06/ppt4/pface
package pface
