// Package ppt classifies a ptgraph.PartialGraph as a PPT candidate
// (edge-count only, spec.md §4.5) or a full pointed pseudo-triangulation
// / 4-PPT (every bounded face is a pseudo-triangle — exactly three
// convex corners, the rest reflex — and, for 4-PPT, every vertex
// degree falls within a configurable DegreeBounds, default [2, 5]).
//
//	go get github.com/hyfi06/ppt4/ppt
package ppt
