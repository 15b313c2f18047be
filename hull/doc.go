// Package hull computes the convex hull of a planar point set with
// the Graham-Andrew monotone chain algorithm (spec.md §4.3), using
// only geom's exact integer orientation predicate — no floating point,
// no trigonometry.
//
//	go get github.com/hyfi06/ppt4/hull
package hull
