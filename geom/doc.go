// Package geom provides the exact integer-arithmetic geometric
// predicates used to maintain a plane straight-line graph: point and
// segment orientation, collinear containment, and segment crossing.
//
// Every predicate here operates on integer coordinates only. No
// floating point is used anywhere in this package; cross products are
// widened to int64 to avoid overflow for the coordinate ranges the
// loader package produces (8- or 16-bit unsigned components).
//
//	go get github.com/hyfi06/ppt4/geom
package geom
