// Package ppt4 enumerates pointed pseudo-triangulations (PPTs) and
// 4-regular-bounded pseudo-triangulations (4-PPTs) of planar point
// sets using exact integer arithmetic throughout.
//
// Given a set of points in general position, a convex-hull-seeded
// planar graph is grown by backtracking over non-crossing candidate
// edges until every bounded face is a pseudo-triangle (exactly three
// convex corners) and every vertex degree falls within a configurable
// bound (default [2, 5]).
//
// Everything is organized under focused subpackages:
//
//	geom/     — exact integer orientation, segment-crossing predicates
//	ptgraph/  — the non-crossing planar graph and its edge invariants
//	hull/     — convex hull (monotone chain)
//	pface/    — planar face enumeration via half-edge walk
//	ppt/      — pseudo-triangulation and 4-PPT validation
//	search/   — the backtracking enumeration driver
//	pointset/ — deterministic and seeded-random point-set fixtures
//	ptio/     — the binary point-set stream loader/writer
//	ptascii/  — terminal rendering of a graph for debugging
//	ppmetrics/ — optional Prometheus instrumentation for search
//	ppconfig/  — YAML configuration for the CLI and batch runs
//	cmd/ppt-enumerate/ — the command-line driver
//
//	go get github.com/hyfi06/ppt4
package ppt4
