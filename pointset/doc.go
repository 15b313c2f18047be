// Package pointset builds deterministic fixture point sets for the
// enumeration pipeline: fixed shapes (Triangle, Square, RegularPolygon)
// and a seeded stochastic generator (RandomSparse), all producing
// geom.Point slices. Only RandomSparse checks general position (no
// three collinear points); the fixed shapes are returned unchecked.
//
// The package follows the functional-options constructor pattern of
// this module's graph-builder ancestry: a Constructor is a closure
// over its shape parameters, resolved against a pointConfig built from
// PointOption values, and Build is the single public entry point.
// Unlike a graph builder, point-set constructors are not composed —
// each call to Build produces one complete, self-contained point set.
package pointset
