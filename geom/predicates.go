// File: predicates.go
// Role: exact integer predicates over point triples and segment pairs.
// Determinism: pure functions, no floating point, no package state.
package geom

// Orient computes the sign of the cross product
//
//	(q.Y - p.Y)*(r.X - q.X) - (q.X - p.X)*(r.Y - q.Y)
//
// widened to int64 to avoid overflow for int32 coordinates. Returns
// Collinear when the value is zero, CW when it is positive, CCW when
// it is negative. The encoding is stable: callers rely on exactly
// these values, not just equality/inequality.
func Orient(p, q, r Point) Orientation {
	val := int64(q.Y-p.Y)*int64(r.X-q.X) - int64(q.X-p.X)*int64(r.Y-q.Y)
	switch {
	case val == 0:
		return Collinear
	case val > 0:
		return CW
	default:
		return CCW
	}
}

// OnSegment reports whether q lies within the axis-aligned bounding
// box of p and r, inclusive on both axes.
//
// Precondition: p, q, r are already known to be collinear (Orient(p,
// q, r) == Collinear). OnSegment does not itself check collinearity;
// it is only meaningful in collinear branches of SegmentsCross.
func OnSegment(p, q, r Point) bool {
	minX, maxX := minI32(p.X, r.X), maxI32(p.X, r.X)
	minY, maxY := minI32(p.Y, r.Y), maxI32(p.Y, r.Y)

	return q.X >= minX && q.X <= maxX && q.Y >= minY && q.Y <= maxY
}

// SegmentsCross reports whether closed segments ab and cd properly or
// improperly intersect, using the standard four-orientation test with
// the three collinear fallbacks.
//
// SegmentsCross does not special-case shared endpoints: callers that
// know ab and cd share an endpoint index must skip the call entirely
// (the shared-endpoint exemption belongs to the caller, per the planar
// graph's insertion contract, not to this predicate).
func SegmentsCross(a, b, c, d Point) bool {
	o1 := Orient(a, b, c)
	o2 := Orient(a, b, d)
	o3 := Orient(c, d, a)
	o4 := Orient(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == Collinear && OnSegment(a, c, b) {
		return true
	}
	if o2 == Collinear && OnSegment(a, d, b) {
		return true
	}
	if o3 == Collinear && OnSegment(c, a, d) {
		return true
	}
	if o4 == Collinear && OnSegment(c, b, d) {
		return true
	}

	return false
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
