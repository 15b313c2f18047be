package pointset

import (
	"fmt"

	"github.com/hyfi06/ppt4/geom"
)

// Constructor produces a complete point set from a resolved
// pointConfig. Implementations MUST NOT panic; all validation failures
// return sentinel errors.
type Constructor func(cfg pointConfig) ([]geom.Point, error)

// Build resolves opts into a pointConfig and runs cons against it,
// returning the generated point set or the first validation error.
func Build(cons Constructor, opts ...PointOption) ([]geom.Point, error) {
	if cons == nil {
		return nil, fmt.Errorf("pointset.Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newPointConfig(opts...)
	pts, err := cons(cfg)
	if err != nil {
		return nil, fmt.Errorf("pointset.Build: %w", err)
	}
	return pts, nil
}

// generalPosition reports whether no three points in pts are
// collinear, the same precondition ptgraph.NewFromPoints enforces at
// construction time.
func generalPosition(pts []geom.Point) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if geom.Orient(pts[i], pts[j], pts[k]) == geom.Collinear {
					return false
				}
			}
		}
	}
	return true
}
