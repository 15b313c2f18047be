package pointset

import (
	"fmt"

	"github.com/hyfi06/ppt4/geom"
)

// RandomSparse returns a Constructor that draws n points independently
// and uniformly from the integer box [-spread, spread]^2, resampling
// the whole set (up to cfg.retries times) until it lands in general
// position — the same bounded-retry strategy this module's
// stub-matching random-graph generator uses when a structural
// constraint (there, degree sequence; here, no three collinear points)
// can't be guaranteed by construction.
//
// Requires a seeded RNG (WithSeed or WithRand); returns
// ErrNeedRandSource otherwise, since an unseeded draw would make the
// result irreproducible.
func RandomSparse(n int, spread int32) Constructor {
	return func(cfg pointConfig) ([]geom.Point, error) {
		if n < 3 {
			return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewPoints)
		}
		if spread <= 0 {
			return nil, fmt.Errorf("RandomSparse: spread=%d: %w", spread, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		width := int64(2*spread + 1)
		for attempt := 0; attempt < cfg.retries; attempt++ {
			pts := make([]geom.Point, n)
			for i := range pts {
				pts[i] = geom.Point{
					X: int32(cfg.rng.Int63n(width)) - spread,
					Y: int32(cfg.rng.Int63n(width)) - spread,
				}
			}
			if generalPosition(pts) {
				return pts, nil
			}
		}

		return nil, fmt.Errorf("RandomSparse: n=%d spread=%d after %d attempts: %w",
			n, spread, cfg.retries, ErrConstructFailed)
	}
}
