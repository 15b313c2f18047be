package pointset

import "math/rand"

// PointOption customizes a Constructor call by mutating a pointConfig
// before generation begins.
type PointOption func(*pointConfig)

// WithSeed creates a deterministic *rand.Rand from seed for use by
// stochastic constructors (RandomSparse). Required for reproducible
// runs; panics are never used here since a missing RNG is a runtime
// condition (ErrNeedRandSource), not a programmer error caught at
// option-construction time.
func WithSeed(seed int64) PointOption {
	return func(c *pointConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG, overriding WithSeed if both are
// given (last option wins, per normal functional-options evaluation
// order).
func WithRand(r *rand.Rand) PointOption {
	return func(c *pointConfig) {
		c.rng = r
	}
}

// WithRetries bounds how many times RandomSparse resamples a point
// set that fails the general-position check before giving up with
// ErrConstructFailed. Values <= 0 are ignored (default retained).
func WithRetries(n int) PointOption {
	return func(c *pointConfig) {
		if n > 0 {
			c.retries = n
		}
	}
}
