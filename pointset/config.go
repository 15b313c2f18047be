package pointset

import "math/rand"

// pointConfig holds the resolved, immutable configuration a
// Constructor reads from. It is never exposed directly; callers
// shape it via PointOption values passed to Build.
type pointConfig struct {
	rng     *rand.Rand
	retries int
}

const defaultRetries = 200

func newPointConfig(opts ...PointOption) pointConfig {
	cfg := pointConfig{retries: defaultRetries}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
