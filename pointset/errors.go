package pointset

import "errors"

// ErrTooFewPoints indicates a requested point count is below the
// minimum a constructor requires (3, to form a non-degenerate set).
var ErrTooFewPoints = errors.New("pointset: n below minimum")

// ErrInvalidRadius indicates a non-positive radius or side length was
// requested for a fixed-shape constructor.
var ErrInvalidRadius = errors.New("pointset: radius or side must be positive")

// ErrNeedRandSource indicates RandomSparse was called without a seed
// or explicit RNG (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("pointset: rng is required")

// ErrConstructFailed indicates a stochastic constructor exhausted its
// retry budget without reaching general position (no three collinear
// points), mirroring the bounded-retry policy used elsewhere in this
// module for structurally constrained random generation. Build also
// returns it when given a nil Constructor.
var ErrConstructFailed = errors.New("pointset: construction failed")
