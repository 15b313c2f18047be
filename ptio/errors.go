package ptio

import "errors"

// ErrInvalidByteMode indicates a ByteMode value other than Byte8 or
// Byte16 was supplied.
var ErrInvalidByteMode = errors.New("ptio: invalid byte mode")

// ErrInvalidPointCount indicates a non-positive pointCount was passed
// to ReadPointSets or WritePointSets.
var ErrInvalidPointCount = errors.New("ptio: point count must be positive")

// ErrCoordinateOverflow indicates a coordinate being written does not
// fit in the target ByteMode's unsigned range.
var ErrCoordinateOverflow = errors.New("ptio: coordinate overflows byte mode")
