package ppconfig

import "errors"

// ErrInvalidDegreeBounds indicates Min > Max or Min < 0 in the decoded
// DegreeBounds section.
var ErrInvalidDegreeBounds = errors.New("ppconfig: invalid degree bounds")

// ErrInvalidByteSize indicates a ByteSize value other than 8 or 16.
var ErrInvalidByteSize = errors.New("ppconfig: byte size must be 8 or 16")

// ErrInvalidTimeout indicates a negative CancelTimeout.
var ErrInvalidTimeout = errors.New("ppconfig: cancel timeout must be >= 0")
