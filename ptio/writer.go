package ptio

import (
	"fmt"
	"io"

	"github.com/hyfi06/ppt4/geom"
)

// WritePointSets encodes sets as the binary stream ReadPointSets
// expects: every set must contain the same number of points, matched
// by the first set's length, each coordinate packed per byteMode.
// WritePointSets is the reader's dual, not a spec.md requirement — it
// exists for round-trip tests and pointset fixture generation.
func WritePointSets(w io.Writer, sets [][]geom.Point, byteMode ByteMode) error {
	if !byteMode.valid() {
		return fmt.Errorf("ptio.WritePointSets: %w", ErrInvalidByteMode)
	}
	if len(sets) == 0 {
		return nil
	}
	pointCount := len(sets[0])
	if pointCount <= 0 {
		return fmt.Errorf("ptio.WritePointSets: pointCount=%d: %w", pointCount, ErrInvalidPointCount)
	}

	coordWidth := byteMode.coordWidth()
	buf := make([]byte, pointCount*2*coordWidth)

	for _, set := range sets {
		if len(set) != pointCount {
			return fmt.Errorf("ptio.WritePointSets: set length %d != %d: %w",
				len(set), pointCount, ErrInvalidPointCount)
		}
		off := 0
		for _, p := range set {
			if err := encodeCoord(buf[off:], p.X, byteMode); err != nil {
				return fmt.Errorf("ptio.WritePointSets: %w", err)
			}
			off += coordWidth
			if err := encodeCoord(buf[off:], p.Y, byteMode); err != nil {
				return fmt.Errorf("ptio.WritePointSets: %w", err)
			}
			off += coordWidth
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("ptio.WritePointSets: %w", err)
		}
	}

	return nil
}

func encodeCoord(b []byte, v int32, byteMode ByteMode) error {
	if int64(v) < 0 || int64(v) > byteMode.maxValue() {
		return fmt.Errorf("coordinate %d: %w", v, ErrCoordinateOverflow)
	}
	if byteMode.coordWidth() == 1 {
		b[0] = byte(v)
		return nil
	}
	b[0] = byte(v & 0xff)
	b[1] = byte((v >> 8) & 0xff)
	return nil
}
