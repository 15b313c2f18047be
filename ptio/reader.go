package ptio

import (
	"fmt"
	"io"

	"github.com/hyfi06/ppt4/geom"
)

// ReadPointSets reads r to EOF as a sequence of fixed-size point sets,
// each of exactly pointCount points encoded per byteMode, and returns
// them in stream order. Any trailing bytes that do not form a
// complete record are discarded, per spec.md §6.
func ReadPointSets(r io.Reader, pointCount int, byteMode ByteMode) ([][]geom.Point, error) {
	if pointCount <= 0 {
		return nil, fmt.Errorf("ptio.ReadPointSets: pointCount=%d: %w", pointCount, ErrInvalidPointCount)
	}
	if !byteMode.valid() {
		return nil, fmt.Errorf("ptio.ReadPointSets: %w", ErrInvalidByteMode)
	}

	coordWidth := byteMode.coordWidth()
	recordSize := pointCount * 2 * coordWidth
	buf := make([]byte, recordSize)

	var sets [][]geom.Point
	for {
		n, err := io.ReadFull(r, buf)
		if n == recordSize {
			sets = append(sets, decodeRecord(buf, pointCount, byteMode))
			continue
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			// Residual partial record: discarded per spec.
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ptio.ReadPointSets: %w", err)
		}
		break
	}

	return sets, nil
}

func decodeRecord(buf []byte, pointCount int, byteMode ByteMode) []geom.Point {
	pts := make([]geom.Point, pointCount)
	coordWidth := byteMode.coordWidth()
	off := 0
	for i := 0; i < pointCount; i++ {
		pts[i] = geom.Point{
			X: decodeCoord(buf[off:], coordWidth),
			Y: decodeCoord(buf[off+coordWidth:], coordWidth),
		}
		off += 2 * coordWidth
	}
	return pts
}

func decodeCoord(b []byte, width int) int32 {
	if width == 1 {
		return int32(b[0])
	}
	return int32(uint16(b[0]) | uint16(b[1])<<8)
}
