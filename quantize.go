package tiltlevel

const (
	nearThreshold    = 250
	extremeThreshold = 500

	// FrameSize is the width and height of the LED matrix.
	FrameSize = 5

	centerIndex = FrameSize / 2
)

// Bucket places v into one of five half-open ranges, 0 being extreme negative and 4 extreme positive. The
// boundaries are ±500/scale and ±250/scale using truncating division, so for scale 10 the center bucket is
// -24..24 on both axes.
//
// Every integer falls into exactly one bucket: the comparisons are ordered so the last branch catches everything
// at or above the extreme-positive boundary.
func Bucket(v, scale int32) uint8 {
	if scale <= 0 {
		scale = 1
	}
	near := int32(nearThreshold) / scale
	extreme := int32(extremeThreshold) / scale

	switch {
	case v <= -extreme:
		return 0
	case v <= -near:
		return 1
	case v < near:
		return centerIndex
	case v < extreme:
		return 3
	default:
		return 4
	}
}

// Quantize maps lateral tilt onto a matrix cell. Rows follow y directly; columns are inverted so that tilting
// towards negative x lights the right-hand side, like a bubble floating away from the low edge.
func Quantize(m Mode, x, y int32) (row, col uint8) {
	scale := m.Scale()
	row = Bucket(y, scale)
	col = FrameSize - 1 - Bucket(x, scale)
	return row, col
}
