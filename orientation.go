package tiltlevel

// Gate decides whether the bubble is drawn this tick. With the micro:bit v2 mounting a positive z means the matrix
// is facing the ground, so the display goes blank. Zero counts as right side up.
func Gate(z int32) Action {
	if z > 0 {
		return ActionBlank
	}
	return ActionRender
}
