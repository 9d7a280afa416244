package tiltlevel

// Frame is one picture for the LED matrix, indexed [row][col].
type Frame [FrameSize][FrameSize]bool

// Clear turns every cell off.
func (f *Frame) Clear() {
	*f = Frame{}
}

// Set lights a single cell. Out of range coordinates are ignored.
func (f *Frame) Set(row, col uint8) {
	if row >= FrameSize || col >= FrameSize {
		return
	}
	f[row][col] = true
}

func (f *Frame) At(row, col uint8) bool {
	if row >= FrameSize || col >= FrameSize {
		return false
	}
	return f[row][col]
}

// Lit counts the cells that are on.
func (f *Frame) Lit() int {
	n := 0
	for r := range f {
		for c := range f[r] {
			if f[r][c] {
				n++
			}
		}
	}
	return n
}

// String renders the frame as five lines of '#' and '.', which is handy for logs and test failures.
func (f *Frame) String() string {
	b := make([]byte, 0, FrameSize*(FrameSize+1))
	for r := range f {
		for c := range f[r] {
			if f[r][c] {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
