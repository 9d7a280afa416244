package tiltlevel

// Mode selects how wide the tilt buckets are.
type Mode uint8

const (
	// ModeCoarse uses buckets 250 milli-g wide.
	ModeCoarse Mode = iota
	// ModeFine divides every bucket boundary by 10.
	ModeFine
)

func (m Mode) String() string {
	switch m {
	case ModeCoarse:
		return "coarse"
	case ModeFine:
		return "fine"
	default:
		return "INVALID"
	}
}

// Scale is the divisor applied to the coarse bucket boundaries.
func (m Mode) Scale() int32 {
	if m == ModeFine {
		return 10
	}
	return 1
}

// NextMode resolves the two button states into the mode for this tick. Only a single pressed button changes the
// mode; both pressed, neither pressed or an unknown state keeps the previous one.
func NextMode(prev Mode, a, b ButtonState) Mode {
	switch {
	case a == ButtonPressed && b == ButtonReleased:
		return ModeCoarse
	case b == ButtonPressed && a == ButtonReleased:
		return ModeFine
	default:
		return prev
	}
}
