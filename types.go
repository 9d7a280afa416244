package tiltlevel

type SensorStatus uint8

const (
	// SensorStatusUnavailable indicates that the sensor is never available (not implemented in hardware).
	SensorStatusUnavailable SensorStatus = iota
	// SensorStatusAvailable indicates that the returned sample is fresh and accurate.
	SensorStatusAvailable
	// SensorStatusBusy indicates that no new sample is ready yet, e.g. the output data rate period has not elapsed.
	SensorStatusBusy
)

func (s SensorStatus) String() string {
	switch s {
	case SensorStatusUnavailable:
		return "unavailable"
	case SensorStatusAvailable:
		return "available"
	case SensorStatusBusy:
		return "busy"
	default:
		return "INVALID"
	}
}

// ButtonState is the sampled level of one momentary button. Buttons are active low on the board, drivers translate
// that into pressed/released before handing it over.
type ButtonState uint8

const (
	ButtonReleased ButtonState = iota
	ButtonPressed
	// ButtonUnknown is reported when the driver could not tell, e.g. the pin is floating during start-up.
	ButtonUnknown
)

func (b ButtonState) String() string {
	switch b {
	case ButtonReleased:
		return "released"
	case ButtonPressed:
		return "pressed"
	case ButtonUnknown:
		return "unknown"
	default:
		return "INVALID"
	}
}

// AccelSample is one accelerometer reading in milli-g. X and Y are the lateral axes, Z is vertical.
type AccelSample struct {
	X, Y, Z int32
}

// Action is the per-tick decision of the orientation gate.
type Action uint8

const (
	ActionRender Action = iota
	ActionBlank
	// ActionHold means no fresh sample arrived and the previous frame stays on the matrix.
	ActionHold
)

func (a Action) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionBlank:
		return "blank"
	case ActionHold:
		return "hold"
	default:
		return "INVALID"
	}
}

// Tick records what a single iteration of the main loop did.
type Tick struct {
	Seq    uint32
	Mode   Mode
	Sample AccelSample
	Fresh  bool
	Action Action
	// Row and Col are only meaningful when Action is ActionRender.
	Row, Col uint8
	Lit      int
}
