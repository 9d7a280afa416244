package tiltlevel

import (
	"context"
	"errors"
	"time"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers"

	"github.com/ajanata/tiltlevel/internal/animation"
	"github.com/ajanata/tiltlevel/internal/animation/slide"
	"github.com/ajanata/tiltlevel/internal/animation/static"
)

// DefaultHold is how long each frame stays on the matrix, which also paces the main loop.
const DefaultHold = 200 * time.Millisecond

var (
	ErrNoDriver       = errors.New("must provide driver")
	ErrBadHold        = errors.New("hold must be positive")
	ErrNotInitialized = errors.New("not initialized")
	ErrNoSensor       = errors.New("accelerometer unavailable")
	// ErrReadFault is matched by errors.Is for button or accelerometer failures in the middle of the loop.
	ErrReadFault = errors.New("read fault")
)

type Driver interface {
	// EarlyInit acquires the peripherals and configures the accelerometer (output data rate etc.), returning the
	// display the frames are presented on. Any error here is fatal; the main loop is never entered.
	EarlyInit() (Display, error)

	// Buttons samples both buttons. It is called once per tick.
	Buttons() (a, b ButtonState, err error)

	// Accelerometer polls for a sample in milli-g. It must not block waiting for data: if the sensor has nothing new
	// since the last call it returns SensorStatusBusy and the previous frame stays up.
	Accelerometer() (AccelSample, SensorStatus, error)
}

// Display presents frames on the LED matrix.
type Display interface {
	// Show lights the matrix according to f and blocks for hold before returning. The frame is only read.
	Show(f *Frame, hold time.Duration) error
}

type Options struct {
	// Hold is the per-frame display time; zero means DefaultHold.
	Hold        time.Duration
	InitialMode Mode
	// Splash shows the boot animation during Init.
	Splash bool
	Logger Logger
	// Status is an optional secondary pixel display used for a text status screen.
	Status drivers.Displayer
}

type Level struct {
	hold    time.Duration
	driver  Driver
	display Display
	log     Logger
	splash  bool

	statusDisplay drivers.Displayer
	statusText    *textbuf.Buffer

	mode  Mode
	frame Frame
	last  Tick

	init  bool
	start time.Time
	now   func() time.Time

	tick      uint32
	lastSec   time.Time
	lastTicks uint32
	lastRate  uint32
}

func New(driver Driver, opts Options) (*Level, error) {
	if driver == nil {
		return nil, ErrNoDriver
	}
	if opts.Hold < 0 {
		return nil, ErrBadHold
	}
	if opts.Hold == 0 {
		opts.Hold = DefaultHold
	}
	if opts.InitialMode != ModeCoarse && opts.InitialMode != ModeFine {
		return nil, errors.New("invalid initial mode")
	}
	if opts.Logger == nil {
		opts.Logger = &PrintLogger{}
	}

	return &Level{
		hold:          opts.Hold,
		driver:        driver,
		log:           opts.Logger,
		splash:        opts.Splash,
		statusDisplay: opts.Status,
		mode:          opts.InitialMode,
		now:           time.Now,
	}, nil
}

func (l *Level) Init() error {
	if l.init {
		return errors.New("already initialized")
	}
	l.start = l.now()
	l.log.Info("starting init")

	err := l.initStatus()
	if err != nil {
		return err
	}

	display, err := l.driver.EarlyInit()
	if err != nil {
		l.statusLine("init failed")
		return errors.New("early init: " + err.Error())
	}
	if display == nil {
		return errors.New("init did not provide display")
	}
	l.display = display

	if l.splash {
		err = l.bootSplash()
		if err != nil {
			return errors.New("boot splash: " + err.Error())
		}
	}

	l.frame.Clear()
	l.lastSec = l.now()
	l.init = true
	l.statusLine("level started")
	l.log.Infof("level started in %s, %s mode", l.now().Sub(l.start).Round(time.Millisecond), l.mode)
	return nil
}

// Run calls RunTick until ctx is cancelled. Read faults skip the tick and keep the previous frame on the matrix;
// any other error ends the loop.
func (l *Level) Run(ctx context.Context) error {
	if !l.init {
		return ErrNotInitialized
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, err := l.RunTick()
		if err == nil {
			continue
		}
		if errors.Is(err, ErrReadFault) {
			l.log.Info("skipped tick: " + err.Error())
			continue
		}
		return err
	}
}

// RunTick runs a single iteration of the main loop: update the mode from the buttons, poll the accelerometer, gate on
// orientation, quantize, and present the frame for the hold time.
func (l *Level) RunTick() (Tick, error) {
	if !l.init {
		return Tick{}, ErrNotInitialized
	}

	l.tick++
	if l.now().Sub(l.lastSec) >= time.Second {
		l.lastRate = l.tick - l.lastTicks
		l.lastSec = l.now()
		l.lastTicks = l.tick
	}

	t := Tick{Seq: l.tick, Mode: l.mode, Action: ActionHold, Row: l.last.Row, Col: l.last.Col}

	a, b, err := l.driver.Buttons()
	if err != nil {
		return l.skip(t, "buttons", err)
	}
	mode := NextMode(l.mode, a, b)
	if mode != l.mode {
		l.log.Info(mode.String() + " mode")
		l.mode = mode
	}
	t.Mode = l.mode

	sample, st, err := l.driver.Accelerometer()
	if err != nil {
		return l.skip(t, "accelerometer", err)
	}

	switch st {
	case SensorStatusAvailable:
		t.Fresh = true
		t.Sample = sample
		t.Action = l.apply(sample)
		if t.Action == ActionRender {
			t.Row, t.Col = Quantize(l.mode, sample.X, sample.Y)
		}
		l.log.Debugf("x=%d y=%d z=%d %s", sample.X, sample.Y, sample.Z, t.Action)
	case SensorStatusBusy:
		// stale sample, the previous frame stays up
		t.Sample = l.last.Sample
	default:
		return t, ErrNoSensor
	}

	t.Lit = l.frame.Lit()
	err = l.present()
	if err != nil {
		return t, err
	}

	l.last = t
	if t.Fresh {
		l.drawStatus(t)
	}
	return t, nil
}

// Mode returns the currently active precision mode.
func (l *Level) Mode() Mode { return l.mode }

// Frame returns a copy of the current frame buffer.
func (l *Level) Frame() Frame { return l.frame }

// apply clears the frame buffer and lights the quantized cell if the board is right side up.
func (l *Level) apply(s AccelSample) Action {
	l.frame.Clear()
	action := Gate(s.Z)
	if action == ActionRender {
		l.frame.Set(Quantize(l.mode, s.X, s.Y))
	}
	return action
}

// skip handles a read fault: the frame buffer is left untouched and presented again so the matrix keeps showing the
// last good reading while the tick is reported as faulted.
func (l *Level) skip(t Tick, stage string, err error) (Tick, error) {
	t.Lit = l.frame.Lit()
	perr := l.present()
	if perr != nil {
		return t, perr
	}
	return t, &faultError{stage: stage, err: err}
}

func (l *Level) present() error {
	err := l.display.Show(&l.frame, l.hold)
	if err != nil {
		return errors.New("present: " + err.Error())
	}
	return nil
}

// bootSplash lights the whole matrix, like the board does at power-on, then slides a bar across it. It draws into
// its own frame so the tick loop's frame buffer never holds more than one lit cell.
func (l *Level) bootSplash() error {
	full, err := static.New("splash")
	if err != nil {
		return err
	}
	bar, err := slide.New("bar")
	if err != nil {
		return err
	}

	var f Frame
	for _, a := range []animation.Animation{full, bar} {
		a.Activate(&f)
		for i := uint32(0); ; i++ {
			more := a.DrawFrame(&f, i)
			err = l.display.Show(&f, l.hold)
			if err != nil {
				return err
			}
			if !more {
				break
			}
		}
	}
	f.Clear()
	return l.display.Show(&f, l.hold)
}

type faultError struct {
	stage string
	err   error
}

func (e *faultError) Error() string { return e.stage + ": " + e.err.Error() }

func (e *faultError) Unwrap() error { return e.err }

func (e *faultError) Is(target error) bool { return target == ErrReadFault }
