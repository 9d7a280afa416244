//go:build tinygo

// Command tiltlevel is the BBC micro:bit v2 firmware: a bubble level on the 5x5 LED matrix, with button A selecting
// coarse and button B fine precision.
package main

import (
	"context"
	"errors"
	"machine"
	"time"

	"tinygo.org/x/drivers/lsm303agr"
	"tinygo.org/x/drivers/microbitmatrix"

	"github.com/ajanata/tiltlevel"
	"github.com/ajanata/tiltlevel/internal/matrix"
	"github.com/ajanata/tiltlevel/internal/odr"
)

const (
	hold       = 200 * time.Millisecond
	sampleRate = 10
	// log every sample over RTT
	verbose = true
)

type board struct {
	accel *lsm303agr.Device
	gate  *odr.Gate
	disp  microbitmatrix.Device
}

func (b *board) EarlyInit() (tiltlevel.Display, error) {
	machine.BUTTONA.Configure(machine.PinConfig{Mode: machine.PinInput})
	machine.BUTTONB.Configure(machine.PinConfig{Mode: machine.PinInput})

	// the accelerometer is on the internal bus
	err := machine.I2C0.Configure(machine.I2CConfig{
		SCL: machine.SCL1_PIN,
		SDA: machine.SDA1_PIN,
	})
	if err != nil {
		return nil, errors.New("i2c: " + err.Error())
	}

	b.accel = lsm303agr.New(machine.I2C0)
	if !b.accel.Connected() {
		return nil, errors.New("lsm303agr not connected")
	}
	err = b.accel.Configure(lsm303agr.Configuration{
		AccelPowerMode: lsm303agr.ACCEL_POWER_NORMAL,
		AccelRange:     lsm303agr.ACCEL_RANGE_2G,
		AccelDataRate:  lsm303agr.ACCEL_DATARATE_10HZ,
	})
	if err != nil {
		return nil, errors.New("lsm303agr: " + err.Error())
	}
	b.gate = odr.New(sampleRate)

	b.disp = microbitmatrix.New()
	b.disp.Configure(microbitmatrix.Config{})
	return matrix.New(&b.disp, matrix.LEDConfig)
}

// Buttons are active low.
func (b *board) Buttons() (a, bb tiltlevel.ButtonState, err error) {
	return state(machine.BUTTONA.Get()), state(machine.BUTTONB.Get()), nil
}

func state(level bool) tiltlevel.ButtonState {
	if level {
		return tiltlevel.ButtonReleased
	}
	return tiltlevel.ButtonPressed
}

func (b *board) Accelerometer() (tiltlevel.AccelSample, tiltlevel.SensorStatus, error) {
	if !b.gate.Ready() {
		return tiltlevel.AccelSample{}, tiltlevel.SensorStatusBusy, nil
	}
	x, y, z, err := b.accel.ReadAcceleration()
	if err != nil {
		return tiltlevel.AccelSample{}, tiltlevel.SensorStatusBusy, err
	}
	// micro-g to milli-g
	return tiltlevel.AccelSample{X: x / 1000, Y: y / 1000, Z: z / 1000}, tiltlevel.SensorStatusAvailable, nil
}

func main() {
	l, err := tiltlevel.New(&board{}, tiltlevel.Options{
		Hold:        hold,
		InitialMode: tiltlevel.ModeCoarse,
		Splash:      true,
		Logger:      &tiltlevel.PrintLogger{Verbose: verbose},
	})
	if err != nil {
		halt(err)
	}
	err = l.Init()
	if err != nil {
		halt(err)
	}

	err = l.Run(context.Background())
	halt(err)
}

// unfortunately you can't recover runtime panics in tinygo, so this is just going to be used for things we detect
// that are fatal. The matrix stops being refreshed, so it goes dark.
func halt(err error) {
	for {
		println("fatal:", err.Error())
		time.Sleep(time.Second)
	}
}
