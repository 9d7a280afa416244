package tiltlevel

import (
	"fmt"
)

type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
}

// PrintLogger outputs to whatever println is hooked up to (RTT or the USB serial port on the micro:bit). Debug lines,
// one per accelerometer sample, are dropped without formatting unless Verbose is set.
type PrintLogger struct {
	Verbose bool

	// out replaces println in tests
	out func(string)
}

func (p *PrintLogger) print(msg string) {
	if p.out != nil {
		p.out(msg)
		return
	}
	println(msg)
}

func (p *PrintLogger) Debug(msg string) {
	if p.Verbose {
		p.print(msg)
	}
}

func (p *PrintLogger) Debugf(format string, v ...any) {
	if p.Verbose {
		p.print(fmt.Sprintf(format, v...))
	}
}

func (p *PrintLogger) Info(msg string) {
	p.print(msg)
}

func (p *PrintLogger) Infof(format string, v ...any) {
	p.print(fmt.Sprintf(format, v...))
}
