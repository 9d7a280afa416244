//go:build !tinygo

package sim

import (
	"fmt"
	"io"
	"log"
)

// Logger is a tiltlevel.Logger for the host. Debug output is only written when verbose.
type Logger struct {
	l       *log.Logger
	verbose bool
}

func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{l: log.New(w, "", log.Ltime|log.Lmicroseconds), verbose: verbose}
}

func (l *Logger) Debug(msg string) {
	if l.verbose {
		l.l.Print("DEBUG " + msg)
	}
}

func (l *Logger) Debugf(format string, v ...any) {
	if l.verbose {
		l.l.Print("DEBUG " + fmt.Sprintf(format, v...))
	}
}

func (l *Logger) Info(msg string) {
	l.l.Print("INFO  " + msg)
}

func (l *Logger) Infof(format string, v ...any) {
	l.l.Print("INFO  " + fmt.Sprintf(format, v...))
}
