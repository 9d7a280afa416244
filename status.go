package tiltlevel

import (
	"errors"
	"strconv"

	"github.com/ajanata/textbuf"
)

func (l *Level) initStatus() error {
	if l.statusDisplay == nil {
		return nil
	}

	var err error
	l.statusText, err = textbuf.New(l.statusDisplay, textbuf.FontSize6x8)
	if err != nil {
		return errors.New("init status: " + err.Error())
	}

	w, h := l.statusText.Size()
	if w < 12 || h < 3 {
		return errors.New("unusably small status display")
	}

	err = l.statusText.SetLineInverse(0, "TILTLEVEL BOOTING")
	if err != nil {
		return errors.New("boot msg: " + err.Error())
	}
	// we already validated it has at least 3 lines
	_ = l.statusText.SetY(1)
	return nil
}

// statusLine appends a boot message. Once the main loop is about to start the screen is cleared for drawStatus.
func (l *Level) statusLine(msg string) {
	if l.statusText == nil {
		return
	}
	// we already know it was possible to print text so don't bother checking
	_ = l.statusText.Println(msg)
	if l.init {
		_ = l.statusText.Clear()
	}
}

// drawStatus shows the mode, tick rate, last sample and lit cell.
func (l *Level) drawStatus(t Tick) {
	if l.statusText == nil {
		return
	}

	// every SetLine flushes to the display, only the first failure is worth logging
	err := l.statusText.SetLineInverse(0, statusHeader(t, l.lastRate))
	if err == nil {
		err = l.statusText.SetLine(1, statusSample(t.Sample))
	}
	if err == nil {
		err = l.statusText.SetLine(2, statusCell(t))
	}
	if err != nil {
		l.log.Info("status display: " + err.Error())
	}
}

func statusHeader(t Tick, rate uint32) string {
	return t.Mode.String() + " " + strconv.Itoa(int(rate)) + "Hz #" + strconv.Itoa(int(t.Seq))
}

func statusSample(s AccelSample) string {
	return "x" + strconv.Itoa(int(s.X)) + " y" + strconv.Itoa(int(s.Y)) + " z" + strconv.Itoa(int(s.Z))
}

func statusCell(t Tick) string {
	if t.Action != ActionRender {
		return t.Action.String()
	}
	return "cell " + strconv.Itoa(int(t.Row)) + "," + strconv.Itoa(int(t.Col))
}
