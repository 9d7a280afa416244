//go:build !tinygo

package sim

import (
	"context"
	"errors"

	"github.com/ajanata/tiltlevel"
)

// RunHeadless runs an initialized level for a fixed number of ticks. A limit of zero runs until the script is
// exhausted. Read faults are logged and skipped, like on hardware.
func RunHeadless(ctx context.Context, l *tiltlevel.Level, script *Script, ticks uint64, log tiltlevel.Logger) ([]tiltlevel.Tick, error) {
	if ticks == 0 {
		ticks = uint64(script.Len())
	}

	out := make([]tiltlevel.Tick, 0, ticks)
	for n := uint64(0); n < ticks; n++ {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		t, err := l.RunTick()
		if err != nil {
			if errors.Is(err, tiltlevel.ErrReadFault) {
				log.Info("skipped tick: " + err.Error())
				out = append(out, t)
				continue
			}
			return out, err
		}
		out = append(out, t)
	}
	return out, nil
}
