package source

import (
	"context"
	"time"

	"github.com/fabiovitalba/piston"
)

// Events merges the inputs of src with update ticks every interval. Each
// input is wrapped as an Event; each tick carries the measured seconds since
// the previous one. A non-positive interval disables ticks.
//
// The returned channel is closed once ctx is done, or once src is closed and
// its buffered inputs have been delivered.
func Events(ctx context.Context, src Source, interval time.Duration) <-chan piston.Event {
	out := make(chan piston.Event)
	go func() {
		defer close(out)

		var tick <-chan time.Time
		if interval > 0 {
			t := time.NewTicker(interval)
			defer t.Stop()
			tick = t.C
		}
		last := time.Now()
		inputs := src.Inputs()

		send := func(ev piston.Event) bool {
			select {
			case out <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case in, ok := <-inputs:
				if !ok {
					return
				}
				if !send(piston.Wrap(in)) {
					return
				}
			case now := <-tick:
				dt := now.Sub(last).Seconds()
				last = now
				ev, _ := piston.FromDT(dt, nil)
				if !send(ev) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
