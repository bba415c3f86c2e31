package terminal

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/fabiovitalba/piston"
	"github.com/fabiovitalba/piston/source"
)

// Options configures a Terminal.
type Options struct {
	// ExitOnCtrlC publishes CloseArgs and stops Run when Ctrl-C is pressed.
	ExitOnCtrlC bool
	// Logger receives screen errors. Defaults to log.Default().
	Logger *log.Logger
}

// Terminal polls a tcell screen and publishes its inputs.
type Terminal struct {
	screen tcell.Screen
	opts   Options
	conv   Converter
}

// Open creates and initializes the terminal screen with mouse and focus
// reporting enabled. The caller must call Fini on it.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init: %w", err)
	}
	s.EnableMouse()
	s.EnableFocus()
	return s, nil
}

// New wraps an initialized screen.
func New(screen tcell.Screen, opts Options) *Terminal {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Terminal{screen: screen, opts: opts}
}

// Run publishes inputs until ctx is canceled, the screen is finalized, or
// Ctrl-C is pressed with ExitOnCtrlC set. It returns ctx.Err() on
// cancellation and nil otherwise, unless publishing fails.
func (t *Terminal) Run(ctx context.Context, pub source.Publisher) error {
	stop := context.AfterFunc(ctx, func() {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if e, ok := ev.(*tcell.EventError); ok {
			t.opts.Logger.Printf("terminal: %v", e)
			continue
		}

		if k, ok := ev.(*tcell.EventKey); ok && t.opts.ExitOnCtrlC && k.Key() == tcell.KeyCtrlC {
			return pub.Publish(ctx, piston.CloseArgs{})
		}
		for _, in := range t.conv.Convert(ev) {
			if err := pub.Publish(ctx, in); err != nil {
				return err
			}
		}
	}
}
