package main

import (
	"context"
	"flag"
	"log"

	"github.com/fabiovitalba/piston"
	"github.com/fabiovitalba/piston/backend/ebitengine"
	"github.com/fabiovitalba/piston/backend/terminal"
	"github.com/fabiovitalba/piston/internal/config"
	"github.com/fabiovitalba/piston/source"
)

func runRecord(ctx context.Context, args []string, logger *log.Logger) error {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}
	if cfg.Backend == "remote" {
		return serve(ctx, cfg, logger)
	}

	src := source.NewChannelSource(cfg.Buffer)
	out, err := openSink(cfg, cfg.Backend, logger)
	if err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- drain(src, out) }()

	var runErr error
	switch cfg.Backend {
	case "terminal":
		runErr = recordTerminal(ctx, cfg, src, logger)
	case "ebitengine":
		runErr = recordEbiten(ctx, src, logger)
	}

	_ = src.Close()
	if err := <-done; err != nil && runErr == nil {
		runErr = err
	}
	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if n := src.Dropped(); n > 0 {
		logger.Printf("dropped %d inputs", n)
	}
	return runErr
}

func recordTerminal(ctx context.Context, cfg config.Config, src *source.ChannelSource, logger *log.Logger) error {
	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()
	t := terminal.New(screen, terminal.Options{ExitOnCtrlC: cfg.ExitOnCtrlC, Logger: logger})
	return t.Run(ctx, src)
}

// recordEbiten keeps inputs only; update and render ticks are not recorded.
// The game loop must not block, so full buffers drop.
func recordEbiten(ctx context.Context, src *source.ChannelSource, logger *log.Logger) error {
	g := ebitengine.New(func(ev piston.Event) {
		if in, ok := piston.InputOf(ev); ok {
			src.TryPublish(in)
		}
	}, ebitengine.Options{Context: ctx, Logger: logger})
	return ebitengine.Run(g, "pistonlog", 640, 480)
}
