package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/fabiovitalba/piston/internal/config"
	"github.com/fabiovitalba/piston/remote"
	"github.com/fabiovitalba/piston/source"
)

func runServe(ctx context.Context, args []string, logger *log.Logger) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}
	cfg.Backend = "remote"
	return serve(ctx, cfg, logger)
}

// serve records inputs from websocket peers at /input until ctx is done.
func serve(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	src := source.NewChannelSource(cfg.Buffer)
	out, err := openSink(cfg, "remote", logger)
	if err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- drain(src, out) }()

	mux := http.NewServeMux()
	mux.Handle("/input", remote.NewHandler(src, logger))
	srv := &http.Server{Addr: cfg.Listen, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Printf("listening on ws://%s/input", cfg.Listen)

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errc:
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	if errors.Is(runErr, http.ErrServerClosed) {
		runErr = nil
	}

	_ = src.Close()
	if err := <-done; err != nil && runErr == nil {
		runErr = err
	}
	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
