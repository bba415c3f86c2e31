// Command pistonlog records, replays and serves piston input streams.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

const usage = `usage: pistonlog <command> [flags]

commands:
  record   capture inputs from a backend into a recording
  show     print a recording (-follow tails, -dot graphs, -summary counts)
  serve    record inputs sent to a websocket endpoint

Run "pistonlog <command> -h" for the flags of a command.
`

func main() {
	logger := log.New(os.Stderr, "pistonlog: ", log.LstdFlags)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "record":
		err = runRecord(ctx, os.Args[2:], logger)
	case "show":
		err = runShow(ctx, os.Args[2:], os.Stdout)
	case "serve":
		err = runServe(ctx, os.Args[2:], logger)
	case "help", "-h", "--help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Print(err)
		stop()
		os.Exit(1)
	}
}
