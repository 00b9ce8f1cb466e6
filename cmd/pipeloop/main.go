package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/internal/cli"
	"github.com/katalvlaran/pipeloop/loop"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitFormatError = 2
	exitCycleError  = 3
	exitInterrupted = 130 // shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	err := c.RootCommand().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		c.Logger.Error(err)
	}
	cancel()
	os.Exit(exitCode(err))
}

// exitCode maps an execution error to the process status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.Is(err, grid.ErrFormat):
		return exitFormatError
	case errors.Is(err, loop.ErrCycle):
		return exitCycleError
	default:
		return exitFailure
	}
}
