package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/grid"
)

// errNoInput is returned when neither an argument nor the config names an input.
var errNoInput = errors.New("no input: pass a file, '-' for stdin, or set input in the config")

// inputPath picks the positional argument, falling back to the config.
func (c *CLI) inputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if in := c.cfg().Input; in != "" {
		return in, nil
	}
	return "", errNoInput
}

// readGrid reads and parses the grid at path; "-" reads the command's stdin
// until EOF or until the command's context is cancelled.
func readGrid(cmd *cobra.Command, path string) (*grid.Grid, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = readAll(cmd.Context(), cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	g, err := grid.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// readAll is io.ReadAll that gives up when ctx is done. The reader goroutine
// is abandoned on cancellation; the process is about to exit anyway.
func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.data, res.err
	}
}
