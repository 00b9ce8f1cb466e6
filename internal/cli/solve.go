package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/solve"
)

// solveCommand creates the solve command printing both metrics.
func (c *CLI) solveCommand() *cobra.Command {
	var part int

	cmd := &cobra.Command{
		Use:   "solve [grid.txt|-]",
		Short: "Print the farthest-point distance and the enclosed area",
		Long: `Print the two loop metrics of a pipe grid.

  farthest  steps from S to the point of the loop farthest from it
  enclosed  number of cells strictly inside the loop

With --part 1 or --part 2 only that number is printed, without styling.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if part < 0 || part > 2 {
				return fmt.Errorf("--part must be 0, 1 or 2, got %d", part)
			}
			path, err := c.inputPath(args)
			if err != nil {
				return err
			}
			return c.runSolve(cmd, path, part)
		},
	}

	cmd.Flags().IntVarP(&part, "part", "p", 0, "print only metric 1 (farthest) or 2 (enclosed); 0 prints both")

	return cmd
}

// runSolve parses the grid, analyses it and prints the requested metrics.
func (c *CLI) runSolve(cmd *cobra.Command, path string, part int) error {
	logger := loggerFromContext(cmd.Context())
	sw := startStopwatch(logger)

	g, err := readGrid(cmd, path)
	if err != nil {
		return err
	}
	sw.lap("parsed grid", "width", g.Width, "height", g.Height, "start", g.Start.String())

	if err = cmd.Context().Err(); err != nil {
		return err
	}

	r, err := solve.Analyze(g, c.cfg().walkOptions()...)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}
	sw.lap("analysed loop", "length", r.Loop.Length, "filled", r.Filled)

	out := cmd.OutOrStdout()
	switch part {
	case 1:
		fmt.Fprintln(out, r.Farthest)
	case 2:
		fmt.Fprintln(out, r.Enclosed)
	default:
		printTitle(out, "%s  %d×%d", path, g.Width, g.Height)
		printMetric(out, "farthest", r.Farthest)
		printMetric(out, "enclosed", r.Enclosed)
	}
	return nil
}
