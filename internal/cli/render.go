package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/solve"
)

// renderCommand creates the render command that prints the filled raster.
func (c *CLI) renderCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "render [grid.txt|-]",
		Short: "Print the 3× raster after the exterior flood fill",
		Long: `Print the upscaled raster used to count the enclosed area.

Each grid cell becomes a 3×3 block:

  .  reached by the flood fill (outside the loop)
  I  enclosed area
  #  pipe wall        o  loop cell      S  start
     (blank) loop block cell not reached, e.g. a squeeze gap inside the loop`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.inputPath(args)
			if err != nil {
				return err
			}
			return c.runRender(cmd, path, !plain && c.cfg().Render.Color)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "disable colour")

	return cmd
}

// runRender analyses the grid and writes the raster followed by the census.
func (c *CLI) runRender(cmd *cobra.Command, path string, color bool) error {
	logger := loggerFromContext(cmd.Context())

	g, err := readGrid(cmd, path)
	if err != nil {
		return err
	}
	if err = cmd.Context().Err(); err != nil {
		return err
	}

	r, err := solve.Analyze(g, c.cfg().walkOptions()...)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	census := r.Census()
	logger.Debug("rendered raster", "width", r.Canvas.Width, "height", r.Canvas.Height,
		"loop", census.OnLoop, "interior", census.Interior, "exterior", census.Exterior)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderCanvas(r.Canvas, color))
	printMetric(out, "loop", census.OnLoop)
	printMetric(out, "interior", census.Interior)
	printMetric(out, "exterior", census.Exterior)
	return nil
}
