package solve

import (
	"github.com/katalvlaran/pipeloop/canvas"
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

// Report holds every intermediate product of one analysis.
type Report struct {
	Grid   *grid.Grid
	Loop   *loop.Loop
	Canvas *canvas.Canvas
	// Filled is the number of raster cells reached by the flood fill.
	Filled int
	// Farthest is the loop-length metric.
	Farthest int
	// Enclosed is the enclosed-area metric.
	Enclosed int
}

// Census counts logical cells by region; the three fields sum to W×H.
type Census struct {
	OnLoop   int
	Interior int
	Exterior int
}

// Total returns OnLoop + Interior + Exterior.
func (c Census) Total() int {
	return c.OnLoop + c.Interior + c.Exterior
}

// LoopLength walks the loop of g and returns the distance from the start to
// its farthest point.
func LoopLength(g *grid.Grid, opts ...loop.Option) (int, error) {
	l, err := loop.Walk(g, opts...)
	if err != nil {
		return 0, err
	}
	return l.Farthest(), nil
}

// EnclosedArea returns the number of logical cells enclosed by the loop of g.
func EnclosedArea(g *grid.Grid, opts ...loop.Option) (int, error) {
	r, err := Analyze(g, opts...)
	if err != nil {
		return 0, err
	}
	return r.Enclosed, nil
}

// Analyze walks the loop, renders and fills the canvas from its padded
// corner, and computes both metrics.
// Complexity: O(W×H) time and memory.
func Analyze(g *grid.Grid, opts ...loop.Option) (*Report, error) {
	l, err := loop.Walk(g, opts...)
	if err != nil {
		return nil, err
	}
	c := canvas.FromLoop(g, l)
	filled := c.Fill(canvas.Origin)

	return &Report{
		Grid:     g,
		Loop:     l,
		Canvas:   c,
		Filled:   filled,
		Farthest: l.Farthest(),
		Enclosed: c.Unreached() / (canvas.Scale * canvas.Scale),
	}, nil
}

// Census classifies every logical cell of the analysed grid.
func (r *Report) Census() Census {
	var out Census
	for y := 0; y < r.Grid.Height; y++ {
		for x := 0; x < r.Grid.Width; x++ {
			switch r.Canvas.Classify(grid.Pos{X: x, Y: y}) {
			case canvas.OnLoop:
				out.OnLoop++
			case canvas.Interior:
				out.Interior++
			case canvas.Exterior:
				out.Exterior++
			}
		}
	}
	return out
}

// Solve parses text and returns both metrics.
func Solve(text string, opts ...loop.Option) (farthest, enclosed int, err error) {
	g, err := grid.Parse(text)
	if err != nil {
		return 0, 0, err
	}
	r, err := Analyze(g, opts...)
	if err != nil {
		return 0, 0, err
	}
	return r.Farthest, r.Enclosed, nil
}
