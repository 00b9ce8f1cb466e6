package canvas

import (
	"strings"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

// Scale is the number of raster cells per logical cell along each axis.
const Scale = 3

// Origin is the padded raster corner; it lies outside every loop.
var Origin = grid.Pos{X: 0, Y: 0}

// New returns an all-Blank raster for a cols×rows logical grid.
func New(cols, rows int) *Canvas {
	w, h := Scale*cols+2, Scale*rows+2
	return &Canvas{
		Width:  w,
		Height: h,
		Cols:   cols,
		Rows:   rows,
		cells:  make([]Cell, w*h),
	}
}

// FromLoop renders every step of l onto a new raster sized for g.
func FromLoop(g *grid.Grid, l *loop.Loop) *Canvas {
	c := New(g.Width, g.Height)
	for i, s := range l.Steps {
		c.Draw(s, i == 0)
	}
	return c
}

// InBounds reports whether raster cell (x,y) exists.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

func (c *Canvas) index(x, y int) int {
	return y*c.Width + x
}

// At returns raster cell (x,y). Off-raster cells read as Wall.
func (c *Canvas) At(x, y int) Cell {
	if !c.InBounds(x, y) {
		return Wall
	}
	return c.cells[c.index(x, y)]
}

// blockOrigin returns the raster coordinate of the top-left cell of p's block.
func blockOrigin(p grid.Pos) (x, y int) {
	return Scale*p.X + 1, Scale*p.Y + 1
}

// Draw renders the 3×3 block of one loop step.
func (c *Canvas) Draw(s loop.Step, isStart bool) {
	x0, y0 := blockOrigin(s.Pos)
	for dy := 0; dy < Scale; dy++ {
		for dx := 0; dx < Scale; dx++ {
			c.cells[c.index(x0+dx, y0+dy)] = Trim
		}
	}
	centre := Marker
	if isStart {
		centre = StartMarker
	}
	c.cells[c.index(x0+1, y0+1)] = centre
	for _, d := range s.Pipe.Dirs() {
		dx, dy := d.Offset()
		c.cells[c.index(x0+1+dx, y0+1+dy)] = Wall
	}
}

// Block returns the nine cells of p's block in row-major order.
func (c *Canvas) Block(p grid.Pos) [9]Cell {
	var out [9]Cell
	x0, y0 := blockOrigin(p)
	for i := range out {
		out[i] = c.At(x0+i%Scale, y0+i/Scale)
	}
	return out
}

// Classify reports whether logical cell p is on the loop, enclosed by it or
// outside it. Meaningful after Fill.
func (c *Canvas) Classify(p grid.Pos) Region {
	x0, y0 := blockOrigin(p)
	centre := c.At(x0+1, y0+1)
	switch {
	case !centre.Passable():
		return OnLoop
	case centre.IsFilled():
		return Exterior
	default:
		return Interior
	}
}

// Unreached counts Blank cells the fill did not reach. Loop blocks never
// contribute, so this is nine times the number of enclosed logical cells.
func (c *Canvas) Unreached() int {
	n := 0
	for _, v := range c.cells {
		if v == Blank {
			n++
		}
	}
	return n
}

// String draws the raster one row per line using Cell.Glyph.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.Width + 1) * c.Height)
	for y := 0; y < c.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.Width; x++ {
			sb.WriteByte(c.cells[c.index(x, y)].Glyph())
		}
	}
	return sb.String()
}

// Lines returns the raster rows as strings, for callers that style cells.
func (c *Canvas) Lines() []string {
	return strings.Split(c.String(), "\n")
}
