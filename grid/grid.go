package grid

import "strings"

// New returns a Width×Height grid of empty cells with the start at (0,0).
// It is the building block for Parse and the transforms; callers that fill
// a grid by hand must Set the start cell to Start themselves.
// Complexity: O(W×H).
func New(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Pipe, width*height),
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{X: idx % g.Width, Y: idx / g.Width}
}

// At returns the capability set at p, or None when p is off the grid.
// Complexity: O(1).
func (g *Grid) At(p Pos) Pipe {
	if !g.InBounds(p.X, p.Y) {
		return None
	}
	return g.cells[g.Index(p.X, p.Y)]
}

// Set stores pipe at p. Off-grid positions are ignored.
func (g *Grid) Set(p Pos, pipe Pipe) {
	if g.InBounds(p.X, p.Y) {
		g.cells[g.Index(p.X, p.Y)] = pipe
	}
}

// Cells returns the number of cells, Width×Height.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}

// Resolved reports whether the start cell has been replaced by its inferred set.
func (g *Grid) Resolved() bool {
	return g.resolved
}

// ResolveStart replaces the pending start capability with its inferred set.
// Resolving again with the same set is a no-op; a different set returns
// ErrStartResolved and leaves the grid unchanged.
func (g *Grid) ResolveStart(p Pipe) error {
	if g.resolved {
		if g.At(g.Start) != p {
			return ErrStartResolved
		}
		return nil
	}
	g.Set(g.Start, p)
	g.resolved = true
	return nil
}

// Clone returns a deep copy of g, including its resolution state.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]Pipe, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}

// String re-encodes the grid as newline-separated rows of symbols.
// A resolved start cell is written as 'S' so the output parses back.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			cell := g.cells[g.Index(x, y)]
			if g.Start == (Pos{X: x, Y: y}) && (g.resolved || cell == Start) {
				sb.WriteByte(SymbolStart)
				continue
			}
			sb.WriteByte(cell.Symbol())
		}
	}
	return sb.String()
}
