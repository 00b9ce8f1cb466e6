package canvas

import "github.com/katalvlaran/pipeloop/grid"

// span is a work item of the scanline fill: the parent run [x1, x2] of the
// row y-dy, to be continued into row y.
type span struct {
	x1, x2 int
	y, dy  int
}

// inside reports whether (x,y) is on the raster, passable and not yet filled.
func (c *Canvas) inside(x, y int) bool {
	if !c.InBounds(x, y) {
		return false
	}
	v := c.cells[c.index(x, y)]
	return v.Passable() && !v.IsFilled()
}

// Fill floods every passable cell 4-connected to seed and returns how many
// cells it newly marked. A seed that is off the raster, blocked or already
// filled yields 0, so filling twice changes nothing.
//
// Algorithm: explicit-stack span fill. Each popped span is extended left
// over passable cells (pushing the overhang back towards the parent row),
// then scanned left to right; every maximal run found is marked and pushed
// into the next row, and runs reaching past the parent's right bound are also
// pushed back towards the parent row.
//
// Complexity: O(Width×Height) time; each cell is marked at most once.
func (c *Canvas) Fill(seed grid.Pos) int {
	if !c.inside(seed.X, seed.Y) {
		return 0
	}

	filled := 0
	set := func(x, y int) {
		c.cells[c.index(x, y)] |= Filled
		filled++
	}

	stack := []span{
		{x1: seed.X, x2: seed.X, y: seed.Y, dy: 1},
		{x1: seed.X, x2: seed.X, y: seed.Y - 1, dy: -1},
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x1, x2, y, dy := s.x1, s.x2, s.y, s.dy
		x := x1
		if c.inside(x, y) {
			for c.inside(x-1, y) {
				set(x-1, y)
				x--
			}
			if x < x1 {
				stack = append(stack, span{x1: x, x2: x1 - 1, y: y - dy, dy: -dy})
			}
		}
		for x1 <= x2 {
			for c.inside(x1, y) {
				set(x1, y)
				x1++
			}
			if x1 > x {
				stack = append(stack, span{x1: x, x2: x1 - 1, y: y + dy, dy: dy})
			}
			if x1-1 > x2 {
				stack = append(stack, span{x1: x2 + 1, x2: x1 - 1, y: y - dy, dy: -dy})
			}
			x1++
			for x1 < x2 && !c.inside(x1, y) {
				x1++
			}
			x = x1
		}
	}

	return filled
}
