package grid

// rotateDir turns d a quarter clockwise.
func rotateDir(d Dir) Dir {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	return 0
}

// mapPipe applies fn to every direction of p.
func mapPipe(p Pipe, fn func(Dir) Dir) Pipe {
	var out Pipe
	for _, d := range Directions {
		if p.Has(d) {
			out = out.With(fn(d))
		}
	}
	return out
}

// Rotate returns a copy of g turned 90° clockwise. The result is Height×Width;
// cell (x,y) moves to (Height-1-y, x) and every pipe is turned with it.
// Complexity: O(W×H).
func (g *Grid) Rotate() *Grid {
	r := New(g.Height, g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r.Set(Pos{X: g.Height - 1 - y, Y: x}, mapPipe(g.At(Pos{X: x, Y: y}), rotateDir))
		}
	}
	r.Start = Pos{X: g.Height - 1 - g.Start.Y, Y: g.Start.X}
	r.resolved = g.resolved
	return r
}

// Mirror returns a copy of g flipped left to right; East and West swap.
// Complexity: O(W×H).
func (g *Grid) Mirror() *Grid {
	flip := func(d Dir) Dir {
		if d == East || d == West {
			return d.Opposite()
		}
		return d
	}
	m := New(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			m.Set(Pos{X: g.Width - 1 - x, Y: y}, mapPipe(g.At(Pos{X: x, Y: y}), flip))
		}
	}
	m.Start = Pos{X: g.Width - 1 - g.Start.X, Y: g.Start.Y}
	m.resolved = g.resolved
	return m
}
