package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
)

// InferStart derives the start cell's true capability set from its
// neighbours: direction d is kept when the neighbour in direction d connects
// back towards the start. Neighbours off the grid never connect.
//
// Returns ErrDegenerateStart or ErrAmbiguousStart unless exactly two
// directions survive.
// Complexity: O(1).
func InferStart(g *grid.Grid) (grid.Pipe, error) {
	var p grid.Pipe
	for _, d := range grid.Directions {
		if g.At(g.Start.Step(d)).Has(d.Opposite()) {
			p = p.With(d)
		}
	}
	switch n := p.Len(); {
	case n < 2:
		return grid.None, fmt.Errorf("%w: start %v has %d", ErrDegenerateStart, g.Start, n)
	case n > 2:
		return grid.None, fmt.Errorf("%w: start %v has %d", ErrAmbiguousStart, g.Start, n)
	}
	return p, nil
}

// walker encapsulates mutable walk state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	limit int
	res   *Loop
}

// Walk follows the loop of g from the start cell back to it. Once the loop
// closes, the grid's start cell is resolved in place to the inferred set;
// a failed walk leaves g untouched. Walking the same grid again is allowed.
//
// Returns ErrOptionViolation for bad options, a grid.ErrFormat error when
// the start cell cannot be inferred, and ErrCycle / ErrBrokenPipe when the
// network is not a single simple cycle through start.
// Complexity: O(L) time and memory.
func Walk(g *grid.Grid, opts ...Option) (*Loop, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := InferStart(g)
	if err != nil {
		return nil, err
	}
	limit := g.Cells()
	if o.MaxSteps > 0 && o.MaxSteps < limit {
		limit = o.MaxSteps
	}
	w := &walker{
		grid:  g,
		opts:  o,
		limit: limit,
		res: &Loop{
			Start: g.Start,
			Steps: make([]Step, 0, 2*(g.Width+g.Height)),
		},
	}

	dirs := start.Dirs()
	out, back := dirs[0], dirs[1]
	if o.Departure == Second {
		out, back = back, out
	}
	if err = w.run(start, out, back); err != nil {
		return nil, err
	}
	if err = g.ResolveStart(start); err != nil {
		return nil, err
	}
	return w.res, nil
}

// run records the start cell and follows exits until the start is reached again.
func (w *walker) run(start grid.Pipe, out, back grid.Dir) error {
	pos := w.grid.Start
	w.record(Step{Pos: pos, Pipe: start, From: back})

	for {
		pos = pos.Step(out)
		from := out.Opposite()
		if pos == w.grid.Start {
			if from != back {
				return fmt.Errorf("%w: re-entered start %v from %v", ErrBrokenPipe, pos, from)
			}
			return nil
		}
		if len(w.res.Steps) >= w.limit {
			return fmt.Errorf("%w: no return to start within %d steps", ErrCycle, w.limit)
		}

		pipe := w.grid.At(pos)
		if !pipe.Has(from) {
			return fmt.Errorf("%w: %v does not connect %v", ErrBrokenPipe, pos, from)
		}
		next, ok := pipe.Without(from).Single()
		if !ok {
			return fmt.Errorf("%w: %v has no single exit", ErrBrokenPipe, pos)
		}
		w.record(Step{Pos: pos, Pipe: pipe, From: from})
		out = next
	}
}

// record appends s, updates the length and fires OnStep.
func (w *walker) record(s Step) {
	idx := len(w.res.Steps)
	w.res.Steps = append(w.res.Steps, s)
	w.res.Length = len(w.res.Steps)
	w.opts.OnStep(s, idx)
}
