// Package grid defines the capability bit-set, positions, the Grid type
// and sentinel errors of the grid subpackage.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid parsing.
var (
	// ErrFormat is the category every malformed-input error wraps.
	ErrFormat = errors.New("grid: malformed input")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrFormat)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrFormat)
	// ErrUnknownSymbol indicates a byte outside the pipe alphabet.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrFormat)
	// ErrNoStart indicates the input contains no start symbol.
	ErrNoStart = fmt.Errorf("%w: no start symbol", ErrFormat)
	// ErrMultipleStarts indicates the input contains more than one start symbol.
	ErrMultipleStarts = fmt.Errorf("%w: more than one start symbol", ErrFormat)

	// ErrStartResolved is returned when the start cell is resolved twice
	// with different capability sets.
	ErrStartResolved = errors.New("grid: start cell already resolved")
)

// Dir is a single compass direction encoded as one bit of a Pipe.
type Dir uint8

const (
	// North points to the row above (Y-1).
	North Dir = 1 << iota
	// South points to the row below (Y+1).
	South
	// East points to the column on the right (X+1).
	East
	// West points to the column on the left (X-1).
	West
)

// Directions lists the four directions in their canonical order.
var Directions = [4]Dir{North, South, East, West}

// Opposite returns the mirrored direction: departing East means arriving from West.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// Offset returns the unit step (dx, dy) of d.
func (d Dir) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// String returns the lower-case direction name.
func (d Dir) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Dir(%d)", uint8(d))
}

// Pipe is the capability set of a cell: the directions its pipe connects to.
// All set operations are O(1) bit operations.
type Pipe uint8

const (
	// None is the empty capability set of a ground cell.
	None Pipe = 0
	// Start is the declared capability of the start cell before inference.
	Start = Pipe(North) | Pipe(South) | Pipe(East) | Pipe(West)

	// The six pipe shapes of the alphabet.
	Vertical   = Pipe(North) | Pipe(South)
	Horizontal = Pipe(East) | Pipe(West)
	BendNE     = Pipe(North) | Pipe(East)
	BendNW     = Pipe(North) | Pipe(West)
	BendSW     = Pipe(South) | Pipe(West)
	BendSE     = Pipe(South) | Pipe(East)
)

// Of builds a Pipe from the given directions.
func Of(dirs ...Dir) Pipe {
	var p Pipe
	for _, d := range dirs {
		p |= Pipe(d)
	}
	return p
}

// Has reports whether p connects towards d.
func (p Pipe) Has(d Dir) bool { return p&Pipe(d) != 0 }

// With returns p with d added.
func (p Pipe) With(d Dir) Pipe { return p | Pipe(d) }

// Without returns p with d removed.
func (p Pipe) Without(d Dir) Pipe { return p &^ Pipe(d) }

// Union returns p ∪ q.
func (p Pipe) Union(q Pipe) Pipe { return p | q }

// Intersect returns p ∩ q.
func (p Pipe) Intersect(q Pipe) Pipe { return p & q }

// Len returns the number of directions in p.
func (p Pipe) Len() int {
	n := 0
	for v := p & Start; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Single returns the only direction in p. ok is false unless Len()==1.
func (p Pipe) Single() (d Dir, ok bool) {
	p &= Start
	if p == 0 || p&(p-1) != 0 {
		return 0, false
	}
	return Dir(p), true
}

// Dirs returns the members of p in canonical order.
func (p Pipe) Dirs() []Dir {
	out := make([]Dir, 0, 4)
	for _, d := range Directions {
		if p.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Pos is a cell coordinate. Off-grid values are allowed while probing neighbours.
type Pos struct {
	X, Y int
}

// Step returns the position one cell away in direction d.
func (p Pos) Step(d Dir) Pos {
	dx, dy := d.Offset()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a rectangular array of capability sets. Only the start cell is
// mutated after construction, once, by ResolveStart.
type Grid struct {
	Width, Height int
	// Start is the position of the start symbol.
	Start    Pos
	cells    []Pipe
	resolved bool
}
