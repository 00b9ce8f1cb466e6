package grid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from a block of pipe symbols, one row per line.
// Surrounding whitespace is trimmed and a trailing '\r' on each row is ignored.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol, ErrNoStart or
// ErrMultipleStarts; all of them satisfy errors.Is(err, ErrFormat).
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyGrid
	}
	rows := strings.Split(text, "\n")
	for i := range rows {
		rows[i] = strings.TrimSuffix(rows[i], "\r")
	}

	w, h := len(rows[0]), len(rows)
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	g := New(w, h)
	starts := 0
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			p, ok := FromSymbol(row[x])
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrUnknownSymbol, row[x], y, x)
			}
			if p == Start {
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: second start at %v, first at %v", ErrMultipleStarts, Pos{X: x, Y: y}, g.Start)
				}
				g.Start = Pos{X: x, Y: y}
			}
			g.cells[g.Index(x, y)] = p
		}
	}
	if starts == 0 {
		return nil, ErrNoStart
	}

	return g, nil
}
