package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/grid"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Simple checks dimensions, start position and decoded cells.
func TestParse_Simple(t *testing.T) {
	g, err := grid.Parse("..F7.\n.FJ|.\nSJ.L7\n|F--J\nLJ...")
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 5, g.Height)
	assert.Equal(t, grid.Pos{X: 0, Y: 2}, g.Start)
	assert.Equal(t, grid.Start, g.At(g.Start), "start stays pending until resolved")
	assert.Equal(t, grid.BendSE, g.At(grid.Pos{X: 2, Y: 0}))
	assert.Equal(t, grid.BendSW, g.At(grid.Pos{X: 3, Y: 0}))
	assert.Equal(t, grid.Vertical, g.At(grid.Pos{X: 3, Y: 1}))
	assert.Equal(t, grid.Horizontal, g.At(grid.Pos{X: 2, Y: 3}))
	assert.Equal(t, grid.None, g.At(grid.Pos{X: 0, Y: 0}))
}

// TestParse_TrimsInput accepts leading/trailing blank lines and CRLF rows.
func TestParse_TrimsInput(t *testing.T) {
	g, err := grid.Parse("\n\nF7\r\nSJ\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, "F7\nSJ", g.String())
}

// TestParse_Errors verifies every malformed input maps to its sentinel and
// that all of them are format errors.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"Whitespace", " \n\t\n", grid.ErrEmptyGrid},
		{"Ragged", "S-7\n|J", grid.ErrNonRectangular},
		{"UnknownSymbol", "S-7\n|X|\nL-J", grid.ErrUnknownSymbol},
		{"NoStart", "F-7\n|.|\nL-J", grid.ErrNoStart},
		{"TwoStarts", "S-7\n|.|\nL-S", grid.ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.input)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, grid.ErrFormat)
		})
	}
}

// TestParse_UnknownSymbolMessage makes sure the location is reported.
func TestParse_UnknownSymbolMessage(t *testing.T) {
	_, err := grid.Parse("S-7\n|.#\nL-J")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `'#'`)
	assert.Contains(t, err.Error(), "row 1, column 2")
}

//----------------------------------------------------------------------------//
// Grid accessors
//----------------------------------------------------------------------------//

// TestAt_OffGrid checks that probing past any edge yields None instead of
// wrapping into a neighbouring row.
func TestAt_OffGrid(t *testing.T) {
	g, err := grid.Parse("S7\nLJ")
	require.NoError(t, err)

	for _, p := range []grid.Pos{{X: -1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 1}} {
		assert.Equal(t, grid.None, g.At(p), "At%v", p)
	}
}

// TestIndexCoordinate round-trips row-major indices.
func TestIndexCoordinate(t *testing.T) {
	g := grid.New(4, 3)
	for idx := 0; idx < g.Cells(); idx++ {
		p := g.Coordinate(idx)
		assert.Equal(t, idx, g.Index(p.X, p.Y))
	}
}

// TestResolveStart allows exactly one resolution.
func TestResolveStart(t *testing.T) {
	g, err := grid.Parse("S7\nLJ")
	require.NoError(t, err)
	require.False(t, g.Resolved())

	require.NoError(t, g.ResolveStart(grid.BendSE))
	assert.True(t, g.Resolved())
	assert.Equal(t, grid.BendSE, g.At(g.Start))

	assert.NoError(t, g.ResolveStart(grid.BendSE), "same set is a no-op")
	err = g.ResolveStart(grid.Vertical)
	assert.True(t, errors.Is(err, grid.ErrStartResolved))
	assert.Equal(t, grid.BendSE, g.At(g.Start))
	assert.Equal(t, "S7\nLJ", g.String())
}

// TestClone ensures the copy does not share cells.
func TestClone(t *testing.T) {
	g, err := grid.Parse("S7\nLJ")
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.ResolveStart(grid.BendSE))
	assert.False(t, g.Resolved())
	assert.Equal(t, grid.Start, g.At(g.Start))
}
