package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/grid"
)

// TestRotate turns an L-shaped loop a quarter clockwise.
//
//	S-7        F-S
//	|.|   →    |.|
//	L-J        L-J
//
// A square rotates into itself; only the start moves.
func TestRotate(t *testing.T) {
	g, err := grid.Parse("S-7\n|.|\nL-J")
	require.NoError(t, err)

	r := g.Rotate()
	assert.Equal(t, 3, r.Width)
	assert.Equal(t, 3, r.Height)
	assert.Equal(t, grid.Pos{X: 2, Y: 0}, r.Start)
	assert.Equal(t, "F-S\n|.|\nL-J", r.String())
}

// TestRotate_NonSquare swaps dimensions and turns every pipe.
func TestRotate_NonSquare(t *testing.T) {
	g, err := grid.Parse("S--7\nL--J")
	require.NoError(t, err)

	r := g.Rotate()
	assert.Equal(t, 2, r.Width)
	assert.Equal(t, 4, r.Height)
	assert.Equal(t, "FS\n||\n||\nLJ", r.String())
}

// TestRotate_FourTimes returns the original grid.
func TestRotate_FourTimes(t *testing.T) {
	in := "..F7.\n.FJ|.\nSJ.L7\n|F--J\nLJ..."
	g, err := grid.Parse(in)
	require.NoError(t, err)
	assert.Equal(t, in, g.Rotate().Rotate().Rotate().Rotate().String())
}

// TestMirror swaps east and west bends.
func TestMirror(t *testing.T) {
	g, err := grid.Parse("S--7\nL--J")
	require.NoError(t, err)

	m := g.Mirror()
	assert.Equal(t, grid.Pos{X: 3, Y: 0}, m.Start)
	assert.Equal(t, "F--S\nL--J", m.String())
	assert.Equal(t, g.String(), m.Mirror().String())
}
