package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPipe_SetOperations covers the bit-set algebra.
func TestPipe_SetOperations(t *testing.T) {
	p := Of(North, East)
	assert.Equal(t, BendNE, p)
	assert.True(t, p.Has(North))
	assert.False(t, p.Has(South))
	assert.Equal(t, 2, p.Len())

	assert.Equal(t, Pipe(North), p.Without(East))
	assert.Equal(t, p, p.Without(West), "removing an absent direction is a no-op")
	assert.Equal(t, Start, Vertical.Union(Horizontal))
	assert.Equal(t, Pipe(North), BendNE.Intersect(BendNW))
	assert.Equal(t, BendSE, None.With(South).With(East))

	assert.Equal(t, 0, None.Len())
	assert.Equal(t, 4, Start.Len())
	assert.Equal(t, []Dir{North, South, East, West}, Start.Dirs())
	assert.Empty(t, None.Dirs())
}

// TestPipe_Single only yields a direction for one-element sets.
func TestPipe_Single(t *testing.T) {
	for _, d := range Directions {
		got, ok := Pipe(d).Single()
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	for _, p := range []Pipe{None, Vertical, BendSW, Start, Of(North, South, East)} {
		_, ok := p.Single()
		assert.False(t, ok, "Single(%08b)", uint8(p))
	}
}

// TestDir_OppositeAndOffset checks that stepping forth and back is the identity.
func TestDir_OppositeAndOffset(t *testing.T) {
	origin := Pos{X: 5, Y: 5}
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
		assert.Equal(t, origin, origin.Step(d).Step(d.Opposite()))
	}
	assert.Equal(t, Pos{X: 5, Y: 4}, origin.Step(North))
	assert.Equal(t, Pos{X: 6, Y: 5}, origin.Step(East))
}

// TestSymbols round-trips every symbol of the alphabet.
func TestSymbols(t *testing.T) {
	for _, b := range []byte("|-LJ7F.S") {
		p, ok := FromSymbol(b)
		assert.True(t, ok, "FromSymbol(%q)", b)
		assert.Equal(t, b, p.Symbol())
	}
	_, ok := FromSymbol('x')
	assert.False(t, ok)
	assert.Equal(t, byte('?'), Pipe(North).Symbol())
}
