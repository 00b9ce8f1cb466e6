package canvas

// Cell is one raster cell: a kind in the low bits plus the Filled flag.
type Cell uint8

const (
	// Blank is a passable cell that belongs to no loop block.
	Blank Cell = iota
	// Trim is a passable cell inside a loop block (corner or unconnected edge).
	Trim
	// Wall is an edge midpoint of a loop block whose pipe connects that way.
	Wall
	// Marker is the centre of a loop block.
	Marker
	// StartMarker is the centre of the start cell's block.
	StartMarker
)

// Filled flags a passable cell reached by the flood fill.
const Filled Cell = 1 << 7

// Kind returns c without the Filled flag.
func (c Cell) Kind() Cell { return c &^ Filled }

// IsFilled reports whether the flood fill reached c.
func (c Cell) IsFilled() bool { return c&Filled != 0 }

// Passable reports whether the flood fill may enter a cell of this kind.
func (c Cell) Passable() bool {
	k := c.Kind()
	return k == Blank || k == Trim
}

// Glyph returns the byte used by String for c:
//
//	'I' unreached Blank (interior area)   '.' anything filled (exterior)
//	' ' unreached Trim                    '#' Wall
//	'o' Marker                            'S' StartMarker
func (c Cell) Glyph() byte {
	if c.IsFilled() {
		return '.'
	}
	switch c.Kind() {
	case Blank:
		return 'I'
	case Trim:
		return ' '
	case Wall:
		return '#'
	case Marker:
		return 'o'
	case StartMarker:
		return 'S'
	}
	return '?'
}

// Region classifies a logical cell after the fill.
type Region int

const (
	// OnLoop cells are part of the loop itself.
	OnLoop Region = iota
	// Interior cells are enclosed by the loop.
	Interior
	// Exterior cells are reachable from the padding.
	Exterior
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case OnLoop:
		return "loop"
	case Interior:
		return "interior"
	case Exterior:
		return "exterior"
	}
	return "unknown"
}

// Canvas is the upscaled raster. Cells live in one flat row-major slice and
// are addressed by index only.
type Canvas struct {
	// Width and Height are the raster dimensions, 3·Cols+2 and 3·Rows+2.
	Width, Height int
	// Cols and Rows are the logical grid dimensions.
	Cols, Rows int
	cells      []Cell
}
