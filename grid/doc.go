// Package grid parses a rectangular block of pipe symbols into a grid of
// per-cell capability sets and locates the distinguished start cell.
//
// What:
//
//   - Dir names one of the four compass directions as a single bit.
//   - Pipe is a four-bit capability set: the directions a cell's pipe connects to.
//   - Grid stores Width×Height pipes in one flat row-major slice.
//   - Parse turns text into a Grid and records the start position.
//
// Symbols:
//
//	|  north + south        -  east + west
//	L  north + east         J  north + west
//	7  south + west         F  south + east
//	.  empty                S  start (all four, pending inference)
//
// Coordinates:
//
//	X grows to the east, Y grows to the south; (0,0) is the top-left cell.
//	Positions outside the grid are legal values: At returns None for them.
//
// Errors (every one wraps ErrFormat):
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownSymbol: a byte outside the alphabet.
//   - ErrNoStart / ErrMultipleStarts: not exactly one 'S'.
//
// Complexity:
//
//   - Parse:  O(W×H) time and memory.
//   - At:     O(1).
//   - Rotate, Mirror: O(W×H).
package grid
