// Package canvas renders a pipe loop onto a 3×-upscaled raster and floods
// its exterior with an explicit span stack.
//
// What:
//
//   - Every logical cell (x,y) owns the 3×3 block whose top-left raster cell
//     is (3x+1, 3y+1). One extra raster cell of padding surrounds the whole
//     picture, so the raster is (3·W+2) × (3·H+2).
//   - A loop cell's block gets a Marker in the centre and a Wall on each edge
//     midpoint its pipe connects to; the other block cells become Trim.
//     Trim is passable but belongs to the loop and is never counted as area.
//   - Every other block stays Blank.
//
// Why 3×:
//
//	Two loop cells that touch without being connected leave a one-cell Trim
//	gap between their walls. The flood fill slips through such "squeezes",
//	which a 4-connected fill of the logical grid cannot do.
//
//	    .|.|.        row of two vertical pipes side by side:
//	    .|.|.        '|' is Wall, '.' is Trim; the column of Trim
//	    .|.|.        between them is open to the fill.
//
// Fill:
//
//	Fill is a scanline span fill: a stack of {x1, x2, y, dy} work items, each
//	extended left and right over passable cells, pushing the adjoining runs of
//	the next row and the overhangs back towards the parent row. Each raster
//	cell is filled at most once, so a second Fill is a no-op.
//
// Complexity:
//
//   - New, FromLoop: O(W×H) memory, O(L) drawing.
//   - Fill:          O(W×H) time, stack bounded by the number of spans.
package canvas
