// Package pipeloop finds the loop hidden in a grid of pipes and measures it.
//
// A puzzle grid holds pipe symbols, ground and one start cell S:
//
//	| vertical     - horizontal    . ground
//	L north-east   J north-west    S start (shape unknown)
//	7 south-west   F south-east
//
// Exactly one closed loop passes through S. pipeloop answers two questions
// about it:
//
//   - how many steps along the loop the farthest point is from S
//   - how many grid cells the loop encloses
//
// The work is organized in four packages:
//
//	grid/    parsing, pipe bit-sets, directions and positions
//	loop/    start inference and the walk around the loop
//	canvas/  the 3× raster of the loop and the scanline flood fill
//	solve/   the two metrics, plus a Report with the intermediate results
//
// The enclosed-area count upscales every cell into a 3×3 block, so gaps
// between two adjacent but unconnected pipes become passable corridors:
//
//	..........        the two ground cells in the middle row are
//	.S------7.        outside the loop: the exterior squeezes in
//	.|F----7|.        between the "||" columns, a corridor that
//	.||OOOO||.        does not exist at logical resolution
//	.||OOOO||.
//	.|L-7F-J|.
//	.|II||II|.
//	.L--JL--J.
//	..........
//
// Quick start:
//
//	farthest, enclosed, err := solve.Solve(input)
//
// The cmd/pipeloop binary wraps the same calls in a CLI.
package pipeloop
