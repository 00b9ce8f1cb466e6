// Package solve is the core surface of pipeloop: it chains the parser,
// the loop walker, the canvas and the flood fill into the two metrics.
//
//   - LoopLength: steps from the start to the farthest point of the loop,
//     ceil(L/2) for a loop of L cells.
//   - EnclosedArea: logical cells strictly inside the loop, counted as
//     unreached Blank raster cells divided by nine.
//
// Census and Analyze expose the intermediate results for callers that want
// to display or check them.
package solve
