// Package loop infers the start cell's capability set and walks the single
// closed loop of a pipe grid.
//
// 🚀 What:
//
//	InferStart looks at the four neighbours of the start cell and keeps every
//	direction whose neighbour points back. Exactly two must survive.
//	Walk then follows the pipes: at each cell the exit is the one direction
//	left after removing the arrival direction, and the arrival at the next
//	cell is the opposite of that exit. The walk ends back at the start.
//
// ✨ Guarantees:
//
//   - Every Step in a Loop is distinct; consecutive steps are grid-adjacent
//     and mutually connected, and the last step connects back to the first.
//   - Length ≥ 4 for any closed loop on a square grid.
//   - Farthest() = ceil(Length/2), whichever departure is chosen.
//
// Errors:
//
//   - ErrDegenerateStart, ErrAmbiguousStart: wrap grid.ErrFormat.
//   - ErrCycle: the walk ran past Width×Height steps (or WithMaxSteps).
//   - ErrBrokenPipe: wraps ErrCycle; a cell does not continue the path.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Complexity:
//
//   - InferStart: O(1).
//   - Walk:       O(L) time and memory, L = loop length ≤ W×H.
package loop
