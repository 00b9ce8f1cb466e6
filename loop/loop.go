package loop

import "github.com/katalvlaran/pipeloop/grid"

// Farthest returns the number of steps from start to the point of the loop
// farthest from it, ceil(Length/2). On a simple cycle this does not depend
// on the direction of travel.
func (l *Loop) Farthest() int {
	return (l.Length + 1) / 2
}

// Positions returns the visited positions in walk order.
func (l *Loop) Positions() []grid.Pos {
	out := make([]grid.Pos, len(l.Steps))
	for i, s := range l.Steps {
		out[i] = s.Pos
	}
	return out
}

// Contains reports whether p lies on the loop.
// Complexity: O(L); build a set from Positions for repeated queries.
func (l *Loop) Contains(p grid.Pos) bool {
	for _, s := range l.Steps {
		if s.Pos == p {
			return true
		}
	}
	return false
}

// Exit returns the direction the walk leaves s by.
func (s Step) Exit() grid.Dir {
	d, _ := s.Pipe.Without(s.From).Single()
	return d
}
