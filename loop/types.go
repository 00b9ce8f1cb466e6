// Package loop defines options, result types and sentinel errors for the
// loop walker.
package loop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
)

// Sentinel errors for start inference and walking.
var (
	// ErrDegenerateStart is returned when fewer than two neighbours connect to start.
	ErrDegenerateStart = fmt.Errorf("%w: start connects to fewer than two neighbours", grid.ErrFormat)
	// ErrAmbiguousStart is returned when more than two neighbours connect to start.
	ErrAmbiguousStart = fmt.Errorf("%w: start connects to more than two neighbours", grid.ErrFormat)

	// ErrCycle is the category for networks that are not a single simple cycle through start.
	ErrCycle = errors.New("loop: not a single simple cycle through start")
	// ErrBrokenPipe is returned when the walk reaches a cell that does not continue the path.
	ErrBrokenPipe = fmt.Errorf("%w: broken pipe", ErrCycle)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")
)

// Departure selects which of the two inferred start directions the walk leaves by.
type Departure int

const (
	// First departs by the first inferred direction in N, S, E, W order.
	First Departure = iota
	// Second departs by the other one, walking the loop the opposite way round.
	Second
)

// String returns "first" or "second".
func (d Departure) String() string {
	if d == Second {
		return "second"
	}
	return "first"
}

// ParseDeparture maps "first"/"second" (or "" for the default) to a Departure.
func ParseDeparture(s string) (Departure, error) {
	switch s {
	case "", "first":
		return First, nil
	case "second":
		return Second, nil
	}
	return First, fmt.Errorf("%w: unknown departure %q", ErrOptionViolation, s)
}

// Option configures Walk via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds walk parameters and callbacks.
type Options struct {
	// Departure picks the initial direction out of the start cell.
	Departure Departure

	// OnStep is called for every visited cell, start included, with its
	// zero-based index along the loop.
	OnStep func(step Step, index int)

	// MaxSteps, if > 0, replaces the Width×Height guard with a tighter bound.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - departure by the first inferred direction
//   - no-op OnStep hook
//   - guard of Width×Height steps (MaxSteps == 0).
func DefaultOptions() Options {
	return Options{
		Departure: First,
		OnStep:    func(Step, int) {},
	}
}

// WithDeparture selects the initial direction.
func WithDeparture(d Departure) Option {
	return func(o *Options) {
		if d != First && d != Second {
			o.err = fmt.Errorf("%w: departure %d", ErrOptionViolation, int(d))
			return
		}
		o.Departure = d
	}
}

// WithOnStep registers a callback invoked for each visited cell.
func WithOnStep(fn func(step Step, index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps bounds the walk.
//
//	n > 0: fail with ErrCycle after n steps
//	n == 0: default bound, Width×Height
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Step is one visited cell of the loop: where it is, what it connects,
// and the direction the walk arrived from.
type Step struct {
	Pos  grid.Pos
	Pipe grid.Pipe
	From grid.Dir
}

// Loop is the closed path traced from the start cell back to itself.
// Steps[0] is the start cell; the path closes from the last step back to it.
type Loop struct {
	Start  grid.Pos
	Steps  []Step
	Length int
}
