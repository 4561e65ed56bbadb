package guard

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/patrol/grid"
)

// Board glyphs understood by Locate and the character-board helpers.
const (
	Free = '.'
	Wall = '#'
)

var (
	// ErrNoGuard indicates that no guard glyph was found on the board.
	ErrNoGuard = errors.New("guard: no guard glyph on board")

	// ErrMultipleGuards indicates more than one guard glyph on the board.
	ErrMultipleGuards = errors.New("guard: more than one guard glyph on board")

	// ErrLooping indicates that Walk revisited a (position, heading) state
	// and would never leave the board.
	ErrLooping = errors.New("guard: walk never leaves the board")

	// ErrStepLimit indicates that Walk exceeded the configured MaxSteps.
	ErrStepLimit = errors.New("guard: step limit exceeded")
)

// State is the complete configuration of the guard.
type State struct {
	Pos int
	Dir grid.Direction
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("%d%c", s.Pos, s.Dir.Glyph())
}

// Option configures optional behavior of Walk.
type Option func(*WalkOptions)

// WalkOptions holds configurable parameters for Walk.
type WalkOptions struct {
	// OnStep, if non-nil, is invoked each time the guard enters a cell,
	// starting with the start cell. Returning an error aborts the walk.
	OnStep func(s State) error

	// OnTurn, if non-nil, is invoked with the pre-turn state every time the
	// guard rotates. Returning an error aborts the walk.
	OnTurn func(s State) error

	// MaxSteps, if non-negative, bounds the number of transitions.
	// Default is -1 (no limit).
	MaxSteps int
}

// DefaultOptions returns WalkOptions with no hooks and no step limit.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		OnStep:   nil,
		OnTurn:   nil,
		MaxSteps: -1,
	}
}

// WithOnStep returns an Option that installs fn as a per-state hook.
func WithOnStep(fn func(s State) error) Option {
	return func(o *WalkOptions) {
		o.OnStep = fn
	}
}

// WithOnTurn returns an Option that installs fn as a turning-point hook.
func WithOnTurn(fn func(s State) error) Option {
	return func(o *WalkOptions) {
		o.OnTurn = fn
	}
}

// WithMaxSteps returns an Option that limits the walk to n transitions.
// A negative n removes the limit.
func WithMaxSteps(n int) Option {
	return func(o *WalkOptions) {
		o.MaxSteps = n
	}
}

// Path captures the outcome of a Walk.
type Path struct {
	// Start is the state the walk began from.
	Start State

	// Visited maps each distinct position to the heading held on first arrival.
	Visited map[int]grid.Direction

	// Order lists visited positions in first-arrival order.
	Order []int

	// Turns records every pre-turn state in walk order.
	Turns []State

	// Steps counts transitions, turns included.
	Steps int
}

// Len returns the number of distinct positions visited.
func (p *Path) Len() int {
	return len(p.Order)
}
