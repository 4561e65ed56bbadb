package loop

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/guard"
	"github.com/katalvlaran/patrol/obstruction"
)

// Detect reports whether an obstruction at trial traps a guard that was
// heading along heading when it first reached trial.
//
// Behavior:
//  1. Place the trial obstruction on idx; release it on every return.
//  2. Start one cell behind trial, keeping heading.
//  3. Jump from turning point to turning point.
//  4. Decide with the configured Strategy; leaving the board means false.
//
// idx is mutated while Detect runs, so concurrent callers need their own
// idx.Clone().
func Detect(idx *obstruction.Index, trial int, heading grid.Direction, opts ...Option) (bool, error) {
	o := gather(opts)

	release := idx.Place(trial)
	defer release()

	from, ok := idx.Geometry().Move(trial, heading.Reverse())
	if !ok {
		return false, fmt.Errorf("loop: Detect: trial %d heading %v: %w", trial, heading, ErrNoApproach)
	}
	s := guard.State{Pos: from, Dir: heading}

	if o.Strategy == Exact {
		return exact(idx, s), nil
	}
	return counted(idx, s, o.Threshold), nil
}

// counted fires once the guard has jumped away from the same cell more than
// limit times.
func counted(idx *obstruction.Index, s guard.State, limit int) bool {
	departures := make(map[int]int)
	for {
		next, _, ok := guard.Jump(idx, s)
		if !ok {
			return false
		}
		departures[s.Pos]++
		if departures[s.Pos] > limit {
			return true
		}
		s = next
	}
}

// exact fires on the first repeated pre-turn state.
func exact(idx *obstruction.Index, s guard.State) bool {
	seen := mapset.New[guard.State]()
	for {
		next, turn, ok := guard.Jump(idx, s)
		if !ok {
			return false
		}
		if seen.Has(turn) {
			return true
		}
		seen.Put(turn)
		s = next
	}
}
