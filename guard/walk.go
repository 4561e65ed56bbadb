package guard

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/obstruction"
)

// Walk traces the guard from start on board g, one Step at a time, until it
// leaves the board. Cells holding wall block movement.
//
// Behavior:
//  1. Record start as visited with its heading, fire OnStep.
//  2. Step; on a rotation record the pre-turn state and fire OnTurn.
//  3. On a move, record the new cell if unseen (first heading wins), fire OnStep.
//  4. Stop when Step reports the guard left the board.
//
// A repeated (position, heading) state means the guard can never leave and
// returns ErrLooping; exceeding MaxSteps returns ErrStepLimit. In both cases
// the partial Path is returned alongside the error.
func Walk[T comparable](g *grid.Grid[T], start State, wall T, opts ...Option) (*Path, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Path{
		Start:   start,
		Visited: make(map[int]grid.Direction),
	}
	seen := mapset.New[State]()
	s := start
	if err := p.arrive(s, &o); err != nil {
		return p, err
	}
	seen.Put(s)

	for {
		next, ok := Step(g, s, wall)
		if !ok {
			return p, nil
		}
		if o.MaxSteps >= 0 && p.Steps >= o.MaxSteps {
			return p, fmt.Errorf("guard: Walk: %d steps: %w", p.Steps, ErrStepLimit)
		}
		p.Steps++
		if seen.Has(next) {
			return p, fmt.Errorf("guard: Walk: state %v repeated: %w", next, ErrLooping)
		}
		seen.Put(next)

		if next.Pos == s.Pos {
			p.Turns = append(p.Turns, s)
			if o.OnTurn != nil {
				if err := o.OnTurn(s); err != nil {
					return p, fmt.Errorf("guard: Walk: OnTurn(%v): %w", s, err)
				}
			}
		} else if err := p.arrive(next, &o); err != nil {
			return p, err
		}
		s = next
	}
}

// arrive records s as occupied and fires OnStep.
func (p *Path) arrive(s State, o *WalkOptions) error {
	if _, ok := p.Visited[s.Pos]; !ok {
		p.Visited[s.Pos] = s.Dir
		p.Order = append(p.Order, s.Pos)
	}
	if o.OnStep != nil {
		if err := o.OnStep(s); err != nil {
			return fmt.Errorf("guard: Walk: OnStep(%v): %w", s, err)
		}
	}
	return nil
}

// JumpTrace follows Jump from start and returns the pre-turn states in
// order. exited is true when the guard leaves the board, false when a
// pre-turn state repeats (the guard is trapped).
func JumpTrace(idx *obstruction.Index, start State) (turns []State, exited bool) {
	seen := mapset.New[State]()
	s := start
	for {
		next, turn, ok := Jump(idx, s)
		if !ok {
			return turns, true
		}
		if seen.Has(turn) {
			return turns, false
		}
		seen.Put(turn)
		turns = append(turns, turn)
		s = next
	}
}
