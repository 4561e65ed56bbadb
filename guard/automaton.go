package guard

import (
	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/obstruction"
)

// Step applies one transition to s on board g: if the cell ahead holds wall,
// rotate clockwise and stay; otherwise move into it. It returns false when
// the cell ahead is off the board, i.e. the guard leaves.
func Step[T comparable](g *grid.Grid[T], s State, wall T) (State, bool) {
	next, ok := g.Move(s.Pos, s.Dir)
	if !ok {
		return s, false
	}
	if g.Peek(next) == wall {
		return State{Pos: s.Pos, Dir: s.Dir.TurnRight()}, true
	}
	return State{Pos: next, Dir: s.Dir}, true
}

// Jump advances s straight to the cell before the nearest obstruction ahead
// and turns clockwise there. turn is the pre-turn state (same cell, heading
// before rotation). It returns false when nothing blocks the way to the edge.
func Jump(idx *obstruction.Index, s State) (next, turn State, ok bool) {
	obs, ok := idx.Next(s.Pos, s.Dir)
	if !ok {
		return s, s, false
	}
	dx, dy := s.Dir.Delta()
	// the obstruction is strictly ahead, so the cell before it is on the board
	before, _ := idx.Geometry().Offset(obs, -dx, -dy)

	return State{Pos: before, Dir: s.Dir.TurnRight()}, State{Pos: before, Dir: s.Dir}, true
}

// Locate finds the single guard glyph on a character board and returns the
// start state it encodes.
func Locate(g *grid.Grid[rune]) (State, error) {
	isGuard := func(c rune) bool {
		_, ok := grid.DirectionOf(c)
		return ok
	}
	switch n := g.Count(isGuard); {
	case n == 0:
		return State{}, ErrNoGuard
	case n > 1:
		return State{}, ErrMultipleGuards
	}
	pos, _ := g.Find(isGuard)
	dir, _ := grid.DirectionOf(g.Peek(pos))

	return State{Pos: pos, Dir: dir}, nil
}
