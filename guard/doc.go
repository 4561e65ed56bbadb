// Package guard models a patrolling agent on a grid: a (position, heading)
// state machine that walks forward and turns right whenever the cell ahead
// is blocked.
//
// What:
//
//   - State: the guard's position and heading. Plain value, comparable.
//   - Step: one discrete transition. Move forward one cell, or rotate 90°
//     clockwise in place if that cell is blocked.
//   - Jump: the same machine advanced between turning points using an
//     obstruction.Index instead of cell-by-cell stepping.
//   - Walk: traces Step from a start state until the guard leaves the grid,
//     recording every distinct cell visited (with the heading held on first
//     arrival), the pre-turn states and the step count.
//   - JumpTrace: the pre-turn states reached by repeated Jump.
//   - Locate: finds the single guard glyph (^ > v <) on a character board.
//
// Equivalence:
//
//	Walk and JumpTrace produce the same set of turning points on any board,
//	because nothing on the board changes while the guard walks.
//
// Complexity:
//
//   - Step, Jump: O(1) and O(log k).
//   - Walk:       O(S) time, O(V) memory (S = steps taken, V = cells visited).
//   - JumpTrace:  O(T log k)  (T = turns).
//
// Errors:
//
//   - ErrNoGuard, ErrMultipleGuards: Locate found zero or several glyphs.
//   - ErrLooping: Walk revisited a full (position, heading) state.
//   - ErrStepLimit: Walk exceeded WithMaxSteps.
//   - hook errors: propagated (wrapped) from OnStep or OnTurn.
package guard
