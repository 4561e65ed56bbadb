// Package loop decides whether one extra obstruction would trap a guard in a
// permanent cycle.
//
// What:
//
//   - Detect places a hypothetical obstruction on an obstruction.Index for
//     the duration of the call, restarts the guard one cell before it, and
//     follows guard.Jump between turning points until the guard either
//     leaves the board (no cycle) or keeps coming back (cycle).
//   - The index is restored on every return path; after Detect it is equal
//     to what it was before.
//
// Strategies:
//
//   - Threshold (default): count how often the guard jumps away from each
//     cell; a cell counted more than Threshold times (default 3) means a
//     cycle. It never misses a cycle but can misfire: a guard boxed in on
//     three sides plus the trial turns through all four headings on one
//     cell and departs it four times before walking off the board, which
//     reads as a cycle. Use Exact when every answer must be right.
//   - Exact: stop at the first repeated (cell, heading) pre-turn state. This
//     is the tight bound; a deterministic walk that repeats a state repeats
//     forever.
//
// Complexity:
//
//   - Time:   O(T log k) per call (T = turning points until decision).
//   - Memory: O(T).
//
// Errors:
//
//   - ErrNoApproach: the cell one step behind the trial is off the board, so
//     the guard cannot have arrived at the trial cell with that heading.
package loop
