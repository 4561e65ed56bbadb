// Package patrol is the module root for tracing a patrolling guard across a
// rectangular board and finding every cell where one extra obstruction
// would trap it in a cycle.
//
// What is inside?
//
//	grid/         Grid[T], Geometry, Direction and text parsing
//	obstruction/  per-row and per-column obstruction index with O(log k) lookups
//	guard/        the turn-right automaton, path tracing and jump tracing
//	loop/         cycle detection for one trial obstruction (threshold or exact)
//	patrol/       candidate enumeration over a worker pool and the Analyze facade
//	cmd/patrol/   command line front end (run, trace)
//
// Quick example board:
//
//	....#.....
//	.........#
//	..........
//	..#.......
//	.......#..
//	..........
//	.#..^.....
//	........#.
//	#.........
//	......#...
//
// The guard visits 41 distinct cells before leaving, and 6 cells on that
// path would trap it if blocked.
//
//	go install github.com/katalvlaran/patrol/cmd/patrol@latest
package patrol
