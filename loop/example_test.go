package loop_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/guard"
	"github.com/katalvlaran/patrol/loop"
	"github.com/katalvlaran/patrol/obstruction"
)

// ExampleDetect tries one extra obstruction on the canonical board.
// Blocking (3,6), which the guard first crosses heading left, sends it
// around a closed rectangle; blocking (5,6) does not.
func ExampleDetect() {
	board := "" +
		"....#.....\n" +
		".........#\n" +
		"..........\n" +
		"..#.......\n" +
		".......#..\n" +
		"..........\n" +
		".#..^.....\n" +
		"........#.\n" +
		"#.........\n" +
		"......#...\n"
	g, _ := grid.ParseRunes(strings.NewReader(board))
	idx := obstruction.Build(g, guard.Wall)

	trapped, _ := loop.Detect(idx, g.Index(3, 6), grid.Left)
	fmt.Println("(3,6):", trapped)
	trapped, _ = loop.Detect(idx, g.Index(5, 6), grid.Left)
	fmt.Println("(5,6):", trapped)
	fmt.Println("obstructions after:", idx.Len())

	// Output:
	// (3,6): true
	// (5,6): false
	// obstructions after: 8
}
