package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/patrol/grid"
)

// ExampleGeometry_Move walks a position around the center of a 3×3 board.
// Moving off the left edge reports false instead of wrapping to the
// previous row.
func ExampleGeometry_Move() {
	g, _ := grid.ParseRunes(strings.NewReader("...\n...\n...\n"))

	pos := g.Index(1, 1)
	for _, d := range grid.Directions {
		next, _ := g.Move(pos, d)
		x, y := g.Coordinate(next)
		fmt.Printf("%-5s -> (%d,%d)\n", d, x, y)
	}
	_, ok := g.Move(g.Index(0, 1), grid.Left)
	fmt.Println("off board:", !ok)

	// Output:
	// up    -> (1,0)
	// right -> (2,1)
	// down  -> (1,2)
	// left  -> (0,1)
	// off board: true
}
