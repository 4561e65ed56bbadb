package grid_test

import (
	"testing"

	"github.com/katalvlaran/patrol/grid"
)

// BenchmarkMove measures neighbor stepping across a 1000×1000 board.
// Complexity: O(1) per call.
func BenchmarkMove(b *testing.B) {
	gm := grid.Geometry{Width: 1000, Height: 1000}
	n := gm.Len()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gm.Move(i%n, grid.Directions[i&3])
	}
}
