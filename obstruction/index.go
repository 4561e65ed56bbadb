package obstruction

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/patrol/grid"
)

// Index maps every line of a grid to the sorted offsets of its obstructions.
type Index struct {
	geom     grid.Geometry
	byColumn map[int][]int // x → ascending y of obstructions in column x
	byRow    map[int][]int // y → ascending x of obstructions in row y
	count    int
}

// New returns an empty Index over a board of the given geometry.
func New(geom grid.Geometry) *Index {
	return &Index{
		geom:     geom,
		byColumn: make(map[int][]int),
		byRow:    make(map[int][]int),
	}
}

// Build scans g once and indexes every cell equal to wall.
// Building twice from the same grid yields Equal indexes.
// Complexity: O(W×H) time, O(N) memory.
func Build[T comparable](g *grid.Grid[T], wall T) *Index {
	idx := New(g.Geometry)
	// Row-major scan appends in ascending order on both axes, so no sort is needed.
	for pos := 0; pos < g.Len(); pos++ {
		if g.Peek(pos) != wall {
			continue
		}
		x, y := g.Coordinate(pos)
		idx.byColumn[x] = append(idx.byColumn[x], y)
		idx.byRow[y] = append(idx.byRow[y], x)
		idx.count++
	}

	return idx
}

// Geometry returns the dimensions of the indexed board.
func (idx *Index) Geometry() grid.Geometry {
	return idx.geom
}

// Len returns the number of indexed obstructions.
func (idx *Index) Len() int {
	return idx.count
}

// Has reports whether pos holds an obstruction.
func (idx *Index) Has(pos int) bool {
	x, y := idx.geom.Coordinate(pos)
	_, found := slices.BinarySearch(idx.byColumn[x], y)
	return found
}

// Column returns a copy of the obstruction rows in column x, ascending.
func (idx *Index) Column(x int) []int {
	return slices.Clone(idx.byColumn[x])
}

// Row returns a copy of the obstruction columns in row y, ascending.
func (idx *Index) Row(y int) []int {
	return slices.Clone(idx.byRow[y])
}

// Next returns the position of the nearest obstruction strictly ahead of pos
// along d, or false if the line is clear up to the board edge.
//
//   - Up:    largest y' < y in column x.
//   - Down:  smallest y' > y in column x.
//   - Left:  largest x' < x in row y.
//   - Right: smallest x' > x in row y.
func (idx *Index) Next(pos int, d grid.Direction) (int, bool) {
	x, y := idx.geom.Coordinate(pos)
	switch d {
	case grid.Up:
		if oy, ok := below(idx.byColumn[x], y); ok {
			return idx.geom.Index(x, oy), true
		}
	case grid.Down:
		if oy, ok := above(idx.byColumn[x], y); ok {
			return idx.geom.Index(x, oy), true
		}
	case grid.Left:
		if ox, ok := below(idx.byRow[y], x); ok {
			return idx.geom.Index(ox, y), true
		}
	case grid.Right:
		if ox, ok := above(idx.byRow[y], x); ok {
			return idx.geom.Index(ox, y), true
		}
	}

	return -1, false
}

// Place registers a hypothetical obstruction at pos and returns the func that
// removes it again. The release func is idempotent. If pos already holds an
// obstruction the index is left untouched and release is a no-op, so a
// caller can always defer it.
// Panics if pos lies outside the board.
func (idx *Index) Place(pos int) (release func()) {
	if pos < 0 || pos >= idx.geom.Len() {
		panic(fmt.Sprintf("obstruction: Place: position %d outside %dx%d board", pos, idx.geom.Width, idx.geom.Height))
	}
	if idx.Has(pos) {
		return func() {}
	}
	x, y := idx.geom.Coordinate(pos)
	idx.byColumn[x] = insert(idx.byColumn[x], y)
	idx.byRow[y] = insert(idx.byRow[y], x)
	idx.count++

	released := false
	return func() {
		if released {
			return
		}
		released = true
		idx.byColumn[x] = remove(idx.byColumn, x, y)
		idx.byRow[y] = remove(idx.byRow, y, x)
		idx.count--
		// drop emptied lines so the maps match their pre-Place state
		if len(idx.byColumn[x]) == 0 {
			delete(idx.byColumn, x)
		}
		if len(idx.byRow[y]) == 0 {
			delete(idx.byRow, y)
		}
	}
}

// Clone returns a deep copy that can be mutated independently.
// Complexity: O(N).
func (idx *Index) Clone() *Index {
	out := &Index{
		geom:     idx.geom,
		byColumn: make(map[int][]int, len(idx.byColumn)),
		byRow:    make(map[int][]int, len(idx.byRow)),
		count:    idx.count,
	}
	for k, v := range idx.byColumn {
		out.byColumn[k] = slices.Clone(v)
	}
	for k, v := range idx.byRow {
		out.byRow[k] = slices.Clone(v)
	}

	return out
}

// Equal reports whether both indexes cover the same board with the same
// obstructions.
func (idx *Index) Equal(other *Index) bool {
	if other == nil || idx.geom != other.geom || idx.count != other.count {
		return false
	}
	return linesEqual(idx.byColumn, other.byColumn) && linesEqual(idx.byRow, other.byRow)
}
