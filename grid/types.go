package grid

// Direction is one of the four orthogonal unit headings.
// Values are ordered clockwise so that TurnRight is a single increment.
type Direction uint8

const (
	// Up decreases y.
	Up Direction = iota
	// Right increases x.
	Right
	// Down increases y.
	Down
	// Left decreases x.
	Left
)

// Directions lists all headings in clockwise order starting from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// deltas holds (dx, dy) per Direction, indexed by the Direction value.
var deltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// glyphs holds the arrow character used for each Direction on a text board.
var glyphs = [4]rune{'^', '>', 'v', '<'}

var names = [4]string{"up", "right", "down", "left"}

// Delta returns the unit vector of d. Exactly one of dx, dy is non-zero.
func (d Direction) Delta() (dx, dy int) {
	v := deltas[d&3]
	return v[0], v[1]
}

// TurnRight rotates d by 90° clockwise: up→right→down→left→up.
func (d Direction) TurnRight() Direction {
	return (d + 1) & 3
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return (d + 2) & 3
}

// Glyph returns the arrow character for d.
func (d Direction) Glyph() rune {
	return glyphs[d&3]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return names[d&3]
}

// DirectionOf maps an arrow glyph (^ > v <) to its Direction.
func DirectionOf(r rune) (Direction, bool) {
	for i, g := range glyphs {
		if g == r {
			return Direction(i), true
		}
	}
	return 0, false
}

// Geometry describes the dimensions of a row-major board and owns all
// position arithmetic. It carries no cell data, so indexes built over a
// Grid can share it without holding the cells.
type Geometry struct {
	Width, Height int
}

// Len returns Width×Height.
func (gm Geometry) Len() int {
	return gm.Width * gm.Height
}

// InBounds reports whether (x,y) lies within the board.
// Complexity: O(1).
func (gm Geometry) InBounds(x, y int) bool {
	return x >= 0 && x < gm.Width && y >= 0 && y < gm.Height
}

// Index maps (x,y) to a row-major position: y*Width + x.
// Complexity: O(1).
func (gm Geometry) Index(x, y int) int {
	return y*gm.Width + x
}

// Coordinate converts a row-major position back to (x,y).
// Complexity: O(1).
func (gm Geometry) Coordinate(pos int) (x, y int) {
	return pos % gm.Width, pos / gm.Width
}

// Offset shifts pos by (dx,dy). It returns false if the result falls
// outside [0,Width)×[0,Height); the position is meaningless in that case.
func (gm Geometry) Offset(pos, dx, dy int) (int, bool) {
	x, y := gm.Coordinate(pos)
	x, y = x+dx, y+dy
	if !gm.InBounds(x, y) {
		return -1, false
	}
	return gm.Index(x, y), true
}

// Move steps pos one cell along d, reporting false when that leaves the board.
func (gm Geometry) Move(pos int, d Direction) (int, bool) {
	dx, dy := d.Delta()
	return gm.Offset(pos, dx, dy)
}
