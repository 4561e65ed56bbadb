package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty input and bad widths.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells []int
		width int
		err   error
	}{
		{"Empty", nil, 3, grid.ErrEmptyGrid},
		{"ZeroWidth", []int{1, 2}, 0, grid.ErrBadWidth},
		{"NegativeWidth", []int{1, 2}, -2, grid.ErrBadWidth},
		{"NotMultiple", []int{1, 2, 3, 4, 5}, 2, grid.ErrBadWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.cells, tc.width)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v, %d) error = %v; want %v", tc.cells, tc.width, err, tc.err)
			}
		})
	}
}

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_CopiesInput ensures later mutation of the source slice is invisible.
func TestNew_CopiesInput(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6}
	g, err := grid.New(src, 3)
	require.NoError(t, err)
	src[0] = 99

	assert.Equal(t, 1, g.Peek(0))
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 6, g.Len())
}

//----------------------------------------------------------------------------//
// Geometry
//----------------------------------------------------------------------------//

// TestCoordinateRoundTrip checks Index(Coordinate(p)) == p for every position.
func TestCoordinateRoundTrip(t *testing.T) {
	for _, gm := range []grid.Geometry{{Width: 1, Height: 1}, {Width: 7, Height: 3}, {Width: 3, Height: 7}, {Width: 10, Height: 10}} {
		for p := 0; p < gm.Len(); p++ {
			x, y := gm.Coordinate(p)
			require.True(t, gm.InBounds(x, y), "%v: (%d,%d) out of bounds", gm, x, y)
			require.Equal(t, p, gm.Index(x, y), "%v: round trip of %d", gm, p)
		}
	}
}

// TestInBounds checks InBounds on a 3×2 board.
func TestInBounds(t *testing.T) {
	gm := grid.Geometry{Width: 3, Height: 2}
	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gm.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gm.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

// TestMove covers stepping in every direction, including off-board results.
func TestMove(t *testing.T) {
	gm := grid.Geometry{Width: 3, Height: 3}
	center := gm.Index(1, 1)

	cases := []struct {
		from int
		dir  grid.Direction
		want int
		ok   bool
	}{
		{center, grid.Up, gm.Index(1, 0), true},
		{center, grid.Right, gm.Index(2, 1), true},
		{center, grid.Down, gm.Index(1, 2), true},
		{center, grid.Left, gm.Index(0, 1), true},
		{gm.Index(0, 0), grid.Up, -1, false},
		{gm.Index(0, 0), grid.Left, -1, false},
		{gm.Index(2, 2), grid.Right, -1, false},
		{gm.Index(2, 2), grid.Down, -1, false},
		// row wrap must not be mistaken for a horizontal step
		{gm.Index(2, 0), grid.Right, -1, false},
		{gm.Index(0, 1), grid.Left, -1, false},
	}
	for _, tc := range cases {
		got, ok := gm.Move(tc.from, tc.dir)
		assert.Equal(t, tc.ok, ok, "Move(%d, %v) ok", tc.from, tc.dir)
		if tc.ok {
			assert.Equal(t, tc.want, got, "Move(%d, %v)", tc.from, tc.dir)
		}
	}
}

//----------------------------------------------------------------------------//
// Direction
//----------------------------------------------------------------------------//

// TestDirection_Rotation verifies the clockwise cycle and reversal.
func TestDirection_Rotation(t *testing.T) {
	assert.Equal(t, grid.Right, grid.Up.TurnRight())
	assert.Equal(t, grid.Down, grid.Right.TurnRight())
	assert.Equal(t, grid.Left, grid.Down.TurnRight())
	assert.Equal(t, grid.Up, grid.Left.TurnRight())

	for _, d := range grid.Directions {
		dx, dy := d.Delta()
		assert.Equal(t, 1, abs(dx)+abs(dy), "%v must be a unit vector", d)
		rx, ry := d.Reverse().Delta()
		assert.Equal(t, -dx, rx)
		assert.Equal(t, -dy, ry)
		assert.Equal(t, d, d.TurnRight().TurnRight().TurnRight().TurnRight())
	}
}

// TestDirectionOf maps glyphs both ways.
func TestDirectionOf(t *testing.T) {
	for _, d := range grid.Directions {
		got, ok := grid.DirectionOf(d.Glyph())
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := grid.DirectionOf('#')
	assert.False(t, ok)
	assert.Equal(t, "down", grid.Down.String())
}

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

// TestParseRunes reads a board and renders it back unchanged.
func TestParseRunes(t *testing.T) {
	const board = "..#\n.^.\n...\n"
	g, err := grid.ParseRunes(strings.NewReader("\n" + board + "\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, '#', g.Peek(2))
	assert.Equal(t, '^', g.Peek(g.Index(1, 1)))

	out := g.Format(func(_ int, c rune) string { return string(c) })
	assert.Equal(t, board, out)
}

// TestParse_Errors covers ragged input, interior blank lines and bad digits.
func TestParse_Errors(t *testing.T) {
	_, err := grid.ParseRunes(strings.NewReader("...\n..\n"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.ParseRunes(strings.NewReader("...\n\n...\n"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.ParseRunes(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.Parse(strings.NewReader("012\n3x5\n"), digit)
	assert.ErrorIs(t, err, errNotDigit)
	assert.Contains(t, err.Error(), "(1,1)")
}

var errNotDigit = errors.New("not a digit")

func digit(c rune) (uint8, error) {
	if c < '0' || c > '9' {
		return 0, errNotDigit
	}
	return uint8(c - '0'), nil
}

// TestParse_CRLF accepts Windows line endings with a custom converter.
func TestParse_CRLF(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("012\r\n345\r\n"), digit)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, uint8(5), g.Peek(5))
	assert.Equal(t, 3, g.Count(func(v uint8) bool { return v >= 3 }))

	pos, ok := g.Find(func(v uint8) bool { return v == 4 })
	assert.True(t, ok)
	assert.Equal(t, 4, pos)
	_, ok = g.Find(func(v uint8) bool { return v == 9 })
	assert.False(t, ok)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
