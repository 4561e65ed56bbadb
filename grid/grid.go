package grid

import (
	"strings"
)

// Grid is a dense, immutable 2D board. Cells are stored row-major in a
// single slice so that a position is just an int.
type Grid[T any] struct {
	Geometry
	cells []T
}

// New builds a Grid from a flat row-major slice and a row width.
// The slice is copied. Returns ErrEmptyGrid for an empty slice and
// ErrBadWidth if width is not positive or does not divide len(cells).
// Complexity: O(W×H) time and memory.
func New[T any](cells []T, width int) (*Grid[T], error) {
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	if width <= 0 || len(cells)%width != 0 {
		return nil, ErrBadWidth
	}
	cp := make([]T, len(cells))
	copy(cp, cells)

	return &Grid[T]{
		Geometry: Geometry{Width: width, Height: len(cells) / width},
		cells:    cp,
	}, nil
}

// FromRows builds a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make([]T, 0, w*len(rows))
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{
		Geometry: Geometry{Width: w, Height: len(rows)},
		cells:    cells,
	}, nil
}

// Peek returns the value stored at pos. pos must be in [0, Len()).
func (g *Grid[T]) Peek(pos int) T {
	return g.cells[pos]
}

// Find returns the first position (row-major) whose value satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (int, bool) {
	for i, v := range g.cells {
		if match(v) {
			return i, true
		}
	}
	return -1, false
}

// Count returns how many cells satisfy match.
func (g *Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if match(v) {
			n++
		}
	}
	return n
}

// Format renders the board one row per line using cell to stringify values.
// Every line, including the last, ends with '\n'.
func (g *Grid[T]) Format(cell func(pos int, v T) string) string {
	var sb strings.Builder
	for pos, v := range g.cells {
		sb.WriteString(cell(pos, v))
		if (pos+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
