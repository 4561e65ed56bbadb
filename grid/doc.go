// Package grid stores a fixed-size 2D board of cells in a flat, row-major
// slice and provides the coordinate arithmetic every walker needs.
//
// What:
//
//   - Grid[T] wraps a dense []T with a Geometry{Width, Height}; it is
//     immutable once built.
//   - Positions are single ints (y*Width + x); Index and Coordinate convert
//     between positions and (x,y) and are exact inverses.
//   - Direction models the four orthogonal headings in clockwise order
//     (Up, Right, Down, Left) with TurnRight and Reverse.
//   - Move steps a position one cell along a Direction and reports false
//     when the result would leave the board.
//   - Parse and ParseRunes read a rectangular block of text, one line per
//     row.
//
// Why:
//
//   - Puzzle boards, game maps and simulators all want cheap neighbor
//     stepping without allocating per-cell structs.
//
// Complexity:
//
//   - Peek, Move, Index, Coordinate: O(1).
//   - New, FromRows, Parse: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadWidth: flat cell count is not a multiple of the width.
//   - Parse wraps any converter error with the offending coordinates.
package grid
