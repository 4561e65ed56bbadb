package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadWidth indicates a flat cell slice whose length is not a positive multiple of width.
	ErrBadWidth = errors.New("grid: cell count must be a positive multiple of width")
)
