package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a rectangular block of text, one line per row, converting each
// character with conv. Trailing blank lines and '\r' line endings are
// ignored, leading ones too. The first conversion failure is returned
// wrapped together with its coordinates.
func Parse[T any](r io.Reader, conv func(rune) (T, error)) (*Grid[T], error) {
	sc := bufio.NewScanner(r)
	var (
		rows  [][]T
		blank int // blank lines since the last row
	)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			blank++
			continue
		}
		if blank > 0 {
			if len(rows) > 0 {
				// a blank line inside the block makes it ragged
				return nil, ErrNonRectangular
			}
			blank = 0
		}
		row := make([]T, 0, len(line))
		x := 0
		for _, c := range line {
			v, err := conv(c)
			if err != nil {
				return nil, fmt.Errorf("grid: Parse: (%d,%d) %q: %w", x, len(rows), c, err)
			}
			row = append(row, v)
			x++
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: Parse: %w", err)
	}

	return FromRows(rows)
}

// ParseRunes reads a character board, keeping every character as-is.
func ParseRunes(r io.Reader) (*Grid[rune], error) {
	return Parse(r, func(c rune) (rune, error) { return c, nil })
}
