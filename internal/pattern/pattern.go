// Package pattern loads initial grids from text. The format is two integers
// (rows, cols) followed by exactly rows*cols boolean tokens in row-major
// order, all separated by whitespace. Booleans use strconv.ParseBool
// spellings, so "true"/"false" and "1"/"0" both work.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"torus-life/pkg/core"
)

var (
	// ErrMissingDimensions indicates the input ended before both dimensions.
	ErrMissingDimensions = errors.New("pattern: missing grid dimensions")
	// ErrBadDimensions indicates a dimension that is not a positive integer.
	ErrBadDimensions = errors.New("pattern: dimensions must be positive integers")
	// ErrBadToken indicates a cell token that is not a boolean.
	ErrBadToken = errors.New("pattern: cell is not a boolean")
	// ErrTooFewCells indicates the input ended before rows*cols cells.
	ErrTooFewCells = errors.New("pattern: too few cells")
	// ErrTrailingData indicates tokens after the last cell.
	ErrTrailingData = errors.New("pattern: unexpected data after last cell")
)

// Parse reads a grid from r.
func Parse(r io.Reader) (*core.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool, error) {
		if sc.Scan() {
			return sc.Text(), true, nil
		}
		return "", false, sc.Err()
	}

	var dims [2]int
	for i, name := range []string{"rows", "cols"} {
		tok, ok, err := next()
		if err != nil {
			return nil, fmt.Errorf("pattern: read %s: %w", name, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: no %s", ErrMissingDimensions, name)
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %s=%q", ErrBadDimensions, name, tok)
		}
		dims[i] = n
	}

	g, err := core.NewGrid(dims[0], dims[1])
	if err != nil {
		return nil, err
	}
	cells := g.Cells()
	for i := range cells {
		tok, ok, err := next()
		if err != nil {
			return nil, fmt.Errorf("pattern: read cell %d: %w", i, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: got %d of %d", ErrTooFewCells, i, len(cells))
		}
		v, err := strconv.ParseBool(tok)
		if err != nil {
			row, col := g.Coordinate(i)
			return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadToken, tok, row, col)
		}
		cells[i] = v
	}

	tok, ok, err := next()
	if err != nil {
		return nil, fmt.Errorf("pattern: read trailer: %w", err)
	}
	if ok {
		return nil, fmt.Errorf("%w: %q", ErrTrailingData, tok)
	}
	return g, nil
}

// Load reads a grid from the file at path.
func Load(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
