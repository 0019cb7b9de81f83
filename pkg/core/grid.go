package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("core: all rows must have the same length")
	// ErrDataLength indicates a cell slice whose length is not rows*cols.
	ErrDataLength = errors.New("core: cell count does not match dimensions")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("core: coordinate out of range")
)

// Offsets8 lists the (dRow, dCol) offsets of the eight Moore neighbors.
var Offsets8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid stores a 2D matrix of boolean cell states in row-major order.
type Grid struct {
	Rows, Cols int
	data       []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]bool, rows*cols)}, nil
}

// FromCells builds a grid from a row-major slice of rows*cols values. The
// slice is copied.
func FromCells(rows, cols int, cells []bool) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDataLength, len(cells), rows*cols)
	}
	copy(g.data, cells)
	return g, nil
}

// FromRows builds a grid from a slice of equally sized rows.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), g.Cols)
		}
		copy(g.data[r*g.Cols:], row)
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Coordinate converts a linear index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) { return idx / g.Cols, idx % g.Cols }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// At returns the state of an in-bounds cell. Coordinates are never wrapped.
func (g *Grid) At(row, col int) (bool, error) {
	if !g.InBounds(row, col) {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, row, col, g.Rows, g.Cols)
	}
	return g.data[g.Index(row, col)], nil
}

// Set changes the state of an in-bounds cell.
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, row, col, g.Rows, g.Cols)
	}
	g.data[g.Index(row, col)] = alive
	return nil
}

// Alive counts live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]bool, len(g.data))
	copy(data, g.data)
	return &Grid{Rows: g.Rows, Cols: g.Cols, data: data}
}

// Equal reports whether both grids have the same shape and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Size describes the dimensions of a grid.
type Size struct {
	Rows int
	Cols int
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }
