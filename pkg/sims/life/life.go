package life

import (
	"errors"
	"fmt"

	"torus-life/pkg/community"
	"torus-life/pkg/core"
)

// ErrNegativeGenerations indicates a negative generation count passed to Advance.
var ErrNegativeGenerations = errors.New("life: generation count must not be negative")

// Life implements Conway's Game of Life (B3/S23) with toroidal wrapping.
type Life struct {
	cur, nxt   *core.Grid
	alive      int
	generation int
}

// New returns the default 5x5 preset.
func New() *Life {
	return adopt(DefaultGrid())
}

// FromCells returns a Life over a rows x cols grid given as row-major cells.
func FromCells(rows, cols int, cells []bool) (*Life, error) {
	g, err := core.FromCells(rows, cols, cells)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	return adopt(g), nil
}

// FromGrid returns a Life starting from a copy of g.
func FromGrid(g *core.Grid) *Life {
	return adopt(g.Clone())
}

func adopt(g *core.Grid) *Life {
	return &Life{cur: g, nxt: g.Clone(), alive: g.Alive()}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid returns a copy of the current generation.
func (l *Life) Grid() *core.Grid { return l.cur.Clone() }

// TotalAliveCells returns the number of live cells in the current generation.
// It is recounted on every generation transition.
func (l *Life) TotalAliveCells() int { return l.alive }

// Generation returns how many generations have been applied since construction.
func (l *Life) Generation() int { return l.generation }

// CellState reports whether the cell at (row, col) is alive. Coordinates are
// not wrapped; out-of-range access returns core.ErrOutOfRange.
func (l *Life) CellState(row, col int) (bool, error) {
	return l.cur.At(row, col)
}

// IsAlive reports whether any cell is alive.
func (l *Life) IsAlive() bool {
	for _, c := range l.cur.Cells() {
		if c {
			return true
		}
	}
	return false
}

// AliveNeighbors returns how many of the eight toroidal neighbors of
// (row, col) are alive. On grids one cell wide or tall several offsets land
// on the same cell and each is counted.
func (l *Life) AliveNeighbors(row, col int) (int, error) {
	if !l.cur.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d)", core.ErrOutOfRange, row, col)
	}
	return neighbors(l.cur, row, col), nil
}

func neighbors(g *core.Grid, row, col int) int {
	cells := g.Cells()
	n := 0
	for _, d := range core.Offsets8 {
		nr := (row + d[0] + g.Rows) % g.Rows
		nc := (col + d[1] + g.Cols) % g.Cols
		if cells[nr*g.Cols+nc] {
			n++
		}
	}
	return n
}

// nextState applies B3/S23 to one cell.
func nextState(alive bool, n int) bool {
	return (alive && (n == 2 || n == 3)) || (!alive && n == 3)
}

// computeInto writes the successor of src into dst and returns its live count.
// dst must not alias src.
func computeInto(dst, src *core.Grid) int {
	cells, out := src.Cells(), dst.Cells()
	alive := 0
	for idx, c := range cells {
		row, col := src.Coordinate(idx)
		out[idx] = nextState(c, neighbors(src, row, col))
		if out[idx] {
			alive++
		}
	}
	return alive
}

// ComputeNextGrid returns the next generation without changing the current one.
func (l *Life) ComputeNextGrid() *core.Grid {
	next := l.cur.Clone()
	computeInto(next, l.cur)
	return next
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.alive = computeInto(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// Advance applies n generations in sequence. Zero is a no-op.
func (l *Life) Advance(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeGenerations, n)
	}
	for i := 0; i < n; i++ {
		l.Step()
	}
	return nil
}

// Communities returns the number of groups of live cells connected through
// toroidal 8-adjacency.
func (l *Life) Communities() int { return community.Count(l.cur) }

// CommunityList returns the members of every community.
func (l *Life) CommunityList() []community.Community { return community.Find(l.cur) }
