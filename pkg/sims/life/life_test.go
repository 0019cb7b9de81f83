package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"torus-life/pkg/core"
)

// liveSet returns the live coordinates of g.
func liveSet(g *core.Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	for idx, alive := range g.Cells() {
		if alive {
			r, c := g.Coordinate(idx)
			out[[2]int{r, c}] = true
		}
	}
	return out
}

func randomLife(t *testing.T, rows, cols int, seed int64) *Life {
	t.Helper()
	g, err := Random(Config{Rows: rows, Cols: cols, Seed: seed, Density: 0.35})
	require.NoError(t, err)
	return FromGrid(g)
}

func TestBlinkerOscillation(t *testing.T) {
	life := FromGrid(Blinker(5, 5))

	life.Step()
	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	require.Equal(t, expects, liveSet(life.Grid()))

	life.Step()
	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	require.Equal(t, expects, liveSet(life.Grid()), "after second step")
}

func TestDefaultPreset(t *testing.T) {
	life := New()
	require.Equal(t, core.Size{Rows: 5, Cols: 5}, life.Size())
	assert.True(t, life.IsAlive())
	assert.Equal(t, 5, life.TotalAliveCells())
	assert.Equal(t, 1, life.Communities())

	// (1,1), (1,3), (3,2) and (3,3) surround (2,2).
	n, err := life.AliveNeighbors(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	for gen, want := range []int{4, 3, 2, 0} {
		life.Step()
		assert.Equal(t, want, life.TotalAliveCells(), "generation %d", gen+1)
	}
	assert.False(t, life.IsAlive())
	assert.Equal(t, 4, life.Generation())
	assert.Zero(t, life.Communities())
}

func TestDefaultPresetAdvance(t *testing.T) {
	life := New()
	require.NoError(t, life.Advance(3))
	assert.True(t, life.IsAlive())
	require.NoError(t, life.Advance(1))
	assert.False(t, life.IsAlive())
}

// TestNextStateRules checks every cell of several random grids against the
// survival and birth rules.
func TestNextStateRules(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		life := randomLife(t, 9, 13, seed)
		cur := life.Grid()
		next := life.ComputeNextGrid()
		for r := 0; r < cur.Rows; r++ {
			for c := 0; c < cur.Cols; c++ {
				n, err := life.AliveNeighbors(r, c)
				require.NoError(t, err)
				alive, _ := cur.At(r, c)
				got, _ := next.At(r, c)
				switch {
				case alive && n <= 1:
					require.False(t, got, "lonely (%d,%d) n=%d", r, c, n)
				case alive && n >= 4:
					require.False(t, got, "crowded (%d,%d) n=%d", r, c, n)
				case alive:
					require.True(t, got, "survivor (%d,%d) n=%d", r, c, n)
				case n == 3:
					require.True(t, got, "birth (%d,%d)", r, c)
				default:
					require.False(t, got, "dead (%d,%d) n=%d", r, c, n)
				}
			}
		}
	}
}

func TestToroidalCornerNeighbors(t *testing.T) {
	for _, dims := range [][2]int{{3, 3}, {3, 4}, {5, 7}, {8, 2}} {
		rows, cols := dims[0], dims[1]
		cells := make([]bool, rows*cols)
		cells[0] = true
		cells[rows*cols-1] = true
		life, err := FromCells(rows, cols, cells)
		require.NoError(t, err)

		n, err := life.AliveNeighbors(0, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1, "%dx%d: (0,0) must see (R-1,C-1)", rows, cols)

		n, err = life.AliveNeighbors(rows-1, cols-1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1, "%dx%d: (R-1,C-1) must see (0,0)", rows, cols)
	}

	// On a 5x7 grid the diagonal wrap is the only contact.
	cells := make([]bool, 35)
	cells[0], cells[34] = true, true
	life, err := FromCells(5, 7, cells)
	require.NoError(t, err)
	n, _ := life.AliveNeighbors(0, 0)
	assert.Equal(t, 1, n)
}

func TestEdgeWrapMatchesInterior(t *testing.T) {
	// A blinker straddling the top edge behaves like one in the interior.
	g, err := core.NewGrid(6, 6)
	require.NoError(t, err)
	for _, rc := range [][2]int{{5, 3}, {0, 3}, {1, 3}} {
		require.NoError(t, g.Set(rc[0], rc[1], true))
	}
	life := FromGrid(g)
	life.Step()
	assert.Equal(t, map[[2]int]bool{{0, 2}: true, {0, 3}: true, {0, 4}: true}, liveSet(life.Grid()))
}

func TestThinGridsCountEveryOffset(t *testing.T) {
	life, err := FromCells(1, 3, []bool{true, false, true})
	require.NoError(t, err)
	n, err := life.AliveNeighbors(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	single, err := FromCells(1, 1, []bool{true})
	require.NoError(t, err)
	n, err = single.AliveNeighbors(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	single.Step()
	assert.False(t, single.IsAlive())
}

func TestAdvanceIsAdditive(t *testing.T) {
	cases := [][2]int{{0, 0}, {0, 4}, {3, 5}, {7, 1}}
	for _, ab := range cases {
		split := randomLife(t, 12, 10, 99)
		whole := randomLife(t, 12, 10, 99)

		require.NoError(t, split.Advance(ab[0]))
		require.NoError(t, split.Advance(ab[1]))
		require.NoError(t, whole.Advance(ab[0]+ab[1]))

		assert.True(t, split.Grid().Equal(whole.Grid()), "advance(%d)+advance(%d)", ab[0], ab[1])
		assert.Equal(t, whole.Generation(), split.Generation())
	}
}

func TestAdvanceZeroAndNegative(t *testing.T) {
	life := New()
	before := life.Grid()

	require.NoError(t, life.Advance(0))
	assert.True(t, before.Equal(life.Grid()))
	assert.Zero(t, life.Generation())

	err := life.Advance(-1)
	assert.ErrorIs(t, err, ErrNegativeGenerations)
	assert.True(t, before.Equal(life.Grid()))
}

func TestComputeNextGridIsPure(t *testing.T) {
	life := randomLife(t, 7, 7, 3)
	before := life.Grid()
	alive := life.TotalAliveCells()

	first := life.ComputeNextGrid()
	second := life.ComputeNextGrid()
	assert.True(t, first.Equal(second))
	assert.True(t, before.Equal(life.Grid()))
	assert.Equal(t, alive, life.TotalAliveCells())
	assert.Zero(t, life.Generation())

	life.Step()
	assert.True(t, first.Equal(life.Grid()))
	assert.Equal(t, first.Alive(), life.TotalAliveCells())
}

func TestGridReturnsCopy(t *testing.T) {
	life := New()
	g := life.Grid()
	g.Clear()
	assert.Equal(t, 5, life.Grid().Alive())
}

func TestCellState(t *testing.T) {
	life := New()
	alive, err := life.CellState(1, 1)
	require.NoError(t, err)
	assert.True(t, alive)

	alive, err = life.CellState(0, 0)
	require.NoError(t, err)
	assert.False(t, alive)

	for _, rc := range [][2]int{{-1, 0}, {5, 0}, {0, 5}, {0, -1}} {
		_, err := life.CellState(rc[0], rc[1])
		assert.ErrorIs(t, err, core.ErrOutOfRange, "(%d,%d)", rc[0], rc[1])
		_, err = life.AliveNeighbors(rc[0], rc[1])
		assert.ErrorIs(t, err, core.ErrOutOfRange, "(%d,%d)", rc[0], rc[1])
	}
}

func TestFromCellsErrors(t *testing.T) {
	_, err := FromCells(0, 3, nil)
	assert.ErrorIs(t, err, core.ErrEmptyGrid)
	_, err = FromCells(2, 2, []bool{true})
	assert.ErrorIs(t, err, core.ErrDataLength)
}

func TestCommunities(t *testing.T) {
	cells := make([]bool, 9)
	cells[0] = true // (0,0)
	cells[8] = true // (2,2)
	life, err := FromCells(3, 3, cells)
	require.NoError(t, err)
	assert.Equal(t, 1, life.Communities())

	list := life.CommunityList()
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].Size())
}

func TestGliderTranslates(t *testing.T) {
	life := FromGrid(Glider(5, 5))
	require.NoError(t, life.Advance(4))
	want := map[[2]int]bool{{1, 2}: true, {2, 3}: true, {3, 1}: true, {3, 2}: true, {3, 3}: true}
	assert.Equal(t, want, liveSet(life.Grid()))

	require.NoError(t, life.Advance(16))
	assert.True(t, Glider(5, 5).Equal(life.Grid()), "glider returns home after 20 generations")
}
