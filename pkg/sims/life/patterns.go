package life

import (
	icore "torus-life/internal/core"
	"torus-life/pkg/core"
)

// defaultCells are the live cells of the 5x5 preset. The pattern dies out
// after four generations.
var defaultCells = [][2]int{{1, 1}, {1, 3}, {2, 2}, {3, 2}, {3, 3}}

// DefaultGrid returns the 5x5 preset.
func DefaultGrid() *core.Grid {
	return mustPlace(5, 5, defaultCells)
}

// Blinker returns a rows x cols grid with a horizontal period-2 blinker
// through the center. Dimensions are raised to at least 5.
func Blinker(rows, cols int) *core.Grid {
	rows, cols = max(rows, minPatternSide), max(cols, minPatternSide)
	r, c := rows/2, cols/2
	return mustPlace(rows, cols, [][2]int{{r, c - 1}, {r, c}, {r, c + 1}})
}

// Glider returns a rows x cols grid with a south-east glider in the top-left
// corner. Dimensions are raised to at least 5.
func Glider(rows, cols int) *core.Grid {
	rows, cols = max(rows, minPatternSide), max(cols, minPatternSide)
	return mustPlace(rows, cols, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}})
}

// Random returns a grid filled from cfg.Seed with live probability cfg.Density.
func Random(cfg Config) (*core.Grid, error) {
	g, err := core.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	core.NewRNG(cfg.Seed).Fill(g, cfg.Density)
	return g, nil
}

// mustPlace builds a grid with the given live cells. Callers only pass
// coordinates inside the dimensions.
func mustPlace(rows, cols int, live [][2]int) *core.Grid {
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		panic(err)
	}
	for _, rc := range live {
		if err := g.Set(rc[0], rc[1], true); err != nil {
			panic(err)
		}
	}
	return g
}

func init() {
	icore.Register("default", func(map[string]string) (*core.Grid, error) {
		return DefaultGrid(), nil
	})
	icore.Register("blinker", func(cfg map[string]string) (*core.Grid, error) {
		c := FromMap(cfg)
		return Blinker(c.Rows, c.Cols), nil
	})
	icore.Register("glider", func(cfg map[string]string) (*core.Grid, error) {
		c := FromMap(cfg)
		return Glider(c.Rows, c.Cols), nil
	})
	icore.Register("random", func(cfg map[string]string) (*core.Grid, error) {
		return Random(FromMap(cfg))
	})
}
