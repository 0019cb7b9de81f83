// Package community groups the live cells of a toroidal grid into
// communities: maximal sets of live cells joined by chains of 8-adjacency
// with wraparound at every edge.
//
// Each query builds a fresh disjoint-set forest with one element per cell,
// unions every live cell with its live wrapped neighbors and then collects
// the distinct roots of the live cells. Dead cells occupy forest slots but
// never count. The grid is only read.
//
// Complexity: O(R×C×8·α(R×C)) time, O(R×C) memory.
package community

import (
	"sort"

	"torus-life/internal/unionfind"
	"torus-life/pkg/core"
)

// Cell is a (Row, Col) coordinate.
type Cell struct {
	Row, Col int
}

// Community is one connected group of live cells.
type Community struct {
	// Cells lists the members in row-major order.
	Cells []Cell
}

// Size returns the number of member cells.
func (c Community) Size() int { return len(c.Cells) }

// forest unions every pair of toroidally adjacent live cells of g.
func forest(g *core.Grid) *unionfind.Forest {
	cells := g.Cells()
	f := unionfind.New(len(cells))
	for idx, alive := range cells {
		if !alive {
			continue
		}
		row, col := g.Coordinate(idx)
		for _, d := range core.Offsets8 {
			nr, nc := g.Wrap(row+d[0], col+d[1])
			n := g.Index(nr, nc)
			if cells[n] {
				f.Union(idx, n)
			}
		}
	}
	return f
}

// Count returns the number of communities in g. It is 0 iff no cell is alive.
func Count(g *core.Grid) int {
	f := forest(g)
	roots := make(map[int]struct{})
	for idx, alive := range g.Cells() {
		if alive {
			roots[f.Find(idx)] = struct{}{}
		}
	}
	return len(roots)
}

// Find returns every community of g, ordered by their first member in
// row-major order.
func Find(g *core.Grid) []Community {
	f := forest(g)
	slot := make(map[int]int)
	var out []Community
	for idx, alive := range g.Cells() {
		if !alive {
			continue
		}
		root := f.Find(idx)
		i, ok := slot[root]
		if !ok {
			i = len(out)
			slot[root] = i
			out = append(out, Community{})
		}
		row, col := g.Coordinate(idx)
		out[i].Cells = append(out[i].Cells, Cell{Row: row, Col: col})
	}
	return out
}

// Sizes returns the community sizes in descending order.
func Sizes(g *core.Grid) []int {
	comms := Find(g)
	sizes := make([]int, len(comms))
	for i, c := range comms {
		sizes[i] = c.Size()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}
