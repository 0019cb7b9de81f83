// Package unionfind implements an array-backed disjoint-set forest over the
// integers [0, n) with union by size and path halving.
package unionfind

// Forest tracks a partition of [0, n) into disjoint sets.
type Forest struct {
	parent []int
	size   []int
	sets   int
}

// New returns a forest of n singleton sets.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{parent: make([]int, n), size: make([]int, n), sets: n}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}
	return f
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Sets returns the current number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Find returns the representative of the set containing i.
func (f *Forest) Find(i int) int {
	for f.parent[i] != i {
		// Path halving: point i at its grandparent.
		f.parent[i] = f.parent[f.parent[i]]
		i = f.parent[i]
	}
	return i
}

// Union merges the sets containing a and b, attaching the smaller tree under
// the larger one. It reports false when a and b were already in the same set.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.sets--
	return true
}

// Connected reports whether a and b share a set.
func (f *Forest) Connected(a, b int) bool { return f.Find(a) == f.Find(b) }

// SetSize returns the number of elements in the set containing i.
func (f *Forest) SetSize(i int) int { return f.size[f.Find(i)] }
