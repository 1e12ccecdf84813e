package prim_kruskal

// DisjointSet is an array-backed union-find over elements 0..n-1 with
// path compression (path halving) and union by rank.
//
// Complexity: Find and Union run in amortised O(α(n)).
type DisjointSet struct {
	parent []int32
	rank   []uint8
	sets   int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{}
	d.Reset(n)

	return d
}

// Reset reinitialises d to n singleton sets, reusing its buffers when possible.
func (d *DisjointSet) Reset(n int) {
	if cap(d.parent) < n {
		d.parent = make([]int32, n)
		d.rank = make([]uint8, n)
	}
	d.parent = d.parent[:n]
	d.rank = d.rank[:n]
	for i := 0; i < n; i++ {
		d.parent[i] = int32(i)
		d.rank[i] = 0
	}
	d.sets = n
}

// Find returns the representative of x's set.
func (d *DisjointSet) Find(x int) int {
	u := int32(x)
	for d.parent[u] != u {
		// Path halving: point u at its grandparent.
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return int(u)
}

// Union merges the sets containing a and b. It reports false when they were
// already in the same set.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = int32(rb)
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = int32(ra)
	default:
		d.parent[rb] = int32(ra)
		d.rank[ra]++
	}
	d.sets--

	return true
}

// Connected reports whether a and b share a set.
func (d *DisjointSet) Connected(a, b int) bool { return d.Find(a) == d.Find(b) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }
