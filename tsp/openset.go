package tsp

import (
	"container/heap"

	"github.com/bits-and-blooms/bitset"
)

// state is one node of the search tree. It is never mutated after creation;
// the partial path is recovered by walking prev.
type state struct {
	city    int
	visited *bitset.BitSet
	prev    *state
	depth   int // number of cities on the partial path, start included
	g, h, f float64
	seq     uint64 // insertion order, last tie-breaker
}

// path returns the partial path start → … → s.city.
func (s *state) path() []int {
	out := make([]int, s.depth)
	for p := s; p != nil; p = p.prev {
		out[p.depth-1] = p.city
	}

	return out
}

// openSet is a binary min-heap over states ordered by f, then deeper first,
// then insertion order. The order is total, so pops are deterministic.
type openSet []*state

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	a, b := o[i], o[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.depth != b.depth {
		return a.depth > b.depth
	}

	return a.seq < b.seq
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet) Push(x any) { *o = append(*o, x.(*state)) }

func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	s := old[n-1]
	old[n-1] = nil // let the GC reclaim pruned subtrees
	*o = old[:n-1]

	return s
}

func (o *openSet) push(s *state) { heap.Push(o, s) }

func (o *openSet) pop() *state { return heap.Pop(o).(*state) }
