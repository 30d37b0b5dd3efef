package astar

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/astargrid/grid"
)

// entry is one open-set record. seq is unique per push.
type entry struct {
	f    int
	seq  uint64
	cell *grid.Cell
}

func entryLess(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// openSet pairs a min-heap on (f, seq) with a membership set answering
// "is this cell pending" in O(1).
type openSet struct {
	pq      *heap.Heap[entry]
	members mapset.Set[*grid.Cell]
	seq     uint64
}

func newOpenSet() *openSet {
	return &openSet{
		pq:      heap.New[entry](entryLess),
		members: mapset.New[*grid.Cell](),
	}
}

// push inserts c with priority f and the next sequence number.
// The first push gets seq 0.
func (s *openSet) push(c *grid.Cell, f int) {
	s.pq.Push(entry{f: f, seq: s.seq, cell: c})
	s.seq++
	s.members.Put(c)
}

// pop removes the minimum entry and clears its membership.
func (s *openSet) pop() (*grid.Cell, bool) {
	e, ok := s.pq.Pop()
	if !ok {
		return nil, false
	}
	s.members.Remove(e.cell)
	return e.cell, true
}

func (s *openSet) has(c *grid.Cell) bool { return s.members.Has(c) }

func (s *openSet) len() int { return s.pq.Size() }
