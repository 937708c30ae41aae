package internal

import (
	"fmt"
	"math"
)

// Ref is the identity of a node: its slot in a Store.
type Ref uint32

// Nil is never the identity of a node. A sentinel's Link is Nil ^ neighbour.
const Nil Ref = 0

const maxRef = Ref(math.MaxUint32)

// Node is one slot of a Store.
//
// Link holds the XOR of the refs of the two neighbours. It has no direction
// by itself: XOR it with the ref of the neighbour you came from and you get
// the ref of the other one.
type Node[T any] struct {
	Link  Ref
	Value T
}

// Store is an arena of nodes addressed by Ref. Released slots are threaded
// onto a free chain through their Link field and handed out again by Alloc.
type Store[T any] struct {
	nodes []Node[T]
	free  Ref
	live  int
	empty T
}

func NewStore[T any](capacity int) *Store[T] {
	if capacity < 0 {
		capacity = 0
	}
	var s = &Store[T]{}
	// slot 0 backs Nil and is never handed out
	s.nodes = make([]Node[T], 1, capacity+1)
	return s
}

// Alloc copies value into a free slot and returns its ref.
func (s *Store[T]) Alloc(link Ref, value T) Ref {
	var r = s.free
	if r != Nil {
		s.free = s.nodes[r].Link
	} else {
		if Ref(len(s.nodes)-1) == maxRef {
			panic(fmt.Sprintf("xlist: node store exhausted at %d nodes", s.live))
		}
		r = Ref(len(s.nodes))
		s.nodes = append(s.nodes, Node[T]{})
	}
	s.nodes[r].Link = link
	s.nodes[r].Value = value
	s.live++
	return r
}

// Release drops the value held by r and makes the slot available to Alloc.
func (s *Store[T]) Release(r Ref) {
	var n = &s.nodes[r]
	n.Value = s.empty
	n.Link = s.free
	s.free = r
	s.live--
}

// Node returns the slot behind r. The pointer is only valid until the next
// Alloc, which may move the arena.
func (s *Store[T]) Node(r Ref) *Node[T] {
	return &s.nodes[r]
}

// Neighbor resolves the neighbour of r that is not from.
func (s *Store[T]) Neighbor(r, from Ref) Ref {
	return s.nodes[r].Link ^ from
}

// Contains reports whether r addresses a slot of the arena.
func (s *Store[T]) Contains(r Ref) bool {
	return r != Nil && int(r) < len(s.nodes)
}

// Live returns the number of allocated nodes, sentinels included.
func (s *Store[T]) Live() int {
	return s.live
}

// Cap returns the number of slots the arena can hold without growing.
func (s *Store[T]) Cap() int {
	return cap(s.nodes) - 1
}
